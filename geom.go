package canvas

// isConvexAngle reports whether the turn at p2, going from p1 to p2 to p3,
// is a left (counter-clockwise) turn.
func isConvexAngle(p1, p2, p3 Point) bool {
	v1 := p2.Sub(p1)
	v2 := p3.Sub(p2)
	return v1.Cross(v2) > 0
}

// isPointInTriangle reports whether p lies strictly inside triangle (a,b,c),
// using same-sign cross products against each edge.
func isPointInTriangle(p, a, b, c Point) bool {
	pa := p.Sub(a)
	pb := p.Sub(b)
	pc := p.Sub(c)

	t1 := pa.Cross(pb)
	t2 := pb.Cross(pc)
	t3 := pc.Cross(pa)

	return (t1 > 0 && t2 > 0 && t3 > 0) || (t1 < 0 && t2 < 0 && t3 < 0)
}
