package canvas

// triangulateFill converts a path's accumulated points into a clockwise
// triangle list, using a convex fan when every interior angle turns the
// same way and ear-clipping otherwise.
//
// Points are triangulated exactly as given: no closing point is appended
// here even for an open polyline. A path built with Canvas.Rect or one
// that ends where it started already contains its own closing vertex;
// anything else simply fans from its first point.
func triangulateFill(points []Point) []Point {
	n := len(points)
	if n < 3 {
		return nil
	}

	pts := make([]Point, n)
	copy(pts, points)

	// Winding sum: a biased x-only shoelace variant, summed over
	// consecutive pairs with an extra wrap term when the polygon already
	// closes on itself. Positive means counter-clockwise, so the points
	// are reversed to enforce clockwise output.
	sum := 0.0
	for i := 0; i < n-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		sum += (p2.X - p1.X) * (p2.X + p1.X)
	}
	if pts[0] == pts[n-1] {
		p1, p2 := pts[n-1], pts[0]
		sum += (p2.X - p1.X) * (p2.X + p1.X)
	}
	if sum > 0 {
		reversePoints(pts)
	}

	if isConvexPolygon(pts) {
		return fanTriangulate(pts)
	}
	return earClipTriangulate(pts)
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// isConvexPolygon reports whether every interior vertex turns the same way.
func isConvexPolygon(pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return true
	}
	convex := isConvexAngle(pts[0], pts[1], pts[2])
	for i := 2; i < n-1; i++ {
		if isConvexAngle(pts[i-1], pts[i], pts[i+1]) != convex {
			return false
		}
	}
	return true
}

// fanTriangulate emits (0, i, i+1) for i in [1, N-2], fanning out from the
// first vertex. It never wraps the final edge back to vertex 0, so a path
// whose first point is not also its geometric closing point (an arc's
// center, for instance) leaves one wedge unfilled.
func fanTriangulate(pts []Point) []Point {
	n := len(pts)
	tris := make([]Point, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		tris = append(tris, pts[0], pts[i], pts[i+1])
	}
	return tris
}

// earClipTriangulate triangulates a concave simple polygon by repeatedly
// clipping convex vertices that contain no other remaining vertex, using a
// circular list so the scan wraps from the last point back to the first.
func earClipTriangulate(pts []Point) []Point {
	n := len(pts)
	ring := newRing(pts)
	tris := make([]Point, 0, (n-2)*3)

	cur := ring.head.next
	for ring.size > 3 {
		prev := cur.prev
		next := cur.next

		if isConvexAngle(prev.p, cur.p, next.p) {
			ear := true
			checker := next.next
			for checker != prev {
				if isPointInTriangle(checker.p, prev.p, cur.p, next.p) {
					ear = false
					break
				}
				checker = checker.next
			}
			if ear {
				tris = append(tris, prev.p, cur.p, next.p)
				cur = ring.remove(cur)
				continue
			}
		}
		cur = cur.next
	}

	a := ring.head.next
	tris = append(tris, a.p, a.next.p, a.next.next.p)
	return tris
}

type ringNode struct {
	p          Point
	prev, next *ringNode
}

// ring is a circular doubly-linked list of points, used so ear-clipping can
// walk past the last vertex straight back to the first without bounds
// checks.
type ring struct {
	head *ringNode
	size int
}

func newRing(pts []Point) *ring {
	nodes := make([]ringNode, len(pts))
	for i := range pts {
		nodes[i].p = pts[i]
	}
	for i := range nodes {
		nodes[i].next = &nodes[(i+1)%len(nodes)]
		nodes[i].prev = &nodes[(i-1+len(nodes))%len(nodes)]
	}
	return &ring{head: &nodes[0], size: len(nodes)}
}

func (r *ring) remove(n *ringNode) *ringNode {
	n.prev.next = n.next
	n.next.prev = n.prev
	if r.head == n {
		r.head = n.next
	}
	r.size--
	return n.next
}
