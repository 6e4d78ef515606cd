package canvas

// flattenSubpaths splits p into its subpaths and flattens each to a polyline
// at the given tolerance, producing one []Point per subpath in path order.
func flattenSubpaths(p *Path, tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.1
	}

	var subpaths [][]Point
	var current []Point

	flush := func() {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
		}
	}

	// FlattenCallback emits a single continuous stream with no subpath
	// boundary markers, so walk the element list directly instead, to
	// split each MoveTo into its own polyline.
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = []Point{e.Point}
		case LineTo:
			current = append(current, e.Point)
		case QuadTo:
			if len(current) == 0 {
				current = append(current, e.Point)
				continue
			}
			flattenQuad(current[len(current)-1], e.Control, e.Point, tolerance, func(pt Point) {
				current = append(current, pt)
			})
		case CubicTo:
			if len(current) == 0 {
				current = append(current, e.Point)
				continue
			}
			flattenCubic(current[len(current)-1], e.Control1, e.Control2, e.Point, tolerance, func(pt Point) {
				current = append(current, pt)
			})
		case Close:
			// Leave the ring open; fill/stroke triangulation decides
			// closure from the point data itself.
		}
	}
	flush()

	return subpaths
}

// FillPath tessellates a retained-mode Path as one or more fills, applying
// the canvas's current transform and fillStyle to every subpath. It is the
// declarative counterpart to driving BeginPath/MoveTo/LineTo/Fill by hand.
func (c *Canvas) FillPath(p *Path) {
	for _, sub := range flattenSubpaths(p, 0.25) {
		if len(sub) < 3 {
			continue
		}
		c.BeginPath()
		for _, pt := range sub {
			c.appendPoint(pt.X, pt.Y)
		}
		c.Fill()
	}
}

// StrokePath tessellates a retained-mode Path as one or more strokes,
// applying the canvas's current transform, strokeStyle, lineWidth, lineCap,
// and lineJoin to every subpath.
func (c *Canvas) StrokePath(p *Path) {
	for _, sub := range flattenSubpaths(p, 0.25) {
		if len(sub) < 2 {
			continue
		}
		c.BeginPath()
		for _, pt := range sub {
			c.appendPoint(pt.X, pt.Y)
		}
		c.Stroke()
	}
}
