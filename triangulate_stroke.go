package canvas

import strokepkg "github.com/gogpu/kdcg/internal/stroke"

// triangulateStroke expands a path's points into a stroke triangle list
// using the given width, cap and join. It returns nil for fewer than 2
// points.
func triangulateStroke(points []Point, lineWidth float64, cap LineCap, join LineJoin) []Point {
	if len(points) < 2 {
		return nil
	}

	sp := make([]strokepkg.Point, len(points))
	for i, p := range points {
		sp[i] = strokepkg.Point{X: p.X, Y: p.Y}
	}

	strip := strokepkg.Expand(sp, strokepkg.Stroke{
		Width: lineWidth,
		Cap:   strokepkg.LineCap(cap),
		Join:  strokepkg.LineJoin(join),
	})
	tris := strokepkg.ToTriangles(strip)

	out := make([]Point, len(tris))
	for i, p := range tris {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
