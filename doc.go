// Package canvas implements an immediate-mode 2D path tessellator.
//
// # Overview
//
// canvas accumulates drawing commands (moveTo, lineTo, arcs, Bézier
// curves) into path state, and on Fill or Stroke converts that state
// into a clockwise-wound triangle list ready for GPU upload. It does
// not rasterize or own a GPU device — those are external collaborators.
//
// # Quick Start
//
//	import "github.com/gogpu/kdcg"
//
//	cv := canvas.New()
//	cv.BeginPath()
//	cv.Rect(0, 0, 1, 1)
//	cv.SetFillStyle(0xFF0000FF)
//	cv.Fill()
//
//	var out []float64
//	cv.Triangulate(&out) // [px, py, r, g, b] per vertex, clockwise winding
//
// # Coordinate System
//
//   - Origin (0,0) is caller-defined; the current affine transform maps
//     caller space to world space at the moment each command is issued.
//   - Angles are in radians, 0 is along +X, increasing counter-clockwise.
//
// # Architecture
//
//   - Public API: Canvas, Path, PathBuilder, Matrix, Point, RGBA
//   - Tessellation: fill triangulation (convex fan / ear-clip) and
//     stroke triangulation (butt and round caps, with Square treated as
//     Butt; interior joins always use a miter-style offset whatever the
//     LineJoin), in triangulate_fill.go and triangulate_stroke.go.
//   - The sibling raytrace package implements the 3D BVH path tracer
//     and shares this package's Point/Vec-style numeric conventions and
//     its logger.
package canvas
