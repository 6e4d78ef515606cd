// Package stroke expands a flattened polyline into the vertex strip used
// by the canvas package's stroke triangulation, following the same
// per-vertex offset rules as its reference renderer.
//
// # Caps
//
// An open polyline gets an end cap at each endpoint:
//   - LineCapRound fans eleven 18-degree steps around the endpoint.
//   - LineCapButt and LineCapSquare both emit a flat perpendicular pair;
//     the two are not distinguished.
//
// A closed polyline (points[0] == points[len-1]) gets a symmetric miter
// join at the shared endpoint instead of a cap.
//
// # Joins
//
// Every interior vertex is offset by the same miter-style formula,
// regardless of the stroke's configured LineJoin.
//
// # Usage
//
//	strip := stroke.Expand(points, stroke.Stroke{Width: 2, Cap: stroke.LineCapRound})
//	triangles := stroke.ToTriangles(strip)
package stroke
