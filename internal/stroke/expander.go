// Package stroke expands a flattened polyline into the vertex strip used by
// the canvas package's stroke triangulation.
//
// The offset at an endpoint depends only on its cap style (Round fans out
// over eleven 18-degree steps, anything else is a flat perpendicular pair);
// the offset at an interior vertex always uses the same miter-style extrude
// regardless of the configured LineJoin. That join value is carried on
// Stroke for callers and future joins but is not read by Expand.
package stroke

import (
	"math"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Vec2() returns the point as a vector from the origin.
func (p Point) Vec2() Vec2 {
	return Vec2(p)
}

// Add returns the point offset by a vector.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Equal reports whether p and q are exactly the same point.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction; the zero vector
// normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated -90 degrees: perp((x,y)) = (y,-x).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// LineCap specifies the shape of an open polyline's endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare is carried for API completeness. Expand treats it
	// identically to LineCapButt, matching the renderer it was ported
	// from.
	LineCapSquare
)

// LineJoin specifies the shape of a polyline's interior joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinRound specifies a rounded join.
	LineJoinRound
)

// Stroke defines the style used by Expand.
type Stroke struct {
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{Width: 1.0, Cap: LineCapButt, Join: LineJoinMiter}
}

// roundCapSin and roundCapCos are the fixed-step sine/cosine of an 18-degree
// rotation, applied eleven times per round cap to approximate a semicircle.
const (
	roundCapSin = 0.309
	roundCapCos = 0.951
)

// Expand offsets a polyline into a triangle strip, following points[0] and
// points[len-1] with an end cap when they differ, or a symmetric miter join
// when the polyline is already closed. Fewer than two points produces no
// vertices.
func Expand(points []Point, style Stroke) []Point {
	n := len(points)
	if n < 2 {
		return nil
	}

	half := style.Width * 0.5
	closed := points[0].Equal(points[n-1])

	strip := make([]Point, 0, n*2+24)

	if closed {
		strip = append(strip, closedJoin(points[0], points[n-2], points[1], half)...)
	} else {
		strip = append(strip, startCap(points[0], points[1], half, style.Cap)...)
	}

	for i := 1; i < n-1; i++ {
		strip = append(strip, interiorJoin(points[i-1], points[i], points[i+1], half)...)
	}

	if closed {
		strip = append(strip, closedJoin(points[n-1], points[n-2], points[1], half)...)
	} else {
		strip = append(strip, endCap(points[n-1], points[n-2], half, style.Cap)...)
	}

	return strip
}

// ToTriangles converts a vertex strip into a triangle list by emitting
// (v[i-1], v[i], v[i+1]) for every interior strip index. Consecutive
// repeated vertices (as round caps and joins produce) yield degenerate,
// zero-area triangles that are still emitted.
func ToTriangles(strip []Point) []Point {
	if len(strip) < 3 {
		return nil
	}
	tris := make([]Point, 0, (len(strip)-2)*3)
	for i := 1; i < len(strip)-1; i++ {
		tris = append(tris, strip[i-1], strip[i], strip[i+1])
	}
	return tris
}

func closedJoin(at, prevNeighbor, nextNeighbor Point, half float64) []Point {
	vecA := at.Sub(prevNeighbor).Normalize().Perp()
	vecB := nextNeighbor.Sub(at).Normalize().Perp()
	vecC := vecA.Add(vecB).Scale(0.5)
	denom := vecC.Dot(vecC)
	vec := vecC
	if denom != 0 {
		vec = vecC.Scale(1 / denom)
	}
	return []Point{at.Add(vec.Scale(half)), at.Add(vec.Scale(-half))}
}

func startCap(p0, p1 Point, half float64, cap LineCap) []Point {
	vec := p1.Sub(p0).Perp().Normalize()
	if cap == LineCapRound {
		out := make([]Point, 0, 24)
		n := vec
		for i := 0; i < 11; i++ {
			out = append(out, p0, p0.Add(n.Scale(-half)))
			n = rotateRoundStep(n)
		}
		out = append(out, p0.Add(vec.Scale(half)), p0.Add(vec.Scale(-half)))
		return out
	}
	return []Point{p0.Add(vec.Scale(half)), p0.Add(vec.Scale(-half))}
}

func endCap(pEnd, pPrev Point, half float64, cap LineCap) []Point {
	vec := pEnd.Sub(pPrev).Perp().Normalize()
	if cap == LineCapRound {
		out := make([]Point, 0, 24)
		out = append(out, pEnd.Add(vec.Scale(half)), pEnd.Add(vec.Scale(-half)))
		n := vec
		for i := 0; i < 11; i++ {
			out = append(out, pEnd, pEnd.Add(n.Scale(half)))
			n = rotateRoundStep(n)
		}
		return out
	}
	return []Point{pEnd.Add(vec.Scale(half)), pEnd.Add(vec.Scale(-half))}
}

func rotateRoundStep(v Vec2) Vec2 {
	return Vec2{
		X: v.X*roundCapCos - v.Y*roundCapSin,
		Y: v.X*roundCapSin + v.Y*roundCapCos,
	}
}

// interiorJoin extrudes a single interior vertex. The extrusion length is
// scaled by 1/cos(theta) so the offset edges meet exactly on the outer
// side of the turn, mirroring a miter join regardless of the configured
// LineJoin.
func interiorJoin(prev, at, next Point, half float64) []Point {
	v1 := at.Sub(prev).Normalize()
	v2 := next.Sub(at).Normalize()

	vec := v1.Add(v2).Perp().Normalize()

	outSign := 1.0
	if v1.Cross(v2) <= 0 {
		outSign = -1.0
	}
	v1p := v1.Perp().Scale(outSign)
	denom := vec.Dot(v1p)
	if denom != 0 {
		vec = vec.Scale(1 / denom)
	}
	return []Point{
		at.Add(vec.Scale(outSign * half)),
		at.Add(vec.Scale(-outSign * half)),
	}
}
