// Package raytrace implements a BVH-accelerated Monte Carlo path tracer
// over triangle, sphere, and axis-aligned box primitives.
package raytrace

import "math"

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}
func (a Vec3) MulVec(b Vec3) Vec3 { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}
func (a Vec3) Neg() Vec3 { return Vec3{-a.X, -a.Y, -a.Z} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Length() float64 { return math.Sqrt(a.Dot(a)) }

func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func MinVec(a, b Vec3) Vec3 {
	return Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

func MaxVec(a, b Vec3) Vec3 {
	return Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

func signf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Sign returns the component-wise sign of v.
func (v Vec3) Sign() Vec3 {
	return Vec3{signf(v.X), signf(v.Y), signf(v.Z)}
}

// EqualMask returns 1 in each component where a and b match exactly, 0
// otherwise, mirroring the reference renderer's equal()/sign() combination
// used to recover an AABB hit's face normal.
func EqualMask(a, b Vec3) Vec3 {
	eq := func(x, y float64) float64 {
		if x == y {
			return 1
		}
		return 0
	}
	return Vec3{eq(a.X, b.X), eq(a.Y, b.Y), eq(a.Z, b.Z)}
}

// FaceForward returns n or -n, whichever lies on the same side as i: n is
// kept when i·n > 0, otherwise it is flipped.
func FaceForward(i, n Vec3) Vec3 {
	if i.Dot(n) > 0 {
		return n
	}
	return n.Neg()
}

// Lerp interpolates between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Ray is a parametric ray: points along it are Origin + Direction*t.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}
