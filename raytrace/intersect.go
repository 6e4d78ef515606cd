package raytrace

import "math"

// rayAABB returns the near/far intersection distances of r against the box
// [min, max] using the slab method. If the ray misses, tNear > tFar.
func rayAABB(min, max Vec3, r Ray) (tNear, tFar float64) {
	invDir := Vec3{1 / r.Direction.X, 1 / r.Direction.Y, 1 / r.Direction.Z}

	t1 := (min.X - r.Origin.X) * invDir.X
	t2 := (max.X - r.Origin.X) * invDir.X
	tNear, tFar = minf(t1, t2), maxf(t1, t2)

	t1 = (min.Y - r.Origin.Y) * invDir.Y
	t2 = (max.Y - r.Origin.Y) * invDir.Y
	tNear, tFar = maxf(tNear, minf(t1, t2)), minf(tFar, maxf(t1, t2))

	t1 = (min.Z - r.Origin.Z) * invDir.Z
	t2 = (max.Z - r.Origin.Z) * invDir.Z
	tNear, tFar = maxf(tNear, minf(t1, t2)), minf(tFar, maxf(t1, t2))

	return tNear, tFar
}

// rayAABBHit reports whether r intersects the box at all.
func rayAABBHit(min, max Vec3, r Ray) bool {
	tNear, tFar := rayAABB(min, max, r)
	return tFar >= tNear && tFar >= 0
}

// rayAABBT returns the nearest hit distance, or +Inf on a miss.
func rayAABBT(min, max Vec3, r Ray) float64 {
	tNear, tFar := rayAABB(min, max, r)
	if tFar < tNear || tFar < 0 {
		return math.Inf(1)
	}
	return tNear
}

// rayAABBNormal returns the nearest hit distance and the face normal at
// that point, recovered by matching tNear against each axis's slab plane.
// When the ray origin is inside the box, tNear is behind the origin and the
// exit distance tFar is reported instead; the normal is still recovered
// from the entry plane, matching the reference implementation.
func rayAABBNormal(min, max Vec3, r Ray) (float64, Vec3) {
	tNear, tFar := rayAABB(min, max, r)
	if tFar < tNear || tFar < 0 {
		return math.Inf(1), Vec3{}
	}

	invDir := Vec3{1 / r.Direction.X, 1 / r.Direction.Y, 1 / r.Direction.Z}
	t1 := Vec3{
		(min.X - r.Origin.X) * invDir.X,
		(min.Y - r.Origin.Y) * invDir.Y,
		(min.Z - r.Origin.Z) * invDir.Z,
	}
	mask := EqualMask(t1, Vec3{tNear, tNear, tNear})
	normal := mask.MulVec(r.Direction.Neg().Sign())

	t := tFar
	if tNear > 0 {
		t = tNear
	}
	return t, normal.Normalize()
}

// raySphere intersects r against a sphere via the quadratic formula,
// returning the near root and the outward surface normal. The near root is
// reported whenever the discriminant is non-negative, even when it comes out
// behind the ray origin (r.Origin inside the sphere), matching the reference
// implementation exactly rather than retrying with the far root.
func raySphere(center Vec3, radius float64, r Ray) (float64, Vec3) {
	oc := r.Origin.Sub(center)
	a := r.Direction.Dot(r.Direction)
	b := 2 * oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return math.Inf(1), Vec3{}
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	hit := r.Origin.Add(r.Direction.Mul(t))
	normal := hit.Sub(center).Normalize()
	return t, normal
}

// rayTriangle intersects r against the triangle (v0, v1, v2) using a
// Moller-Trumbore-style barycentric solve. Returns the hit distance,
// barycentric coordinates (u, v, w=1-u-v), and the (unnormalized-winding)
// face normal.
func rayTriangle(v0, v1, v2 Vec3, r Ray) (float64, Vec3, Vec3) {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	pv := r.Direction.Cross(e1)
	det := e0.Dot(pv)
	if det == 0 {
		return math.Inf(1), Vec3{}, Vec3{}
	}
	invDet := 1 / det

	tv := r.Origin.Sub(v0)
	u := tv.Dot(pv) * invDet

	qv := tv.Cross(e0)
	v := r.Direction.Dot(qv) * invDet
	t := e1.Dot(qv) * invDet
	w := 1 - u - v

	if u < 0 || v < 0 || w < 0 || t < 0 {
		return math.Inf(1), Vec3{}, Vec3{}
	}
	normal := e0.Cross(e1).Normalize()
	return t, Vec3{X: u, Y: v, Z: w}, normal
}
