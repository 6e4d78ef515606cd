package raytrace

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

func unionAABB(a, b AABB) AABB {
	return AABB{Min: MinVec(a.Min, b.Min), Max: MaxVec(a.Max, b.Max)}
}

// HitInfo carries the result of a ray/primitive or ray/scene intersection.
// T is +Inf when there was no hit.
type HitInfo struct {
	T        float64
	Bary     Vec3
	Normal   Vec3
	Material Material
}

// PrimitiveKind tags which geometric shape a Primitive holds, letting BVH
// traversal dispatch on a plain switch instead of virtual calls.
type PrimitiveKind int

const (
	KindAabox PrimitiveKind = iota
	KindSphere
	KindTriangle
)

// Primitive is a tagged variant of the three ray-traceable shapes the
// renderer supports: Aabox | Sphere | Triangle. Exactly the fields for
// Kind are meaningful; the rest are zero.
type Primitive struct {
	Kind     PrimitiveKind
	Material Material
	AABB     AABB

	// Sphere
	Center Vec3
	Radius float64

	// Triangle
	Vertex [3]Vec3
}

// NewAabox creates a box primitive spanning [min, max].
func NewAabox(min, max Vec3, mat Material) Primitive {
	return Primitive{Kind: KindAabox, Material: mat, AABB: AABB{Min: min, Max: max}}
}

// NewSphere creates a sphere primitive and computes its bounding box.
func NewSphere(center Vec3, radius float64, mat Material) Primitive {
	p := Primitive{Kind: KindSphere, Material: mat, Center: center, Radius: radius}
	p.updateAABB()
	return p
}

// NewTriangle creates a triangle primitive from three vertices and computes
// its bounding box.
func NewTriangle(v0, v1, v2 Vec3, mat Material) Primitive {
	p := Primitive{Kind: KindTriangle, Material: mat, Vertex: [3]Vec3{v0, v1, v2}}
	p.updateAABB()
	return p
}

func (p *Primitive) updateAABB() {
	switch p.Kind {
	case KindSphere:
		rv := V3(p.Radius, p.Radius, p.Radius)
		p.AABB = AABB{Min: p.Center.Sub(rv), Max: p.Center.Add(rv)}
	case KindTriangle:
		p.AABB = AABB{
			Min: MinVec(p.Vertex[0], MinVec(p.Vertex[1], p.Vertex[2])),
			Max: MaxVec(p.Vertex[0], MaxVec(p.Vertex[1], p.Vertex[2])),
		}
	}
}

// RayIntersect dispatches to the intersection routine for p's kind and
// fills in hit.Material when there's a hit.
func (p *Primitive) RayIntersect(r Ray) HitInfo {
	var hit HitInfo
	switch p.Kind {
	case KindAabox:
		hit.T, hit.Normal = rayAABBNormal(p.AABB.Min, p.AABB.Max, r)
	case KindSphere:
		hit.T, hit.Normal = raySphere(p.Center, p.Radius, r)
	case KindTriangle:
		hit.T, hit.Bary, hit.Normal = rayTriangle(p.Vertex[0], p.Vertex[1], p.Vertex[2], r)
	default:
		hit.T = math.Inf(1)
	}
	hit.Material = p.Material
	return hit
}
