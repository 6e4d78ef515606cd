package raytrace

import (
	"math"
	"math/rand"
	"sort"
)

// BVHAccelMode selects how BVHAccel.Intersect traverses the scene.
type BVHAccelMode int

const (
	// ModeNone performs a linear scan over every primitive, ignoring the
	// tree entirely.
	ModeNone BVHAccelMode = iota
	// ModeMiddle walks the BVH built by buildRecursive's midpoint split.
	ModeMiddle
	// ModeSAH selects a surface-area-heuristic split. Unimplemented, as in
	// the reference renderer: Intersect falls back to reporting a miss.
	ModeSAH
)

func (m BVHAccelMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeMiddle:
		return "middle"
	case ModeSAH:
		return "sah"
	default:
		return "unknown"
	}
}

// BVHNode is one node of the bounding volume hierarchy. Leaf nodes carry a
// Primitive index into BVHAccel.Primitives; interior nodes carry Left/Right
// children and no primitive.
type BVHNode struct {
	AABB  AABB
	Prim  int // index into BVHAccel.Primitives; -1 for interior nodes
	Left  *BVHNode
	Right *BVHNode
}

func (n *BVHNode) isLeaf() bool { return n.Left == nil && n.Right == nil }

// BVHAccel holds a flat primitive list and its bounding volume hierarchy.
type BVHAccel struct {
	Mode       BVHAccelMode
	Primitives []Primitive
	Root       *BVHNode

	rng *rand.Rand
}

// NewBVHAccel creates an accelerator over prims in the given mode. Axis
// selection during Build is randomized; the generator is seeded
// deterministically so repeated builds of the same scene produce the same
// tree.
func NewBVHAccel(prims []Primitive, mode BVHAccelMode) *BVHAccel {
	return &BVHAccel{
		Mode:       mode,
		Primitives: prims,
		rng:        rand.New(rand.NewSource(1)),
	}
}

// Build constructs the tree over Primitives. Fewer than 3 primitives leaves
// the tree empty, matching the reference renderer exactly. Build calls
// buildRecursive(0, len-1) and buildRecursive treats end as inclusive in
// every branch, so every primitive lands in a leaf; a range holding a
// single primitive yields a node with two leaves over that same primitive.
func (b *BVHAccel) Build() {
	if len(b.Primitives) < 3 {
		b.Root = nil
		return
	}
	b.Root = b.buildRecursive(0, len(b.Primitives)-1)
}

func (b *BVHAccel) buildRecursive(start, end int) *BVHNode {
	n := end - start
	switch {
	case n == 0:
		// Exactly one primitive in range: both children become leaves
		// over the same primitive, matching the reference's duplicate-leaf
		// behavior instead of returning a single leaf node.
		leaf := &BVHNode{AABB: b.Primitives[start].AABB, Prim: start}
		return &BVHNode{
			AABB:  leaf.AABB,
			Prim:  -1,
			Left:  &BVHNode{AABB: leaf.AABB, Prim: start},
			Right: &BVHNode{AABB: leaf.AABB, Prim: start},
		}
	case n == 1:
		axis := b.rng.Intn(3)
		if axisMin(b.Primitives[start], axis) > axisMin(b.Primitives[end], axis) {
			start, end = end, start
		}
		left := &BVHNode{AABB: b.Primitives[start].AABB, Prim: start}
		right := &BVHNode{AABB: b.Primitives[end].AABB, Prim: end}
		return &BVHNode{
			AABB:  unionAABB(left.AABB, right.AABB),
			Prim:  -1,
			Left:  left,
			Right: right,
		}
	default:
		axis := b.rng.Intn(3)
		sort.Slice(b.Primitives[start:end+1], func(i, j int) bool {
			return axisMin(b.Primitives[start:end+1][i], axis) < axisMin(b.Primitives[start:end+1][j], axis)
		})
		mid := start + n/2
		left := b.buildRecursive(start, mid)
		right := b.buildRecursive(mid+1, end)
		return &BVHNode{
			AABB:  unionAABB(left.AABB, right.AABB),
			Prim:  -1,
			Left:  left,
			Right: right,
		}
	}
}

func axisMin(p Primitive, axis int) float64 {
	switch axis {
	case 0:
		return p.AABB.Min.X
	case 1:
		return p.AABB.Min.Y
	default:
		return p.AABB.Min.Z
	}
}

// Intersect finds the nearest hit along r across the whole scene, using the
// configured traversal mode.
func (b *BVHAccel) Intersect(r Ray) HitInfo {
	switch b.Mode {
	case ModeNone:
		return b.intersectLinear(r)
	case ModeMiddle:
		if b.Root == nil {
			return HitInfo{T: math.Inf(1)}
		}
		return b.Root.intersect(b, r)
	default: // ModeSAH is unimplemented upstream; always report a miss.
		return HitInfo{T: math.Inf(1)}
	}
}

func (b *BVHAccel) intersectLinear(r Ray) HitInfo {
	best := HitInfo{T: math.Inf(1)}
	for i := range b.Primitives {
		hit := b.Primitives[i].RayIntersect(r)
		if hit.T < best.T {
			best = hit
		}
	}
	return best
}

func (n *BVHNode) intersect(b *BVHAccel, r Ray) HitInfo {
	if !rayAABBHit(n.AABB.Min, n.AABB.Max, r) {
		return HitInfo{T: math.Inf(1)}
	}
	if n.isLeaf() {
		return b.Primitives[n.Prim].RayIntersect(r)
	}
	left := n.Left.intersect(b, r)
	right := n.Right.intersect(b, r)
	if left.T < right.T {
		return left
	}
	return right
}
