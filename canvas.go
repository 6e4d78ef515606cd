package canvas

import (
	"fmt"
	"math"
	"strings"

	cachepkg "github.com/gogpu/kdcg/internal/cache"
)

// tessellation is a finished path's triangle-list vertices, cached by the
// optional tessellation cache keyed on a string encoding of the path's
// points and attributes (see tessellationKey).
type tessellation struct {
	triangles []Point
	color     uint32
}

// Canvas accumulates drawing commands and, on Fill or Stroke, tessellates
// them into triangles. It does not rasterize or own a GPU device.
type Canvas struct {
	paths []*pathState

	transform Matrix

	fillStyle   uint32
	strokeStyle uint32
	lineWidth   float64
	lineCap     LineCap
	lineJoin    LineJoin
	miterLimit  float64

	nextNewPath bool

	cache *cachepkg.Cache[string, tessellation]
}

// New creates a Canvas with the given options applied over the defaults:
// fillStyle and strokeStyle opaque black, lineWidth 2, Butt cap, Miter
// join, miterLimit 10.
func New(opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		paths:       make([]*pathState, 0, o.pathCapacity),
		transform:   Identity(),
		fillStyle:   0x000000FF,
		strokeStyle: 0x000000FF,
		lineWidth:   2.0,
		lineCap:     LineCapButt,
		lineJoin:    LineJoinMiter,
		miterLimit:  10.0,
		nextNewPath: true,
		cache:       o.cache,
	}
}

// BeginPath starts a fresh path, appended to the canvas's path list.
func (c *Canvas) BeginPath() {
	c.nextNewPath = false
	c.paths = append(c.paths, &pathState{})
}

// ClosePath marks that the next moveTo/lineTo/arc/curve call should begin
// a new path rather than extend the current one. It does not itself close
// the current path's winding.
func (c *Canvas) ClosePath() {
	c.nextNewPath = true
}

func (c *Canvas) current() *pathState {
	if c.nextNewPath || len(c.paths) == 0 {
		c.BeginPath()
	}
	return c.paths[len(c.paths)-1]
}

func (c *Canvas) appendPoint(x, y float64) {
	p := c.transform.TransformPoint(Pt(x, y))
	cur := c.current()
	cur.points = append(cur.points, p)
}

// MoveTo is behaviorally identical to LineTo: both append the transformed
// point to the current path.
func (c *Canvas) MoveTo(x, y float64) {
	c.appendPoint(x, y)
}

// LineTo appends a transformed point to the current path.
func (c *Canvas) LineTo(x, y float64) {
	c.appendPoint(x, y)
}

// Rect traces a rectangle via four LineTo calls: (x,y), (x+w,y), (x+w,y+h),
// (x,y+h).
func (c *Canvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
}

const (
	fullCircle = 2 * math.Pi
	arcStep    = math.Pi / 12 // 15 degrees
)

// Arc appends a center point followed by circumference samples from
// startAngle to endAngle in fixed 15-degree increments, using the same
// non-general point-rotation formula as the reference renderer. A span of
// 2π or more is drawn as the full circle from 0 to 2π; a non-positive span
// is a no-op.
func (c *Canvas) Arc(cx, cy, r, startAngle, endAngle float64, ccw bool) {
	span := endAngle - startAngle
	if span <= 0 {
		Logger().Warn("canvas: Arc called with non-positive span, no-op", "startAngle", startAngle, "endAngle", endAngle)
		return
	}
	if span >= fullCircle {
		startAngle, endAngle, span = 0, fullCircle, fullCircle
	}

	c.MoveTo(cx, cy)

	seed := Point{X: r, Y: 0}
	// Count the steps up front (with a small tolerance) so float drift in
	// the angle cannot add or drop a sample.
	steps := int(math.Ceil(span/arcStep - 1e-9))
	for i := 0; i < steps; i++ {
		rotated := rotateTessellate(seed, startAngle+float64(i)*arcStep)
		c.LineTo(cx+rotated.X, cy+rotated.Y)
	}

	// Fill in the remainder angle when the span isn't an exact multiple
	// of the tessellation step.
	if math.Abs(span-float64(steps)*arcStep) > 1e-9 {
		rotated := rotateTessellate(seed, endAngle)
		c.LineTo(cx+rotated.X, cy+rotated.Y)
	}
}

// rotateTessellate rotates p by theta using the formula
// (x·cosθ + y·sinθ, x·sinθ + y·cosθ), which only matches a true rotation
// when p.Y is 0 (as it always is for the seed vector Arc calls it with).
func rotateTessellate(p Point, theta float64) Point {
	sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
	return Point{
		X: p.X*cosTheta + p.Y*sinTheta,
		Y: p.X*sinTheta + p.Y*cosTheta,
	}
}

func degrees(radians float64) float64 {
	return radians * (180.0 / math.Pi)
}

// Circle is a full arc from 0 to 2π.
func (c *Canvas) Circle(cx, cy, r float64) {
	c.Arc(cx, cy, r, 0, fullCircle, false)
}

const kappa90 = 0.5522847493

// Ellipse traces an ellipse of the given radii centered at (cx, cy) using
// four cubic Bézier arcs.
func (c *Canvas) Ellipse(cx, cy, rx, ry float64) {
	c.MoveTo(cx-rx, cy)
	c.BezierCurveTo(cx-rx, cy+ry*kappa90, cx-rx*kappa90, cy+ry, cx, cy+ry)
	c.BezierCurveTo(cx+rx*kappa90, cy+ry, cx+rx, cy+ry*kappa90, cx+rx, cy)
	c.BezierCurveTo(cx+rx, cy-ry*kappa90, cx+rx*kappa90, cy-ry, cx, cy-ry)
	c.BezierCurveTo(cx-rx*kappa90, cy-ry, cx-rx, cy-ry*kappa90, cx-rx, cy)
}

// QuadraticCurveTo appends a quadratic Bézier, raised to a cubic and
// flattened the same way as BezierCurveTo.
func (c *Canvas) QuadraticCurveTo(cpx, cpy, x, y float64) {
	cur := c.current()
	if len(cur.points) == 0 {
		return
	}
	// The stored point is already transformed; map it back to caller space
	// so it combines with the caller-space control point and end point.
	start := c.transform.Invert().TransformPoint(cur.points[len(cur.points)-1])
	// Raise the quadratic control point to two cubic control points.
	cp1x := start.X + 2.0/3.0*(cpx-start.X)
	cp1y := start.Y + 2.0/3.0*(cpy-start.Y)
	cp2x := x + 2.0/3.0*(cpx-x)
	cp2y := y + 2.0/3.0*(cpy-y)
	c.BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// BezierCurveTo appends a cubic Bézier from the path's current point,
// adaptively flattened to line segments via recursive subdivision.
func (c *Canvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	cur := c.current()
	if len(cur.points) == 0 {
		return
	}
	start := cur.points[len(cur.points)-1]
	cp1 := c.transform.TransformPoint(Pt(cp1x, cp1y))
	cp2 := c.transform.TransformPoint(Pt(cp2x, cp2y))
	end := c.transform.TransformPoint(Pt(x, y))
	c.tessellateBezier(start, cp1, cp2, end, 0)
}

// tessellateBezier recursively subdivides a cubic Bézier, stopping when
// the two inner control points' combined deviation from the chord meets
// the flatness threshold (d2+d3)² < 0.25·|chord|², or once the recursion
// depth exceeds 10. Either stop appends the segment's endpoint.
func (c *Canvas) tessellateBezier(p1, p2, p3, p4 Point, depth int) {
	if depth > 10 {
		cur := c.paths[len(c.paths)-1]
		cur.points = append(cur.points, p4)
		return
	}

	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p34 := p3.Lerp(p4, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	p234 := p23.Lerp(p34, 0.5)
	p1234 := p123.Lerp(p234, 0.5)

	dx := p4.X - p1.X
	dy := p4.Y - p1.Y
	d2 := math.Abs((p2.X-p4.X)*dy - (p2.Y-p4.Y)*dx)
	d3 := math.Abs((p3.X-p4.X)*dy - (p3.Y-p4.Y)*dx)

	if (d2+d3)*(d2+d3) < (dx*dx+dy*dy)*0.25 {
		cur := c.paths[len(c.paths)-1]
		cur.points = append(cur.points, p4)
		return
	}

	c.tessellateBezier(p1, p12, p123, p1234, depth+1)
	c.tessellateBezier(p1234, p234, p34, p4, depth+1)
}

// Transform replaces the current affine transform. Subsequent commands map
// caller-space coordinates through this matrix; already-accumulated points
// are unaffected.
func (c *Canvas) Transform(a, b, cc, d, e, f float64) {
	// (x, y) maps to (a·x + cc·y + e, b·x + d·y + f).
	c.transform = Matrix{A: a, B: cc, C: e, D: b, E: d, F: f}
}

// SetFillStyle sets the packed 0xRRGGBBAA color used by the next Fill.
func (c *Canvas) SetFillStyle(color uint32) { c.fillStyle = color }

// SetStrokeStyle sets the packed 0xRRGGBBAA color used by the next Stroke.
func (c *Canvas) SetStrokeStyle(color uint32) { c.strokeStyle = color }

// SetLineWidth sets the stroke width captured by the next Stroke.
func (c *Canvas) SetLineWidth(w float64) { c.lineWidth = w }

// SetLineCap sets the stroke end-cap style captured by the next Stroke.
func (c *Canvas) SetLineCap(cap LineCap) { c.lineCap = cap }

// SetLineJoin sets the stroke join style captured by the next Stroke.
func (c *Canvas) SetLineJoin(join LineJoin) { c.lineJoin = join }

// SetMiterLimit sets the miter limit captured by the next Stroke.
func (c *Canvas) SetMiterLimit(limit float64) { c.miterLimit = limit }

// Fill finalizes the current path as a fill: marks it done and captures
// fillStyle. Triangulation treats the path as closed for winding purposes
// whenever its last point already equals its first, without appending a
// duplicate vertex.
func (c *Canvas) Fill() {
	if len(c.paths) == 0 {
		return
	}
	p := c.paths[len(c.paths)-1]
	if len(p.points) == 0 {
		Logger().Warn("canvas: Fill called on an empty path, no-op")
		return
	}
	p.done = true
	p.fill = true
	p.color = c.fillStyle
}

// Stroke finalizes the current path as a stroke, capturing strokeStyle,
// lineWidth, lineCap, and lineJoin.
func (c *Canvas) Stroke() {
	if len(c.paths) == 0 {
		return
	}
	p := c.paths[len(c.paths)-1]
	if len(p.points) == 0 {
		Logger().Warn("canvas: Stroke called on an empty path, no-op")
		return
	}
	p.done = true
	p.fill = false
	p.color = c.strokeStyle
	p.lineWidth = c.lineWidth
	p.lineCap = c.lineCap
	p.lineJoin = c.lineJoin
}

// IsPointInPath reports whether (x, y) lies inside any already-tessellated
// path's triangles, testing each consecutive triple of triangle vertices.
// A point on a triangle's edge (such as a fan diagonal) counts as inside;
// zero-area triples are skipped.
func (c *Canvas) IsPointInPath(x, y float64) bool {
	pt := Pt(x, y)
	for _, p := range c.paths {
		c.ensureTriangulated(p)
		for i := 1; i < len(p.triangles)-1; i++ {
			v0, v1, v2 := p.triangles[i-1], p.triangles[i], p.triangles[i+1]
			if v1.Sub(v0).Cross(v2.Sub(v0)) == 0 {
				continue
			}
			t1 := pt.Sub(v0).Cross(pt.Sub(v1))
			t2 := pt.Sub(v1).Cross(pt.Sub(v2))
			t3 := pt.Sub(v2).Cross(pt.Sub(v0))
			if (t1 >= 0 && t2 >= 0 && t3 >= 0) || (t1 <= 0 && t2 <= 0 && t3 <= 0) {
				return true
			}
		}
	}
	return false
}

func (c *Canvas) ensureTriangulated(p *pathState) {
	if !p.done || p.triangles != nil {
		return
	}

	var key string
	if c.cache != nil {
		key = tessellationKey(p)
		if t, ok := c.cache.Get(key); ok {
			p.triangles = t.triangles
			return
		}
	}

	if p.fill {
		p.triangles = triangulateFill(p.points)
	} else {
		p.triangles = triangulateStroke(p.points, p.lineWidth, p.lineCap, p.lineJoin)
	}
	Logger().Debug("canvas: tessellated path", "fill", p.fill, "points", len(p.points), "triangleVertices", len(p.triangles))

	if c.cache != nil {
		c.cache.Set(key, tessellation{triangles: p.triangles, color: p.color})
	}
}

// tessellationKey derives a cache key from everything that affects
// triangulation output: the path's points and, for strokes, its
// width/cap/join.
func tessellationKey(p *pathState) string {
	var b strings.Builder
	if p.fill {
		b.WriteString("F")
	} else {
		fmt.Fprintf(&b, "S%g%d%d", p.lineWidth, p.lineCap, p.lineJoin)
	}
	for _, pt := range p.points {
		fmt.Fprintf(&b, "|%g,%g", pt.X, pt.Y)
	}
	return b.String()
}

// Triangulate tessellates every finished path and appends each triangle
// vertex to out as five floats: (px, py, r, g, b), clockwise winding.
func (c *Canvas) Triangulate(out *[]float64) {
	for _, p := range c.paths {
		if !p.done {
			continue
		}
		c.ensureTriangulated(p)
		col := UnpackRGBA(p.color)
		for _, v := range p.triangles {
			*out = append(*out, v.X, v.Y, col.R, col.G, col.B)
		}
	}
}
