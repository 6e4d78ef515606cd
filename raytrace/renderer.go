package raytrace

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/kdcg"
	"github.com/gogpu/kdcg/internal/parallel"
)

// Renderer ties a camera and an accelerated scene together into a
// pixel-by-pixel image generator.
type Renderer struct {
	Camera Camera
	Scene  *BVHAccel

	MaxDepth        int
	SamplesPerPixel int
	Output          RenderOutput

	// ProgressCallback, if set, is invoked with a percentage in [0, 100]
	// whenever progress advances by more than 0.1%, matching the
	// reference renderer's throttled progress reporting. During a parallel
	// render it may be called from several worker goroutines at once.
	ProgressCallback func(percent float64)
}

// NewRenderer builds a Renderer with the reference defaults: 4 bounces,
// 64 samples per pixel, Beaut output.
func NewRenderer(cam Camera, scene *BVHAccel) *Renderer {
	return &Renderer{
		Camera:          cam,
		Scene:           scene,
		MaxDepth:        4,
		SamplesPerPixel: 64,
		Output:          Beaut,
	}
}

// Render fills buffer (row-major, width*height packed 0xRRGGBB words) either
// sequentially or across a worker pool.
func (r *Renderer) Render(width, height int, buffer []uint32, parallelRender bool) {
	total := width * height
	var progressedBits atomic.Uint64 // math.Float64bits of the last reported fraction
	var done atomic.Int64

	canvas.Logger().Info("raytrace: render start", "width", width, "height", height, "spp", r.SamplesPerPixel, "maxDepth", r.MaxDepth, "parallel", parallelRender)

	renderPixel := func(idx int) {
		x, y := idx%width, idx/width
		var color Vec3
		if r.Output == Beaut {
			color = r.RayGen(x, y, width, height)
		} else {
			color = r.RayGenSingle(x, y, width, height)
		}
		buffer[y*width+x] = rgb2hex(color)

		n := int(done.Add(1))
		if r.ProgressCallback == nil {
			return
		}
		progress := float64(n) / float64(total)
		last := progressedBits.Load()
		if n == total || (progress-math.Float64frombits(last) > 0.001 && progressedBits.CompareAndSwap(last, math.Float64bits(progress))) {
			r.ProgressCallback(progress * 100)
		}
	}

	if !parallelRender {
		for idx := 0; idx < total; idx++ {
			renderPixel(idx)
		}
		canvas.Logger().Info("raytrace: render done", "pixels", total)
		return
	}

	pool := parallel.NewWorkerPool(0)
	defer pool.Close()
	canvas.Logger().Debug("raytrace: dispatching render across worker pool", "pixels", total)

	work := make([]func(), total)
	for i := 0; i < total; i++ {
		idx := i
		work[i] = func() { renderPixel(idx) }
	}
	pool.ExecuteAll(work)
	canvas.Logger().Info("raytrace: render done", "pixels", total)
}

func rgb2hex(c Vec3) uint32 {
	r := uint32(c.X * 255)
	g := uint32(c.Y * 255)
	b := uint32(c.Z * 255)
	return (r << 16) | (g << 8) | b
}

// pixelNDC maps a pixel plus subpixel jitter to NDC coordinates scaled by
// the camera's field of view and aspect ratio.
func (r *Renderer) pixelNDC(x, y, width, height int, jitterX, jitterY float64) (u, v float64) {
	u = (float64(x) + jitterX) / float64(width-1)
	v = (float64(y) + jitterY) / float64(height-1)
	u = u*2 - 1
	v = v*2 - 1
	xs, ys := r.Camera.ndcScale()
	u *= xs
	v *= ys
	return u, v
}

func (r *Renderer) cameraRay(u, v float64) Ray {
	dir := r.Camera.Right.Mul(u).Add(r.Camera.Up.Mul(v)).Add(r.Camera.Front)
	return Ray{Origin: r.Camera.Position, Direction: dir.Normalize()}
}

// RayGenSingle renders one sample per pixel for debug visualizations
// (Albedo, Normal, Barycentric). Depth has no dedicated branch upstream and
// so falls through to the same magenta sentinel as any other unhandled
// output mode when there's a hit.
func (r *Renderer) RayGenSingle(x, y, width, height int) Vec3 {
	u, v := r.pixelNDC(x, y, width, height, 0.5, 0.5)
	ray := r.cameraRay(u, v)

	hit := r.Scene.Intersect(ray)
	if math.IsInf(hit.T, 1) {
		return V3(0.1, 0.1, 0.1)
	}

	switch r.Output {
	case Albedo:
		return hit.Material.Color
	case Normal:
		n := hit.Normal
		return V3(n.X+1, n.Y+1, n.Z+1).Mul(0.5)
	case Barycentric:
		return hit.Bary
	default:
		return V3(1, 0, 1)
	}
}

// RayGen path-traces one pixel across SamplesPerPixel samples and MaxDepth
// bounces, accumulating radiance weighted by the running attenuation.
func (r *Renderer) RayGen(x, y, width, height int) Vec3 {
	var result Vec3
	sppCount := r.SamplesPerPixel

	for {
		seed := SeedInit(uint32(x+y*width), uint32(sppCount))

		jx := Float01(&seed)
		jy := Float01(&seed)
		u, v := r.pixelNDC(x, y, width, height, jx, jy)
		ray := r.cameraRay(u, v)

		payload := Payload{
			Seed:        seed,
			Radiance:    Vec3{},
			Attenuation: V3(1, 1, 1),
		}

		for depth := 0; depth < r.MaxDepth; depth++ {
			payload.Radiance = Vec3{}
			r.traceRay(ray, &payload)

			result = result.Add(payload.Attenuation.MulVec(payload.Radiance))

			if payload.Done {
				break
			}
			ray = Ray{Origin: payload.Origin, Direction: payload.Direction}
		}

		sppCount--
		if sppCount <= 0 {
			break
		}
	}

	return result.Div(float64(r.SamplesPerPixel))
}

func (r *Renderer) traceRay(ray Ray, payload *Payload) {
	hit := r.Scene.Intersect(ray)
	payload.Hit = hit
	if !math.IsInf(hit.T, 1) {
		closestHit(ray, payload)
		return
	}
	missHit(ray, payload)
}

func closestHit(ray Ray, payload *Payload) {
	n := payload.Hit.Normal
	p := ray.Origin.Add(ray.Direction.Mul(payload.Hit.T))
	ffNormal := FaceForward(ray.Direction.Neg(), n)

	r1 := Float01(&payload.Seed)
	r2 := Float01(&payload.Seed)
	wi, _ := CosineSampleHemisphere(r1, r2)
	wi = TangentToWorld(wi, ffNormal)

	payload.Attenuation = payload.Attenuation.MulVec(payload.Hit.Material.Color)
	payload.Radiance = payload.Radiance.Add(payload.Hit.Material.Emissive)
	payload.Direction = wi
	payload.Origin = p.Add(ffNormal.Mul(0.01))
}

func missHit(ray Ray, payload *Payload) {
	t := 0.5 * (ray.Direction.Y + 1)
	payload.Radiance = Lerp(V3(1, 1, 1), V3(0.5, 0.7, 1.0), t)
	payload.Done = true
}
