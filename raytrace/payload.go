package raytrace

// Payload threads per-path state through the bounce loop: the RNG seed,
// the next ray to trace, and the running radiance/attenuation accumulators.
type Payload struct {
	Seed        uint32
	Origin      Vec3
	Direction   Vec3
	Radiance    Vec3
	Attenuation Vec3
	Done        bool
	Hit         HitInfo
}
