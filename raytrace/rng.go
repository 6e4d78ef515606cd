package raytrace

// SeedInit mixes a pixel index and sample count into a per-path RNG seed
// using a four-round Feistel-style hash. (Despite the reference renderer's
// doc comment, this is not a Mersenne Twister — it's a TEA-like block
// mix used purely for decorrelating pixels and samples.)
func SeedInit(v0, v1 uint32) uint32 {
	var s0 uint32
	for n := 0; n < 4; n++ {
		s0 += 0x9e3779b9
		v0 += ((v1 << 4) + 0xa341316c) ^ (v1 + s0) ^ ((v1 >> 5) + 0xc8013ea4)
		v1 += ((v0 << 4) + 0xad90777d) ^ (v0 + s0) ^ ((v0 >> 5) + 0x7e95761e)
	}
	return v0
}

const (
	lcgA = 1664525
	lcgC = 1013904223
)

// next advances the LCG state and returns a uniform uint32 in [0, 2^24).
func next(state *uint32) uint32 {
	*state = lcgA**state + lcgC
	return *state & 0x00FFFFFF
}

// Float01 draws a uniform float64 in [0, 1) from the LCG state.
func Float01(state *uint32) float64 {
	return float64(next(state)) / float64(0x01000000)
}
