package canvas

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "opaque red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     RGBA{0, 0, 0, 0},
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32767, wantG: 0, wantB: 0, wantA: 32767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			// Allow ±1 tolerance for floating point
			if diff(r, tt.wantR) > 1 || diff(g, tt.wantG) > 1 || diff(b, tt.wantB) > 1 || diff(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestPackUnpackRGBA(t *testing.T) {
	tests := []RGBA{
		{1, 0, 0, 1},
		{0, 1, 0, 0.5},
		{0, 0, 1, 0},
		Black,
		White,
	}
	for _, c := range tests {
		packed := PackRGBA(c)
		got := UnpackRGBA(packed)
		const tolerance = 1.0 / 255
		if absDiff(c.R, got.R) > tolerance || absDiff(c.G, got.G) > tolerance ||
			absDiff(c.B, got.B) > tolerance || absDiff(c.A, got.A) > tolerance {
			t.Errorf("PackRGBA/UnpackRGBA roundtrip: %v -> 0x%08X -> %v", c, packed, got)
		}
	}
}

func TestUnpackRGBAByteOrder(t *testing.T) {
	// 0xFF0000FF: red MSB, alpha LSB per spec's 0xRRGGBBAA convention.
	got := UnpackRGBA(0xFF0000FF)
	want := RGBA{R: 1, G: 0, B: 0, A: 1}
	if absDiff(got.R, want.R) > 1e-9 || absDiff(got.G, want.G) > 1e-9 ||
		absDiff(got.B, want.B) > 1e-9 || absDiff(got.A, want.A) > 1e-9 {
		t.Errorf("UnpackRGBA(0xFF0000FF) = %v, want %v", got, want)
	}
}

func TestRGBA_Roundtrip(t *testing.T) {
	// RGBA → color.Color → FromColor → RGBA
	original := RGBA{0.8, 0.3, 0.5, 0.9}
	r, g, b, a := original.RGBA()
	roundtripped := FromColor(color.NRGBA64{
		R: uint16(float64(r) / original.A),
		G: uint16(float64(g) / original.A),
		B: uint16(float64(b) / original.A),
		A: uint16(a),
	})
	const tolerance = 0.001
	if absDiff(original.R, roundtripped.R) > tolerance ||
		absDiff(original.G, roundtripped.G) > tolerance ||
		absDiff(original.B, roundtripped.B) > tolerance ||
		absDiff(original.A, roundtripped.A) > tolerance {
		t.Errorf("roundtrip: %v → %v", original, roundtripped)
	}
}

func diff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
