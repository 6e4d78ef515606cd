package raytrace

// MaterialType selects the shading model a primitive's surface uses.
//
// Only Lambert is implemented by the integrator; Mirror, Glass, and Disney
// are carried as enum values for forward compatibility with scenes loaded
// from external assets, matching the reference renderer's material set.
type MaterialType int

const (
	MaterialLambert MaterialType = iota
	MaterialMirror
	MaterialGlass
	MaterialDisney
)

func (t MaterialType) String() string {
	switch t {
	case MaterialLambert:
		return "lambert"
	case MaterialMirror:
		return "mirror"
	case MaterialGlass:
		return "glass"
	case MaterialDisney:
		return "disney"
	default:
		return "unknown"
	}
}

// Material describes a primitive's surface appearance.
type Material struct {
	Type      MaterialType
	Color     Vec3
	Emissive  Vec3
	Metallic  float64
	Roughness float64
}

// DefaultMaterial matches the reference renderer's default: a neutral gray
// diffuse surface with no emission.
func DefaultMaterial() Material {
	return Material{
		Type:      MaterialLambert,
		Color:     V3(0.8, 0.8, 0.8),
		Roughness: 0.1,
	}
}
