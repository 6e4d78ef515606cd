package canvas

// LineCap determines how the ends of open strokes are rendered.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// LineJoin determines the geometry at interior polyline vertices of a stroke.
//
// The stroke extruder captures this value but does not branch on it: every
// interior vertex is extruded with the same miter-style formula regardless
// of LineJoin, matching the reference renderer it was ported from.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinBevel
	LineJoinRound
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinBevel:
		return "bevel"
	case LineJoinRound:
		return "round"
	default:
		return "unknown"
	}
}

// pathState accumulates one fill or stroke command's worth of path data:
// the transformed points issued by moveTo/lineTo/curve/arc calls, and, once
// triangulated, the resulting triangle-list vertices.
type pathState struct {
	points    []Point
	triangles []Point

	done  bool
	fill  bool
	color uint32

	lineWidth float64
	lineCap   LineCap
	lineJoin  LineJoin
}
