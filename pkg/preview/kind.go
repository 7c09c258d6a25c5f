package preview

// Kind tells how a primitive was produced.
type Kind int

const (
	// Rapid is a G0 travel move.
	Rapid Kind = iota
	// Line is a G1 move or an arc drawn as a straight line.
	Line
	// Arc is a G2/G3 arc sampled as a polyline.
	Arc
	// Circle is an arc ending where it started.
	Circle
)

func (k Kind) String() string {
	switch k {
	case Rapid:
		return "rapid"
	case Line:
		return "line"
	case Arc:
		return "arc"
	case Circle:
		return "circle"
	default:
		return "unknown"
	}
}
