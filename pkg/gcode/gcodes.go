package gcode

//go:generate stringer -type=Mode -linecomment

// Mode is a modal motion mode selected by one of the G0-G3 words.
type Mode int

// list of motion modes. See https://marlinfw.org/docs/gcode/G000-G001.html
// and https://marlinfw.org/docs/gcode/G002-G003.html
const (
	// RapidMove is a travel move (G0).
	RapidMove Mode = iota // G0
	// LinearMove is a feed move along a straight line (G1).
	LinearMove // G1
	// ArcCW is a clockwise arc (G2).
	ArcCW // G2
	// ArcCCW is a counterclockwise arc (G3).
	ArcCCW // G3
)

// IsArc reports whether m is G2 or G3.
func (m Mode) IsArc() bool {
	return m == ArcCW || m == ArcCCW
}

// G word numbers understood by the interpreter besides the motion modes.
const (
	absolutePositioning = 90
	relativePositioning = 91
)

var motionModes = map[int]Mode{
	0: RapidMove,
	1: LinearMove,
	2: ArcCW,
	3: ArcCCW,
}
