package gcode

import "fmt"

// WarningCode classifies a recoverable anomaly found while interpreting.
type WarningCode int

const (
	// WarnMissingArcParams: G2/G3 without I+J or R, drawn as a straight line.
	WarnMissingArcParams WarningCode = iota + 1
	// WarnChordExceedsDiameter: R arc whose endpoints are further apart than 2R, drawn as a straight line.
	WarnChordExceedsDiameter
	// WarnIndeterminateCenter: R0 arc ending where it starts, drawn as a straight line.
	WarnIndeterminateCenter
)

func (c WarningCode) String() string {
	switch c {
	case WarnMissingArcParams:
		return "missing-arc-params"
	case WarnChordExceedsDiameter:
		return "chord-exceeds-diameter"
	case WarnIndeterminateCenter:
		return "indeterminate-center"
	default:
		return fmt.Sprintf("WarningCode(%d)", int(c))
	}
}

// Warning is a diagnostic record. The offending line was still interpreted.
type Warning struct {
	Line    int
	Code    WarningCode
	Source  string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s (%s)", w.Line, w.Message, w.Source)
}
