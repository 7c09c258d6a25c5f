package gcode

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedNumber      = errors.New("malformed number")
	ErrNotArc               = errors.New("command is not an arc with center or radius data")
	ErrChordExceedsDiameter = errors.New("arc radius too small for endpoints")
	ErrIndeterminateCenter  = errors.New("arc center cannot be determined from a zero radius when endpoints coincide")

	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
)

// ParseError identifies the line and word which could not be interpreted.
type ParseError struct {
	Line int
	Word string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Word, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
