// Package gcode interprets a small G-code dialect (G0-G3, G90/G91, X Y Z I J R F)
// into motion commands and provides the arc and bounding box geometry built on them.
package gcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// fullCircleEpsilon is the distance (per axis, model units) below which
// arc endpoints are considered to coincide.
const fullCircleEpsilon = 1e-5

// maxLineLength caps a single line of input.
const maxLineLength = 1 << 20

// Program is the result of interpreting a G-code document.
type Program struct {
	Commands []Command
	Warnings []Warning
}

// Bounds returns the bounding box of all commands (see ComputeBoundingBox).
func (p *Program) Bounds() BoundingBox {
	return ComputeBoundingBox(p.Commands)
}

// End returns the position after the last command.
func (p *Program) End() Point {
	if len(p.Commands) == 0 {
		return Point{}
	}

	return p.Commands[len(p.Commands)-1].To
}

// parserState is the modal state of one Parse call.
type parserState struct {
	pos      Point
	mode     Mode
	absolute bool
	feed     float64
}

func newParserState() parserState {
	return parserState{
		mode:     RapidMove,
		absolute: true,
	}
}

// lineParams are the parameter words found on a single line.
type lineParams struct {
	values map[byte]float64
	motion *Mode
	// positioning is 90 or 91 when the line toggles absolute/relative.
	positioning int
	// unknownG is set for lines with a G word this dialect ignores.
	unknownG bool
}

func (l lineParams) has(letter byte) bool {
	_, ok := l.values[letter]
	return ok
}

func (l lineParams) hasAny(letters ...byte) bool {
	for _, letter := range letters {
		if l.has(letter) {
			return true
		}
	}

	return false
}

// ParseString is Parse for in-memory text.
func ParseString(text string) (*Program, error) {
	return Parse(strings.NewReader(text))
}

// Parse interprets G-code read from r line by line.
// Geometry problems are reported as Program.Warnings, malformed numbers as *ParseError.
func Parse(r io.Reader) (*Program, error) {
	result := &Program{}
	state := newParserState()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := state.interpret(result, lineNo, scanner.Text()); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading gcode: %w", err)
	}

	return result, nil
}

// readParams collects the words of one line. First occurrence of every letter wins.
// Parameters of ignored directives (G28 X Y) are not validated.
func readParams(lineNo int, words []word) (lineParams, error) {
	result := lineParams{values: make(map[byte]float64)}

	for _, w := range words {
		if w.letter != 'G' {
			continue
		}

		n, ok, err := w.gNumber()
		if err != nil {
			return result, &ParseError{Line: lineNo, Word: w.String(), Err: err}
		}

		if !ok {
			result.unknownG = true
			continue
		}

		switch n {
		case absolutePositioning, relativePositioning:
			if result.positioning == 0 {
				result.positioning = n
			}
		default:
			mode, known := motionModes[n]
			if !known {
				result.unknownG = true
				continue
			}

			if result.motion == nil {
				result.motion = &mode
			}
		}
	}

	if result.ignored() {
		return result, nil
	}

	for _, w := range words {
		switch w.letter {
		case 'X', 'Y', 'Z', 'I', 'J', 'R', 'F':
			value, err := w.number()
			if err != nil {
				return result, &ParseError{Line: lineNo, Word: w.String(), Err: err}
			}

			if _, seen := result.values[w.letter]; !seen {
				result.values[w.letter] = value
			}
		}
	}

	return result, nil
}

// ignored reports whether the line only toggles positioning or is a directive
// this dialect does not interpret. The coordinates of such directives are not moves:
// G92 X0 redefines the origin and G28 X0 homes through an intermediate point.
func (l lineParams) ignored() bool {
	return l.positioning != 0 || (l.unknownG && l.motion == nil)
}

// interpret applies one source line to the state, appending to p.
func (s *parserState) interpret(p *Program, lineNo int, raw string) error {
	line := stripComments(raw)
	if line == "" {
		return nil
	}

	params, err := readParams(lineNo, splitWords(line))
	if err != nil {
		return err
	}

	switch params.positioning {
	case absolutePositioning:
		s.absolute = true
		return nil
	case relativePositioning:
		s.absolute = false
		return nil
	}

	if params.ignored() {
		return nil
	}

	if params.motion != nil {
		s.mode = *params.motion
	}

	if f, ok := params.values['F']; ok {
		s.feed = f
	}

	// while G2/G3 is modal every remaining line is an arc attempt
	if !params.hasAny('X', 'Y', 'Z') && !s.mode.IsArc() {
		return nil
	}

	from := s.pos
	to := Point{
		X: s.resolve(params, 'X', from.X),
		Y: s.resolve(params, 'Y', from.Y),
		Z: s.resolve(params, 'Z', from.Z),
	}

	cmd, warning := s.build(params, from, to)
	if warning != nil {
		warning.Line = lineNo
		warning.Source = raw
		p.Warnings = append(p.Warnings, *warning)
	}

	p.Commands = append(p.Commands, cmd.at(lineNo))
	s.pos = to

	return nil
}

// resolve returns the target value of one axis.
func (s *parserState) resolve(params lineParams, axis byte, current float64) float64 {
	value, ok := params.values[axis]
	switch {
	case !ok:
		return current
	case s.absolute:
		return value
	default:
		return current + value
	}
}

// build creates the command for the current mode. Arcs which cannot be drawn are
// demoted to straight lines and reported.
func (s *parserState) build(params lineParams, from, to Point) (Command, *Warning) {
	if !s.mode.IsArc() {
		return NewMove(s.mode, from, to, s.feed), nil
	}

	clockwise := s.mode == ArcCW

	switch {
	case params.has('I') && params.has('J'):
		return NewCenterArc(clockwise, from, to, params.values['I'], params.values['J'], s.feed), nil
	case params.has('R'):
		cmd := NewRadiusArc(clockwise, from, to, params.values['R'], s.feed)
		if _, err := Resolve(cmd); err != nil {
			code := WarnChordExceedsDiameter
			if errors.Is(err, ErrIndeterminateCenter) {
				code = WarnIndeterminateCenter
			}

			return NewMove(LinearMove, from, to, s.feed), &Warning{
				Code:    code,
				Message: fmt.Sprintf("%v, treating as linear move", err),
			}
		}

		return cmd, nil
	default:
		return NewMove(LinearMove, from, to, s.feed), &Warning{
			Code:    WarnMissingArcParams,
			Message: "arc command missing I/J or R parameters, treating as linear move",
		}
	}
}
