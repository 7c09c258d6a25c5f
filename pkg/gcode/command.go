package gcode

import (
	"fmt"
	"strings"
)

// ArcForm tells which arc descriptor a Command carries.
type ArcForm int

const (
	NoArc ArcForm = iota
	// CenterOffset arcs carry I/J: the center relative to the start point.
	CenterOffset
	// SignedRadius arcs carry R. The sign selects the longer (negative) or shorter arc.
	SignedRadius
)

// ArcParams describes an arc either by center offset or by signed radius, never both.
type ArcParams struct {
	Form ArcForm
	I, J float64
	R    float64
}

// Command is a single interpreted motion. Commands are values: once built by one of the
// constructors they are not changed.
type Command struct {
	Mode     Mode
	From, To Point
	Feed     float64
	Arc      ArcParams
	// Line is the 1-based source line the command was read from (0 if built by hand).
	Line int
}

// NewMove creates a rapid or linear move. Arc modes are demoted to LinearMove.
func NewMove(mode Mode, from, to Point, feed float64) Command {
	if mode.IsArc() {
		mode = LinearMove
	}

	return Command{Mode: mode, From: from, To: to, Feed: feed}
}

// NewCenterArc creates a G2 (clockwise) or G3 arc with its center at from+(i,j).
func NewCenterArc(clockwise bool, from, to Point, i, j, feed float64) Command {
	return Command{
		Mode: arcMode(clockwise),
		From: from,
		To:   to,
		Feed: feed,
		Arc:  ArcParams{Form: CenterOffset, I: i, J: j},
	}
}

// NewRadiusArc creates a G2 (clockwise) or G3 arc described by a signed radius.
func NewRadiusArc(clockwise bool, from, to Point, r, feed float64) Command {
	return Command{
		Mode: arcMode(clockwise),
		From: from,
		To:   to,
		Feed: feed,
		Arc:  ArcParams{Form: SignedRadius, R: r},
	}
}

func arcMode(clockwise bool) Mode {
	if clockwise {
		return ArcCW
	}

	return ArcCCW
}

// at returns a copy of c attributed to source line n.
func (c Command) at(n int) Command {
	c.Line = n
	return c
}

// IsArc reports whether c is an arc with a usable descriptor.
func (c Command) IsArc() bool {
	return c.Mode.IsArc() && c.Arc.Form != NoArc
}

// Clockwise reports whether c is a G2 arc.
func (c Command) Clockwise() bool {
	return c.Mode == ArcCW
}

// IsVertical reports whether c moves along Z only (pen up/down transition).
func (c Command) IsVertical() bool {
	return c.From.X == c.To.X && c.From.Y == c.To.Y && c.From.Z != c.To.Z
}

// String formats c as an absolute G-code line.
func (c Command) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v X%g Y%g Z%g", c.Mode, c.To.X, c.To.Y, c.To.Z)

	switch c.Arc.Form {
	case CenterOffset:
		fmt.Fprintf(&sb, " I%g J%g", c.Arc.I, c.Arc.J)
	case SignedRadius:
		fmt.Fprintf(&sb, " R%g", c.Arc.R)
	}

	if c.Feed != 0 {
		fmt.Fprintf(&sb, " F%g", c.Feed)
	}

	return sb.String()
}
