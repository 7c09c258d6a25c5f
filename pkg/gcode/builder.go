package gcode

import (
	"fmt"
	"math"
	"strings"
)

const (
	// DefaultTravelZ is the pen height used while moving without drawing.
	DefaultTravelZ = 0
	// DefaultDrawZ is the pen height used while drawing. Drawing happens above PenUpZ.
	DefaultDrawZ = 5
)

// Block is a single line of generated G-code.
type Block struct {
	Code        string
	Args        []Arg
	LineComment string
}

type Arg struct {
	Name  string
	Value float64
}

func (c Block) String(comments bool) string {
	parts := make([]string, 0, len(c.Args)+2)
	if c.Code != "" {
		parts = append(parts, c.Code)
	}

	for _, arg := range c.Args {
		parts = append(parts, fmt.Sprintf("%s%s", arg.Name, formatNumber(arg.Value)))
	}

	if c.LineComment != "" && comments {
		parts = append(parts, "; "+c.LineComment)
	}

	return strings.Join(parts, " ")
}

func formatNumber(v float64) string {
	// avoid "-0" and exponent notation in the output
	if v == 0 {
		return "0"
	}

	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}

	return s
}

// Builder builds G-code drawings in absolute coordinates (G90), lowering the pen
// to draw and raising it to travel.
type Builder struct {
	blocks    []Block
	drawZ     float64
	travelZ   float64
	feed      float64
	isDrawing bool
	current   Point
}

// NewBuilder creates a Builder with default pen heights.
func NewBuilder() *Builder {
	b := &Builder{
		drawZ:   DefaultDrawZ,
		travelZ: DefaultTravelZ,
	}

	b.push(Block{Code: "G90", LineComment: "Absolute positioning"})

	return b
}

// SetDepths sets the pen heights for drawing and travelling.
func (b *Builder) SetDepths(drawZ, travelZ float64) *Builder {
	b.drawZ = drawZ
	b.travelZ = travelZ
	return b
}

// SetFeed sets the feed rate emitted with the next drawing move.
func (b *Builder) SetFeed(feed float64) *Builder {
	b.feed = feed
	return b
}

func (b *Builder) push(blocks ...Block) {
	b.blocks = append(b.blocks, blocks...)
}

// Comment writes comment to GCode.
func (b *Builder) Comment(comment string) *Builder {
	b.push(Block{LineComment: comment})
	return b
}

func (b *Builder) Commentf(format string, args ...interface{}) *Builder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Up stops active drawing.
func (b *Builder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("up: %w", ErrCantChangeDrawingState)
	}

	b.current.Z = b.travelZ
	b.push(Block{Code: "G0", Args: []Arg{{"Z", b.travelZ}}, LineComment: "stop drawing"})
	b.isDrawing = false

	return nil
}

// Down starts drawing.
func (b *Builder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("down: %w", ErrCantChangeDrawingState)
	}

	b.current.Z = b.drawZ
	b.push(Block{Code: "G0", Args: []Arg{{"Z", b.drawZ}}, LineComment: "start drawing"})
	b.isDrawing = true

	return nil
}

// Move travels to (x, y). It does NOT call Up/Down.
func (b *Builder) Move(x, y float64) *Builder {
	b.current.X, b.current.Y = x, y
	b.push(Block{Code: "G0", Args: []Arg{{"X", x}, {"Y", y}}})
	return b
}

func (b *Builder) feedArgs(args ...Arg) []Arg {
	if b.feed != 0 {
		args = append(args, Arg{"F", b.feed})
	}

	return args
}

func (b *Builder) lineTo(x, y float64) {
	b.current.X, b.current.Y = x, y
	b.push(Block{Code: "G1", Args: b.feedArgs(Arg{"X", x}, Arg{"Y", y})})
}

// startDrawing raises the pen if needed, travels to (x, y) and lowers the pen.
func (b *Builder) startDrawing(x, y float64) error {
	if b.isDrawing {
		if err := b.Up(); err != nil {
			return err
		}
	}

	b.Move(x, y)

	return b.Down()
}

// DrawLines draws a polyline through points given as x0, y0, x1, y1...
func (b *Builder) DrawLines(coords ...float64) error {
	if len(coords) < 4 || len(coords)%2 != 0 {
		return fmt.Errorf("draw lines: need at least two x, y pairs, got %d values", len(coords))
	}

	b.Commentf("BEGIN DrawLines(%v)", coords)

	if err := b.startDrawing(coords[0], coords[1]); err != nil {
		return fmt.Errorf("cant start drawing lines: %w", err)
	}

	for i := 2; i < len(coords); i += 2 {
		b.lineTo(coords[i], coords[i+1])
	}

	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing lines: %w", err)
	}

	b.Comment("END DrawLines")

	return nil
}

// DrawLine draws a line from (x0, y0) to (x1, y1).
func (b *Builder) DrawLine(x0, y0, x1, y1 float64) error {
	return b.DrawLines(x0, y0, x1, y1)
}

// DrawCircle draws a full clockwise circle centered on (x, y) starting at its top.
func (b *Builder) DrawCircle(x, y, r float64) error {
	b.Commentf("BEGIN DrawCircle(%g, %g, %g)", x, y, r)

	if err := b.startDrawing(x, y+r); err != nil {
		return fmt.Errorf("cant start drawing circle: %w", err)
	}

	b.push(Block{
		Code:        "G2",
		Args:        b.feedArgs(Arg{"X", x}, Arg{"Y", y + r}, Arg{"I", 0}, Arg{"J", -r}),
		LineComment: fmt.Sprintf("circle around %g, %g", x, y),
	})

	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing circle: %w", err)
	}

	b.Comment("END DrawCircle")

	return nil
}

// DrawSector draws a counterclockwise arc of radius r around (x, y) from angle
// start to angle end (radians, 0 on +X). With useRadius the arc is written in R form.
func (b *Builder) DrawSector(x, y, r, start, end float64, useRadius bool) error {
	b.Commentf("BEGIN DrawSector(%g, %g, %g, %g, %g)", x, y, r, start, end)

	x0, y0 := x+r*math.Cos(start), y+r*math.Sin(start)
	x1, y1 := x+r*math.Cos(end), y+r*math.Sin(end)

	if err := b.startDrawing(x0, y0); err != nil {
		return fmt.Errorf("cant start drawing sector: %w", err)
	}

	args := []Arg{{"X", x1}, {"Y", y1}}
	if useRadius {
		sweep := math.Mod(end-start, 2*math.Pi)
		if sweep < 0 {
			sweep += 2 * math.Pi
		}

		signed := r
		if sweep > math.Pi {
			signed = -r
		}

		args = append(args, Arg{"R", signed})
	} else {
		args = append(args, Arg{"I", x - x0}, Arg{"J", y - y0})
	}

	b.push(Block{Code: "G3", Args: b.feedArgs(args...)})
	b.current.X, b.current.Y = x1, y1

	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing sector: %w", err)
	}

	b.Comment("END DrawSector")

	return nil
}

// DrawRect draws an axis aligned rectangle with corners (x0, y0) and (x1, y1).
func (b *Builder) DrawRect(x0, y0, x1, y1 float64) error {
	return b.DrawLines(x0, y0, x1, y0, x1, y1, x0, y1, x0, y0)
}

// Current returns the current pen position.
func (b *Builder) Current() Point {
	return b.current
}

// Blocks returns a copy of the generated lines.
func (b *Builder) Blocks() []Block {
	return append([]Block(nil), b.blocks...)
}

// GCode returns the generated program, optionally with comments.
func (b *Builder) GCode(comments bool) string {
	var sb strings.Builder
	for _, block := range b.blocks {
		line := block.String(comments)
		if line == "" {
			continue
		}

		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String returns built GCode with comments.
func (b *Builder) String() string {
	return b.GCode(true)
}
