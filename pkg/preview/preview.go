// Package preview turns an interpreted program into device space primitives ready
// to be stroked by a renderer.
package preview

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/projector"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultPadding = 40
	// DefaultPenUpZ is the height at or below which the pen does not touch the paper.
	DefaultPenUpZ = 1
)

// Options control how a program is laid out.
type Options struct {
	Viewport    projector.Size
	Padding     float64
	ArcSegments int
	PenUpZ      float64
}

// DefaultOptions returns an 800x600 layout with 40 units of padding.
func DefaultOptions() Options {
	return Options{
		Viewport:    projector.Size{Width: DefaultWidth, Height: DefaultHeight},
		Padding:     DefaultPadding,
		ArcSegments: projector.DefaultArcSegments,
		PenUpZ:      DefaultPenUpZ,
	}
}

// Primitive is a single stroke in device space.
type Primitive struct {
	Kind Kind
	// PenDown is set when the move ends below the paper surface (Z above PenUpZ).
	PenDown bool
	// Depth is the target Z of the move.
	Depth float64
	// Line is the source line of the command.
	Line   int
	Points []projector.Point
}

// Rect is an axis aligned device rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Scene is a laid out program.
type Scene struct {
	Size      projector.Size
	Transform projector.Transform
	// Bounds is the model bounding box and Frame its device rectangle.
	Bounds     gcode.BoundingBox
	Frame      Rect
	Primitives []Primitive
	Warnings   []gcode.Warning
	// Empty is set for programs without commands. Nothing else but Size is filled then.
	Empty bool
}

// Build lays program out in the viewport described by opts.
func Build(program *gcode.Program, opts Options) (*Scene, error) {
	scene := &Scene{
		Size:     opts.Viewport,
		Warnings: append([]gcode.Warning(nil), program.Warnings...),
	}

	if len(program.Commands) == 0 {
		scene.Empty = true
		return scene, nil
	}

	scene.Bounds = program.Bounds()

	transform, err := projector.Fit(scene.Bounds, opts.Viewport, opts.Padding)
	if err != nil {
		return nil, fmt.Errorf("fitting program into viewport: %w", err)
	}

	scene.Transform = transform
	scene.Frame = frame(transform, scene.Bounds)
	scene.Primitives = make([]Primitive, 0, len(program.Commands))

	for _, cmd := range program.Commands {
		prim, warning := primitive(transform, cmd, opts)
		if warning != nil {
			scene.Warnings = append(scene.Warnings, *warning)
		}

		scene.Primitives = append(scene.Primitives, prim)
	}

	return scene, nil
}

func primitive(t projector.Transform, cmd gcode.Command, opts Options) (Primitive, *gcode.Warning) {
	result := Primitive{
		Kind:    Line,
		PenDown: cmd.To.Z > opts.PenUpZ,
		Depth:   cmd.To.Z,
		Line:    cmd.Line,
	}

	switch cmd.Mode {
	case gcode.RapidMove:
		result.Kind = Rapid
	case gcode.ArcCW, gcode.ArcCCW:
		arc, err := gcode.Resolve(cmd)
		if err != nil {
			code := gcode.WarnChordExceedsDiameter
			switch {
			case errors.Is(err, gcode.ErrIndeterminateCenter):
				code = gcode.WarnIndeterminateCenter
			case errors.Is(err, gcode.ErrNotArc):
				code = gcode.WarnMissingArcParams
			}

			result.Points = t.Line(cmd.From, cmd.To)
			return result, &gcode.Warning{
				Line:    cmd.Line,
				Code:    code,
				Source:  cmd.String(),
				Message: fmt.Sprintf("%v, drawing line instead", err),
			}
		}

		result.Kind = Arc
		if arc.FullCircle {
			result.Kind = Circle
		}

		result.Points = t.Arc(arc, opts.ArcSegments)

		return result, nil
	}

	result.Points = t.Line(cmd.From, cmd.To)

	return result, nil
}

func frame(t projector.Transform, b gcode.BoundingBox) Rect {
	topLeft := t.Project(gcode.Point{X: b.MinX, Y: b.MaxY})
	bottomRight := t.Project(gcode.Point{X: b.MaxX, Y: b.MinY})

	return Rect{
		X: topLeft.X,
		Y: topLeft.Y,
		W: bottomRight.X - topLeft.X,
		H: bottomRight.Y - topLeft.Y,
	}
}

// Marker returns the device position of the tool at pos. An empty scene has no
// transform, so the marker sits in the middle of the viewport.
func (s *Scene) Marker(pos gcode.Point) projector.Point {
	if s.Empty {
		return projector.Point{X: s.Size.Width / 2, Y: s.Size.Height / 2}
	}

	return s.Transform.Project(pos)
}

// Drawn returns the primitives which leave a mark on the paper.
func (s *Scene) Drawn() []Primitive {
	return lo.Filter(s.Primitives, func(p Primitive, _ int) bool {
		return p.PenDown && p.Kind != Rapid
	})
}

// Counts returns the number of primitives of every kind.
func (s *Scene) Counts() map[Kind]int {
	return lo.MapValues(lo.GroupBy(s.Primitives, func(p Primitive) Kind {
		return p.Kind
	}), func(group []Primitive, _ Kind) int {
		return len(group)
	})
}

// Summary is a set of figures describing a program in model units.
type Summary struct {
	Commands     int     `json:"commands"`
	Arcs         int     `json:"arcs"`
	DrawLength   float64 `json:"draw_length"`
	TravelLength float64 `json:"travel_length"`
}

// Summarize measures program. Pen state is decided by penUpZ like in Build.
func Summarize(program *gcode.Program, penUpZ float64) Summary {
	drawing, travel := lo.FilterReject(program.Commands, func(cmd gcode.Command, _ int) bool {
		return cmd.Mode != gcode.RapidMove && cmd.To.Z > penUpZ
	})

	return Summary{
		Commands:     len(program.Commands),
		Arcs:         lo.CountBy(program.Commands, gcode.Command.IsArc),
		DrawLength:   lo.SumBy(drawing, length),
		TravelLength: lo.SumBy(travel, length),
	}
}

// length is the XY length of cmd, arcs measured along the circle.
func length(cmd gcode.Command) float64 {
	if arc, err := gcode.Resolve(cmd); err == nil {
		return arc.Radius * math.Abs(arc.Sweep())
	}

	return cmd.From.Dist2D(cmd.To)
}
