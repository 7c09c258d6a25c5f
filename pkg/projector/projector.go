// Package projector maps model space geometry onto a bounded device viewport.
// Device space has its origin in the top left corner and Y growing downwards.
package projector

import (
	"fmt"
	"math"

	"github.com/gucio321/plotview/pkg/gcode"
)

// DefaultArcSegments is the number of segments an arc polyline is made of.
const DefaultArcSegments = 120

// Point is a position in device units.
type Point struct {
	X, Y float64
}

// Size is the extent of a device viewport.
type Size struct {
	Width, Height float64
}

// Transform maps model coordinates into a viewport of a given height.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
	Height           float64
}

// Fit returns the transform which draws bounds as large as possible inside viewport
// shrunk by padding on every side, centered and with the same scale on both axes.
// A zero extent on either axis is treated as 1 model unit.
func Fit(bounds gcode.BoundingBox, viewport Size, padding float64) (Transform, error) {
	if bounds.IsEmpty() {
		return Transform{}, ErrEmptyBounds
	}

	w, h := viewport.Width-2*padding, viewport.Height-2*padding
	if w <= 0 || h <= 0 {
		return Transform{}, fmt.Errorf("%gx%g with padding %g: %w", viewport.Width, viewport.Height, padding, ErrViewportTooSmall)
	}

	rangeX, rangeY := bounds.Width(), bounds.Height()
	if rangeX == 0 {
		rangeX = 1
	}

	if rangeY == 0 {
		rangeY = 1
	}

	scale := math.Min(w/rangeX, h/rangeY)

	return Transform{
		Scale:   scale,
		OffsetX: padding + (w-rangeX*scale)/2 - bounds.MinX*scale,
		OffsetY: padding + (h-rangeY*scale)/2 - bounds.MinY*scale,
		Height:  viewport.Height,
	}, nil
}

// Project maps p onto the device. Z is dropped and Y is flipped so that model "up"
// points to the top of the viewport.
func (t Transform) Project(p gcode.Point) Point {
	return Point{
		X: p.X*t.Scale + t.OffsetX,
		Y: t.Height - (p.Y*t.Scale + t.OffsetY),
	}
}

// Unproject is the inverse of Project on the XY plane.
func (t Transform) Unproject(p Point) gcode.Point {
	return gcode.Point{
		X: (p.X - t.OffsetX) / t.Scale,
		Y: (t.Height - p.Y - t.OffsetY) / t.Scale,
	}
}

// Length converts a model distance to device units.
func (t Transform) Length(d float64) float64 {
	return d * t.Scale
}

// Line returns the device endpoints of a straight move.
func (t Transform) Line(from, to gcode.Point) []Point {
	return []Point{t.Project(from), t.Project(to)}
}

// Arc samples arc as a polyline of segments+1 device points going from its start
// to its end point. Non-positive segments mean DefaultArcSegments.
func (t Transform) Arc(arc gcode.ResolvedArc, segments int) []Point {
	if segments <= 0 {
		segments = DefaultArcSegments
	}

	center := t.Project(arc.Center)
	radius := t.Length(arc.Radius)
	start, sweep := DeviceSweep(arc)

	result := make([]Point, segments+1)
	for i := range result {
		angle := start + sweep*float64(i)/float64(segments)
		result[i] = Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}

	return result
}

// DeviceSweep returns the start angle and signed sweep of arc in device space.
// Flipping Y negates angles, so the sweep has the opposite sign of the model sweep. A full circle or an arc whose
// angles coincide sweeps a whole turn.
func DeviceSweep(arc gcode.ResolvedArc) (start, sweep float64) {
	start, end := -arc.StartAngle, -arc.EndAngle
	sweep = end - start

	if arc.FullCircle {
		sweep = 0
	}

	// clockwise model arcs run towards increasing device angles
	if arc.Clockwise {
		if sweep < 0 {
			sweep += 2 * math.Pi
		}

		if sweep == 0 {
			sweep = 2 * math.Pi
		}

		return start, sweep
	}

	if sweep > 0 {
		sweep -= 2 * math.Pi
	}

	if sweep == 0 {
		sweep = -2 * math.Pi
	}

	return start, sweep
}
