package preview

import (
	"fmt"

	"github.com/gucio321/plotview/pkg/gcode"
)

const (
	// JogStep is the XY distance of one jog.
	JogStep = 10
	// JogDrawZ and JogTravelZ are the heights a Z jog switches between.
	JogDrawZ   = 5
	JogTravelZ = 0.5
)

// Axis selects what a jog moves.
type Axis int

const (
	AxisHome Axis = iota
	AxisX
	AxisY
	AxisZ
)

// Jog moves pos one step in direction dir along axis. Z jogs lower the pen for
// a positive dir and lift it otherwise; a home jog returns to the origin.
func Jog(pos gcode.Point, axis Axis, dir int) gcode.Point {
	switch axis {
	case AxisHome:
		return gcode.Point{}
	case AxisX:
		pos.X += float64(dir) * JogStep
	case AxisY:
		pos.Y += float64(dir) * JogStep
	case AxisZ:
		pos.Z = JogTravelZ
		if dir > 0 {
			pos.Z = JogDrawZ
		}
	}

	return pos
}

// BoundsLabel describes b for humans.
func BoundsLabel(b gcode.BoundingBox) string {
	if b.IsEmpty() {
		return "No G-code loaded"
	}

	return fmt.Sprintf("X: %.2f to %.2f, Y: %.2f to %.2f", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// PositionLabel describes pos for humans.
func PositionLabel(pos gcode.Point) string {
	return fmt.Sprintf("X: %.2f Y: %.2f Z: %.2f", pos.X, pos.Y, pos.Z)
}
