package gcode

import "math"

// BoundingBox is a 2D extent in model units. The zero-geometry box returned by
// EmptyBoundingBox has Min > Max and is distinct from a degenerate point box.
type BoundingBox struct {
	MinX, MaxX, MinY, MaxY float64
}

// EmptyBoundingBox returns the sentinel box containing nothing.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1),
		MaxX: math.Inf(-1),
		MinY: math.Inf(1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether b contains no point at all.
func (b BoundingBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Expand grows b to contain (x, y).
func (b *BoundingBox) Expand(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// Union returns the smallest box containing b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if other.IsEmpty() {
		return b
	}

	b.Expand(other.MinX, other.MinY)
	b.Expand(other.MaxX, other.MaxY)
	return b
}

func (b BoundingBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}

	return b.MaxX - b.MinX
}

func (b BoundingBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}

	return b.MaxY - b.MinY
}

func (b *BoundingBox) expandPoint(p Point) {
	b.Expand(p.X, p.Y)
}

// expandCircle adds the four cardinal extrema of a circle.
func (b *BoundingBox) expandCircle(cx, cy, r float64) {
	b.Expand(cx-r, cy)
	b.Expand(cx+r, cy)
	b.Expand(cx, cy-r)
	b.Expand(cx, cy+r)
}

// ComputeBoundingBox returns the XY extent of cmds.
//
// Arcs are over-approximated: center-offset arcs add the extrema of their whole circle,
// radius arcs add the chord midpoint ± |R| on each axis, whatever part of the circle
// is actually swept. Radius arcs closing on themselves add their whole circle.
// An empty list yields EmptyBoundingBox().
func ComputeBoundingBox(cmds []Command) BoundingBox {
	result := EmptyBoundingBox()

	for _, cmd := range cmds {
		result.expandPoint(cmd.From)
		result.expandPoint(cmd.To)

		if !cmd.Mode.IsArc() {
			continue
		}

		switch cmd.Arc.Form {
		case CenterOffset:
			result.expandCircle(
				cmd.From.X+cmd.Arc.I,
				cmd.From.Y+cmd.Arc.J,
				math.Hypot(cmd.Arc.I, cmd.Arc.J),
			)
		case SignedRadius:
			if arc, err := Resolve(cmd); err == nil && arc.FullCircle {
				result.expandCircle(arc.Center.X, arc.Center.Y, arc.Radius)
				continue
			}

			result.expandCircle(
				(cmd.From.X+cmd.To.X)/2,
				(cmd.From.Y+cmd.To.Y)/2,
				math.Abs(cmd.Arc.R),
			)
		}
	}

	return result
}
