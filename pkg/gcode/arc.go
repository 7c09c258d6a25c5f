package gcode

import "math"

// chordTolerance absorbs the rounding of half circles written with 4 decimals.
const chordTolerance = 1e-4

// ResolvedArc is the concrete circle and angular travel of an arc command.
// Angles are in radians, measured counterclockwise from +X in the model plane.
type ResolvedArc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	FullCircle bool
	Clockwise  bool
}

// Sweep returns the signed angular travel from StartAngle to EndAngle following the
// arc direction: negative for clockwise arcs, in (0, 2π] in magnitude.
// Full circles sweep a whole turn.
func (a ResolvedArc) Sweep() float64 {
	if a.FullCircle {
		if a.Clockwise {
			return -2 * math.Pi
		}

		return 2 * math.Pi
	}

	sweep := a.EndAngle - a.StartAngle
	if a.Clockwise {
		for sweep >= 0 {
			sweep -= 2 * math.Pi
		}

		for sweep < -2*math.Pi {
			sweep += 2 * math.Pi
		}

		return sweep
	}

	for sweep <= 0 {
		sweep += 2 * math.Pi
	}

	for sweep > 2*math.Pi {
		sweep -= 2 * math.Pi
	}

	return sweep
}

// SignedRadius returns the R value describing the same arc in radius form:
// positive when the arc spans at most half a turn, negative otherwise.
func (a ResolvedArc) SignedRadius() float64 {
	if math.Abs(a.Sweep()) > math.Pi {
		return -a.Radius
	}

	return a.Radius
}

// PointAt returns the point on the circle at angle theta (Z taken from the center).
func (a ResolvedArc) PointAt(theta float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
		Z: a.Center.Z,
	}
}

// Resolve computes the circle an arc command travels on.
//
// For radius arcs the center lies on the perpendicular bisector of the chord at
// h = sqrt(r² - (d/2)²) from its midpoint. Walking from From to To, the center is
// taken on the right side for G2 with R>0 and for G3 with R<0, and on the left side
// for G2 with R<0 and G3 with R>0. Positive radii therefore give the arc of at most
// half a turn and negative radii the longer one.
//
// A radius arc ending where it starts is a full circle. Its chord has no direction, so
// the walk is taken along +X and the center lies |R| away on the side given by the
// same rule. Only R0 leaves such a circle undefined.
func Resolve(cmd Command) (ResolvedArc, error) {
	if !cmd.IsArc() {
		return ResolvedArc{}, ErrNotArc
	}

	result := ResolvedArc{
		Clockwise:  cmd.Clockwise(),
		FullCircle: cmd.From.Near2D(cmd.To, fullCircleEpsilon),
	}

	switch cmd.Arc.Form {
	case CenterOffset:
		result.Center = Point{X: cmd.From.X + cmd.Arc.I, Y: cmd.From.Y + cmd.Arc.J, Z: cmd.From.Z}
		result.Radius = cmd.From.Dist2D(result.Center)
	case SignedRadius:
		switch {
		case result.FullCircle && cmd.Arc.R == 0:
			return ResolvedArc{}, ErrIndeterminateCenter
		case result.FullCircle:
			result.Center = loopCenter(cmd.From, cmd.Arc.R, result.Clockwise)
		default:
			center, err := radiusCenter(cmd.From, cmd.To, cmd.Arc.R, result.Clockwise)
			if err != nil {
				return ResolvedArc{}, err
			}

			result.Center = center
		}

		result.Radius = math.Abs(cmd.Arc.R)
	}

	result.StartAngle = math.Atan2(cmd.From.Y-result.Center.Y, cmd.From.X-result.Center.X)
	result.EndAngle = math.Atan2(cmd.To.Y-result.Center.Y, cmd.To.X-result.Center.X)

	return result, nil
}

// radiusSide is -1 when the center lies right of the walking direction, 1 for left.
func radiusSide(r float64, clockwise bool) float64 {
	if clockwise == (r > 0) {
		return -1
	}

	return 1
}

// loopCenter is the center of the full circle of radius |r| through from.
func loopCenter(from Point, r float64, clockwise bool) Point {
	return Point{
		X: from.X,
		Y: from.Y + radiusSide(r, clockwise)*math.Abs(r),
		Z: from.Z,
	}
}

// radiusCenter picks one of the two circles of radius |r| through from and to.
func radiusCenter(from, to Point, r float64, clockwise bool) (Point, error) {
	radius := math.Abs(r)
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Hypot(dx, dy)

	if dist > 2*radius+chordTolerance {
		return Point{}, ErrChordExceedsDiameter
	}

	half := dist / 2
	h := math.Sqrt(math.Max(0, radius*radius-half*half))

	// left normal of the chord direction
	nx, ny := -dy/dist, dx/dist

	side := radiusSide(r, clockwise)

	return Point{
		X: from.X + dx/2 + side*h*nx,
		Y: from.Y + dy/2 + side*h*ny,
		Z: from.Z,
	}, nil
}
