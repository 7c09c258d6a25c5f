package gcode

import (
	"fmt"
	"math"
)

// Point is a position in model units.
type Point struct {
	X, Y, Z float64
}

// Pt is a shorthand for Point{x, y, z}.
func Pt(x, y, z float64) Point {
	return Point{x, y, z}
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y, p.Z + other.Z}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

func (p Point) Mul(scalar float64) Point {
	return Point{p.X * scalar, p.Y * scalar, p.Z * scalar}
}

// Dist2D returns the distance between p and other in the XY plane.
func (p Point) Dist2D(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Near2D reports whether p and other coincide in the XY plane within eps on each axis.
func (p Point) Near2D(other Point, eps float64) bool {
	return math.Abs(p.X-other.X) < eps && math.Abs(p.Y-other.Y) < eps
}

func (p Point) String() string {
	return fmt.Sprintf("{x: %g, y: %g, z: %g}", p.X, p.Y, p.Z)
}
