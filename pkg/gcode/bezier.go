package gcode

import (
	"fmt"
	"math"
)

func binomial(n, k int) float64 {
	result := 1.0
	for i := 1; i <= k; i++ {
		result = result * float64(n-k+i) / float64(i)
	}

	return result
}

// bezier evaluates the Bezier curve with control points at t ∈ [0, 1].
// refer: http://zobaczycmatematyke.krk.pl/025-Zolkos-Krakow/bezier.html
func bezier(t float64, points []Point) Point {
	var result Point

	n := len(points) - 1
	for i, p := range points {
		d := binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
		result = result.Add(p.Mul(d))
	}

	return result
}

// DrawBezier draws a Bezier curve through control points given as x0, y0, x1, y1...
// approximated with steps straight lines.
func (b *Builder) DrawBezier(steps int, coords ...float64) error {
	if len(coords) < 4 || len(coords)%2 != 0 {
		return fmt.Errorf("draw bezier: need at least two x, y pairs, got %d values", len(coords))
	}

	if steps < 1 {
		return fmt.Errorf("draw bezier: need at least one step, got %d", steps)
	}

	points := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		points = append(points, Point{X: coords[i], Y: coords[i+1]})
	}

	line := make([]float64, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		p := bezier(float64(i)/float64(steps), points)
		line = append(line, p.X, p.Y)
	}

	return b.DrawLines(line...)
}
