package render

import (
	"math"

	"github.com/gucio321/plotview/pkg/projector"
)

// Dashes splits a polyline into the visible pieces of a dash pattern (on, off, on...).
// The pattern carries over from one segment to the next. An empty pattern returns
// the polyline unchanged.
func Dashes(points []projector.Point, pattern []float64) [][]projector.Point {
	total := 0.0
	for _, d := range pattern {
		total += math.Max(0, d)
	}

	if len(points) < 2 || total == 0 {
		return [][]projector.Point{points}
	}

	// odd patterns repeat with on and off swapped
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	var (
		result  [][]projector.Point
		current []projector.Point
		index   int
		left    = math.Max(0, pattern[0])
	)

	on := func() bool { return index%2 == 0 }

	if on() {
		current = []projector.Point{points[0]}
	}

	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		length := math.Hypot(to.X-from.X, to.Y-from.Y)
		done := 0.0

		for length-done > left {
			done += left
			p := lerp(from, to, done/length)

			if on() {
				result = append(result, append(current, p))
				current = nil
			} else {
				current = []projector.Point{p}
			}

			index = (index + 1) % len(pattern)
			left = math.Max(0, pattern[index])
		}

		left -= length - done
		if on() {
			current = append(current, to)
		}
	}

	if len(current) > 1 {
		result = append(result, current)
	}

	return result
}

func lerp(a, b projector.Point, t float64) projector.Point {
	return projector.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
