package main

import (
	"math"

	"github.com/gucio321/plotview/pkg/gcode"
)

const (
	demoDrawZ   = 5
	demoTravelZ = 0.5
	demoFeed    = 8000
)

// demo draws two stacked rings with a hatched overlap, a quarter arc and a wave underneath.
func demo() (string, error) {
	b := gcode.NewBuilder().SetDepths(demoDrawZ, demoTravelZ).SetFeed(demoFeed)
	b.Comment("plotview demo")

	const r = 31.2925
	cx, lower, upper := 66.1458, 43.965, 88.3266

	for _, cy := range []float64{lower, upper} {
		if err := b.DrawCircle(cx, cy, r); err != nil {
			return "", err
		}
	}

	// hatch the lens where the rings overlap
	half := math.Sqrt(r*r - math.Pow((upper-lower)/2, 2))
	for x := cx - half + 4; x < cx+half; x += 4 {
		dx := x - cx
		dy := math.Sqrt(r*r - dx*dx)

		if err := b.DrawLine(x, upper-dy, x, lower+dy); err != nil {
			return "", err
		}
	}

	if err := b.DrawSector(cx, (lower+upper)/2, 2*r, math.Pi/4, 3*math.Pi/4, true); err != nil {
		return "", err
	}

	base := lower - r - 8
	if err := b.DrawBezier(24, cx-2*r, base, cx-r, base-20, cx+r, base+20, cx+2*r, base); err != nil {
		return "", err
	}

	return b.String(), nil
}
