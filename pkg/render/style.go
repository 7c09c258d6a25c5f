// Package render draws preview scenes as SVG documents or raster images.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/gucio321/plotview/pkg/preview"
)

const (
	strokeWidth = 2
	frameWidth  = 1
	// MarkerRadius is the size of the current position dot.
	MarkerRadius = 6
	// maxDepth is the Z at which pen-down strokes reach the end of their color ramp.
	maxDepth = 10
)

var (
	rapidDash = []float64{5, 3}
	frameDash = []float64{5, 5}

	frameColor = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}
	// MarkerColor fills the current position dot.
	MarkerColor = colornames.Red
)

// FrameStyle is the stroke of the bounding box rectangle.
func FrameStyle() Style {
	return Style{Color: frameColor, Width: frameWidth, Dash: frameDash}
}

// Palette selects how strokes are colored.
type Palette int

const (
	// Classic draws on white: gray rapids, pen-down lines darker the deeper they go,
	// arcs in blue.
	Classic Palette = iota
	// Heat draws on black and shades pen-down strokes from green to red with depth.
	Heat
)

var ErrUnknownPalette = errors.New("unknown palette")

// ParsePalette returns the palette called name ("classic" or "heat").
func ParsePalette(name string) (Palette, error) {
	switch name {
	case "", "classic":
		return Classic, nil
	case "heat":
		return Heat, nil
	default:
		return Classic, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
	}
}

func (p Palette) String() string {
	if p == Heat {
		return "heat"
	}

	return "classic"
}

// Style is the stroke used for one primitive.
type Style struct {
	Color color.RGBA
	Width float64
	// Dash is the on/off pattern, nil for solid strokes.
	Dash []float64
}

// Background returns the canvas color.
func (p Palette) Background() color.RGBA {
	if p == Heat {
		return colornames.Black
	}

	return colornames.White
}

// StyleFor returns the stroke of prim.
func (p Palette) StyleFor(prim preview.Primitive) Style {
	if prim.Kind == preview.Rapid {
		return Style{Color: colornames.Darkgray, Width: strokeWidth, Dash: rapidDash}
	}

	result := Style{Width: strokeWidth}
	depth := normalizedDepth(prim.Depth)
	arc := prim.Kind == preview.Arc || prim.Kind == preview.Circle

	switch {
	case p == Heat && prim.PenDown:
		result.Color = heatColor(depth)
	case p == Heat:
		result.Color = colornames.Dimgray
	case !prim.PenDown && arc:
		result.Color = colornames.Lightskyblue
	case !prim.PenDown:
		result.Color = colornames.Lightgray
	case arc:
		result.Color = color.RGBA{
			R: uint8(20 * (1 - depth)),
			G: uint8(50 + 40*(1-depth)),
			B: uint8(100 + 80*(1-depth)),
			A: 0xff,
		}
	default:
		gray := uint8(40 + 180*(1-depth))
		result.Color = color.RGBA{R: gray, G: gray, B: gray, A: 0xff}
	}

	return result
}

func normalizedDepth(z float64) float64 {
	return math.Min(1, math.Max(0, z/maxDepth))
}

// heatColor shades a depth in [0, 1] from green through yellow to red.
func heatColor(depth float64) color.RGBA {
	return hsv(120*(1-math.Min(1, math.Max(0, depth))), 1, 1)
}

// hsv converts hue (degrees) with saturation and value in [0, 1].
func hsv(hue, sat, val float64) color.RGBA {
	channel := func(n float64) uint8 {
		k := math.Mod(n+hue/60, 6)
		c := val - val*sat*math.Max(0, math.Min(1, math.Min(k, 4-k)))
		return uint8(math.Round(c * 255))
	}

	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: 0xff}
}
