package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
)

// PNG rasterizes scene with the tool marker at pos.
func PNG(scene *preview.Scene, pos gcode.Point, palette Palette) *image.RGBA {
	w, h := math.Ceil(scene.Size.Width), math.Ceil(scene.Size.Height)
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))

	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(palette.Background())
	draw2dkit.Rectangle(gc, 0, 0, w, h)
	gc.Fill()

	if scene.Empty {
		return img
	}

	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	f := scene.Frame
	stroke(gc, FrameStyle(), func() {
		draw2dkit.Rectangle(gc, f.X, f.Y, f.X+f.W, f.Y+f.H)
	})

	for _, prim := range scene.Primitives {
		stroke(gc, palette.StyleFor(prim), func() {
			for i, p := range prim.Points {
				if i == 0 {
					gc.MoveTo(p.X, p.Y)
					continue
				}

				gc.LineTo(p.X, p.Y)
			}
		})
	}

	marker := scene.Marker(pos)
	gc.BeginPath()
	gc.SetFillColor(MarkerColor)
	draw2dkit.Circle(gc, marker.X, marker.Y, MarkerRadius)
	gc.Fill()

	return img
}

func stroke(gc *draw2dimg.GraphicContext, s Style, path func()) {
	gc.BeginPath()
	gc.SetStrokeColor(s.Color)
	gc.SetLineWidth(s.Width)
	gc.SetLineDash(s.Dash, 0)
	path()
	gc.Stroke()
}

// WritePNG encodes a rasterized scene.
func WritePNG(w io.Writer, scene *preview.Scene, pos gcode.Point, palette Palette) error {
	if err := png.Encode(w, PNG(scene, pos, palette)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}

	return nil
}
