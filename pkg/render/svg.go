package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
)

// errWriter remembers the first write error, the svg canvas drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n, err := e.w.Write(p)
	e.err = err

	return n, err
}

// SVG writes scene with the tool marker at pos as an SVG document.
func SVG(w io.Writer, scene *preview.Scene, pos gcode.Point, palette Palette) error {
	out := &errWriter{w: w}
	canvas := svg.New(out)

	canvas.Start(scene.Size.Width, scene.Size.Height)
	canvas.Title("plotview")
	canvas.Rect(0, 0, scene.Size.Width, scene.Size.Height, "fill:"+cssColor(palette.Background()))

	if !scene.Empty {
		f := scene.Frame
		canvas.Rect(f.X, f.Y, f.W, f.H, strokeCSS(FrameStyle()))

		canvas.Group(`class="paths"`, "fill:none;stroke-linecap:round;stroke-linejoin:round")
		for _, prim := range scene.Primitives {
			canvas.Path(pathData(prim), strokeCSS(palette.StyleFor(prim)), fmt.Sprintf(`data-line="%d"`, prim.Line))
		}
		canvas.Gend()

		marker := scene.Marker(pos)
		canvas.Circle(marker.X, marker.Y, MarkerRadius, "fill:"+cssColor(MarkerColor))
	}

	canvas.End()

	if out.err != nil {
		return fmt.Errorf("writing svg: %w", out.err)
	}

	return nil
}

func pathData(prim preview.Primitive) string {
	var sb strings.Builder
	for i, p := range prim.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		} else {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%s%.2f,%.2f", cmd, p.X, p.Y)
	}

	return sb.String()
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func strokeCSS(s Style) string {
	css := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", cssColor(s.Color), s.Width)
	if len(s.Dash) == 0 {
		return css
	}

	dash := make([]string, len(s.Dash))
	for i, d := range s.Dash {
		dash[i] = fmt.Sprintf("%g", d)
	}

	return css + ";stroke-dasharray:" + strings.Join(dash, ",")
}
