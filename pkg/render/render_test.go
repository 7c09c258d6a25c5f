package render

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/rustyoz/svg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/projector"
)

const program = `G0 X10 Y10
G1 Z5
G1 X30 Y10
G2 X40 Y20 I0 J10
G3 X40 Y20 I-5 J0
G0 Z0
`

func scene(t *testing.T, s string) *preview.Scene {
	t.Helper()

	p, err := gcode.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}

	opts := preview.DefaultOptions()
	opts.Viewport = projector.Size{Width: 200, Height: 100}
	opts.Padding = 10

	result, err := preview.Build(p, opts)
	if err != nil {
		t.Fatal(err)
	}

	return result
}

func TestStyleFor(t *testing.T) {
	cases := []struct {
		prim    preview.Primitive
		palette Palette
		color   color.RGBA
		dashed  bool
	}{
		{prim: preview.Primitive{Kind: preview.Rapid}, palette: Classic, color: colornames.Darkgray, dashed: true},
		{prim: preview.Primitive{Kind: preview.Rapid, PenDown: true, Depth: 5}, palette: Heat, color: colornames.Darkgray, dashed: true},
		{prim: preview.Primitive{Kind: preview.Line}, palette: Classic, color: colornames.Lightgray},
		{prim: preview.Primitive{Kind: preview.Arc}, palette: Classic, color: colornames.Lightskyblue},
		{prim: preview.Primitive{Kind: preview.Line, PenDown: true, Depth: 5}, palette: Classic, color: color.RGBA{130, 130, 130, 255}},
		{prim: preview.Primitive{Kind: preview.Line, PenDown: true, Depth: 20}, palette: Classic, color: color.RGBA{40, 40, 40, 255}},
		{prim: preview.Primitive{Kind: preview.Circle, PenDown: true, Depth: 0}, palette: Classic, color: color.RGBA{20, 90, 180, 255}},
		{prim: preview.Primitive{Kind: preview.Line, PenDown: true, Depth: 0}, palette: Heat, color: color.RGBA{0, 255, 0, 255}},
		{prim: preview.Primitive{Kind: preview.Arc, PenDown: true, Depth: 10}, palette: Heat, color: color.RGBA{255, 0, 0, 255}},
		{prim: preview.Primitive{Kind: preview.Line}, palette: Heat, color: colornames.Dimgray},
	}

	for i, c := range cases {
		got := c.palette.StyleFor(c.prim)
		if got.Color != c.color || (len(got.Dash) > 0) != c.dashed || got.Width != strokeWidth {
			t.Errorf("case %d: got %+v want color %v dashed %v", i, got, c.color, c.dashed)
		}
	}
}

func TestHSV(t *testing.T) {
	cases := []struct {
		h, s, v float64
		want    color.RGBA
	}{
		{0, 1, 1, color.RGBA{255, 0, 0, 255}},
		{60, 1, 1, color.RGBA{255, 255, 0, 255}},
		{120, 1, 1, color.RGBA{0, 255, 0, 255}},
		{240, 1, 1, color.RGBA{0, 0, 255, 255}},
		{0, 0, 0.5, color.RGBA{128, 128, 128, 255}},
		{300, 1, 1, color.RGBA{255, 0, 255, 255}},
		{180, 0.5, 1, color.RGBA{128, 255, 255, 255}},
	}

	for _, c := range cases {
		if got := hsv(c.h, c.s, c.v); got != c.want {
			t.Errorf("hsv(%g, %g, %g) = %v want %v", c.h, c.s, c.v, got, c.want)
		}
	}

	heat := []struct {
		depth float64
		want  color.RGBA
	}{
		{-1, color.RGBA{0, 255, 0, 255}},
		{0.5, color.RGBA{255, 255, 0, 255}},
		{0.75, color.RGBA{255, 128, 0, 255}},
		{2, color.RGBA{255, 0, 0, 255}},
	}

	for _, c := range heat {
		if got := heatColor(c.depth); got != c.want {
			t.Errorf("heatColor(%g) = %v want %v", c.depth, got, c.want)
		}
	}
}

func TestSVG(t *testing.T) {
	s := scene(t, program)

	var buf bytes.Buffer
	if err := SVG(&buf, s, gcode.Point{X: 40, Y: 20}, Classic); err != nil {
		t.Fatalf("SVG failed: %s", err)
	}

	out := buf.String()

	if n := strings.Count(out, "<path "); n != len(s.Primitives) {
		t.Errorf("got %d paths want %d", n, len(s.Primitives))
	}

	for _, want := range []string{
		`width="200.00"`,
		`height="100.00"`,
		"stroke-dasharray:5,3",
		"stroke-dasharray:5,5",
		`data-line="4"`,
		"<circle ",
		"fill:rgb(255,0,0)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}

	parsed, err := svg.ParseSvg(out, "preview", 1)
	if err != nil {
		t.Fatalf("rendered svg does not parse: %s", err)
	}

	if len(parsed.Groups) != 1 {
		t.Errorf("got %d groups want 1", len(parsed.Groups))
	}
}

func TestSVGEmpty(t *testing.T) {
	s := scene(t, "")

	var buf bytes.Buffer
	if err := SVG(&buf, s, gcode.Point{}, Heat); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "<path") || strings.Contains(out, "<circle") {
		t.Errorf("empty scene rendered strokes:\n%s", out)
	}

	if !strings.Contains(out, "fill:rgb(0,0,0)") {
		t.Errorf("heat background missing:\n%s", out)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errFailed
}

var errFailed = errors.New("write failed")

func TestSVGWriteError(t *testing.T) {
	if err := SVG(failingWriter{}, scene(t, program), gcode.Point{}, Classic); !errors.Is(err, errFailed) {
		t.Errorf("got %v want the write error", err)
	}
}

func TestPNG(t *testing.T) {
	s := scene(t, program)
	pos := gcode.Point{X: 10, Y: 10}
	img := PNG(s, pos, Classic)

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("got %v want 200x100", b)
	}

	if got := img.RGBAAt(1, 1); got != colornames.White {
		t.Errorf("corner pixel %v want background", got)
	}

	m := s.Marker(pos)
	if got := img.RGBAAt(int(m.X), int(m.Y)); got != colornames.Red {
		t.Errorf("marker pixel %v want red", got)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, s, pos, Heat); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}

func TestParsePalette(t *testing.T) {
	for _, p := range []Palette{Classic, Heat} {
		got, err := ParsePalette(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePalette(%q) = %v, %v", p.String(), got, err)
		}
	}

	if _, err := ParsePalette("neon"); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("got %v want ErrUnknownPalette", err)
	}
}
