// Package viewer shows a program in an ebiten window.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kpango/glg"

	"github.com/gucio321/plotview/pkg/gcode"
	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/render"
)

var _ ebiten.Game = &Viewer{}

const (
	zoomStep = 0.1
	maxZoom  = 20
)

var jogKeys = map[ebiten.Key]struct {
	axis preview.Axis
	dir  int
}{
	ebiten.KeyArrowLeft:  {preview.AxisX, -1},
	ebiten.KeyArrowRight: {preview.AxisX, 1},
	ebiten.KeyArrowUp:    {preview.AxisY, 1},
	ebiten.KeyArrowDown:  {preview.AxisY, -1},
	ebiten.KeyPageDown:   {preview.AxisZ, 1},
	ebiten.KeyPageUp:     {preview.AxisZ, -1},
	ebiten.KeyHome:       {preview.AxisHome, 0},
}

// Viewer draws a program laid out for the current window size. It owns the current
// tool position, which is moved with the keyboard.
type Viewer struct {
	program *gcode.Program
	options preview.Options
	palette render.Palette

	scene  *preview.Scene
	canvas *ebiten.Image
	width  int
	height int

	position gcode.Point
	zoom     float64
}

// NewViewer creates a viewer of program. The viewport of opts is replaced with the
// window size on every layout change.
func NewViewer(program *gcode.Program, opts preview.Options, palette render.Palette) *Viewer {
	for _, w := range program.Warnings {
		glg.Warnf("%s", w)
	}

	return &Viewer{
		program: program,
		options: opts,
		palette: palette,
		zoom:    1,
	}
}

// Position returns the current tool position.
func (v *Viewer) Position() gcode.Point {
	return v.position
}

// SetPosition moves the tool marker.
func (v *Viewer) SetPosition(p gcode.Point) {
	v.position = p
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.zoom = clamp(v.zoom+wheelY*zoomStep, 1, maxZoom)

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.zoom = 1
	}

	for key, jog := range jogKeys {
		if inpututil.IsKeyJustPressed(key) {
			v.position = preview.Jog(v.position, jog.axis, jog.dir)
			glg.Debugf("position %s", preview.PositionLabel(v.position))
		}
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(v.palette.Background())

	if v.canvas == nil {
		return
	}

	mouseX, mouseY := ebiten.CursorPosition()
	geom := zoomAround(v.zoom, float64(mouseX), float64(mouseY))

	screen.DrawImage(v.canvas, &ebiten.DrawImageOptions{GeoM: geom})

	if !v.scene.Empty {
		x, y := geom.Apply(point(v.scene.Marker(v.position)))
		drawMarker(screen, x, y)
	}

	ebitenutil.DebugPrint(screen, preview.BoundsLabel(v.scene.Bounds)+"\n"+preview.PositionLabel(v.position))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.rebuild(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight
}

// rebuild lays the program out again for a w x h window.
func (v *Viewer) rebuild(w, h int) {
	v.width, v.height = w, h

	opts := v.options
	opts.Viewport.Width, opts.Viewport.Height = float64(w), float64(h)

	scene, err := preview.Build(v.program, opts)
	if err != nil {
		glg.Errorf("Cannot lay out program for %dx%d: %v", w, h, err)
		return
	}

	if v.canvas != nil {
		v.canvas.Deallocate()
	}

	v.scene = scene
	v.canvas = ebiten.NewImage(w, h)
	v.paint(v.canvas)
}

func (v *Viewer) paint(dest *ebiten.Image) {
	if v.scene.Empty {
		return
	}

	strokeRect(dest, v.scene.Frame)

	for _, prim := range v.scene.Primitives {
		strokePolyline(dest, prim.Points, v.palette.StyleFor(prim))
	}
}
