package viewer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gucio321/plotview/pkg/preview"
	"github.com/gucio321/plotview/pkg/projector"
	"github.com/gucio321/plotview/pkg/render"
)

func clamp(v, low, high float64) float64 {
	return math.Min(high, math.Max(low, v))
}

// zoomAround scales by zoom keeping the point under the cursor in place.
func zoomAround(zoom, x, y float64) ebiten.GeoM {
	geom := ebiten.GeoM{}
	geom.Translate(-x, -y)
	geom.Scale(zoom, zoom)
	geom.Translate(x, y)

	return geom
}

func point(p projector.Point) (x, y float64) {
	return p.X, p.Y
}

func strokePolyline(dest *ebiten.Image, points []projector.Point, style render.Style) {
	for _, dash := range render.Dashes(points, style.Dash) {
		for i := 1; i < len(dash); i++ {
			vector.StrokeLine(dest,
				float32(dash[i-1].X), float32(dash[i-1].Y),
				float32(dash[i].X), float32(dash[i].Y),
				float32(style.Width), style.Color, true)
		}
	}
}

func strokeRect(dest *ebiten.Image, r preview.Rect) {
	strokePolyline(dest, []projector.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
		{X: r.X, Y: r.Y},
	}, render.FrameStyle())
}

func drawMarker(dest *ebiten.Image, x, y float64) {
	vector.DrawFilledCircle(dest, float32(x), float32(y), render.MarkerRadius, render.MarkerColor, true)
}
