package projector

import (
	"errors"
	"math"
	"testing"

	"github.com/gucio321/plotview/pkg/gcode"
)

const epsilon = 1e-9

func nearPoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6
}

func TestFit(t *testing.T) {
	cases := []struct {
		name     string
		bounds   gcode.BoundingBox
		viewport Size
		padding  float64
		want     Transform
	}{
		{
			name:     "square",
			bounds:   gcode.BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
			viewport: Size{Width: 120, Height: 120},
			padding:  10,
			want:     Transform{Scale: 10, OffsetX: 10, OffsetY: 10, Height: 120},
		},
		{
			name:     "wide viewport centers horizontally",
			bounds:   gcode.BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
			viewport: Size{Width: 220, Height: 120},
			padding:  10,
			want:     Transform{Scale: 10, OffsetX: 60, OffsetY: 10, Height: 120},
		},
		{
			name:     "offset content",
			bounds:   gcode.BoundingBox{MinX: -5, MaxX: 15, MinY: 10, MaxY: 20},
			viewport: Size{Width: 200, Height: 200},
			padding:  0,
			want:     Transform{Scale: 10, OffsetX: 50, OffsetY: -50, Height: 200},
		},
		{
			name:     "degenerate point",
			bounds:   gcode.BoundingBox{MinX: 2, MaxX: 2, MinY: 3, MaxY: 3},
			viewport: Size{Width: 100, Height: 50},
			padding:  5,
			want:     Transform{Scale: 40, OffsetX: 5 + 25 - 80, OffsetY: 5 - 120, Height: 50},
		},
	}

	for _, c := range cases {
		got, err := Fit(c.bounds, c.viewport, c.padding)
		if err != nil {
			t.Errorf("%s: Fit failed: %s", c.name, err)
			continue
		}

		if math.Abs(got.Scale-c.want.Scale) > epsilon ||
			math.Abs(got.OffsetX-c.want.OffsetX) > epsilon ||
			math.Abs(got.OffsetY-c.want.OffsetY) > epsilon ||
			got.Height != c.want.Height {
			t.Errorf("%s: got %+v want %+v", c.name, got, c.want)
		}
	}
}

func TestFitErrors(t *testing.T) {
	box := gcode.BoundingBox{MaxX: 1, MaxY: 1}

	if _, err := Fit(gcode.EmptyBoundingBox(), Size{100, 100}, 10); !errors.Is(err, ErrEmptyBounds) {
		t.Errorf("empty bounds: got %v", err)
	}

	if _, err := Fit(box, Size{100, 20}, 10); !errors.Is(err, ErrViewportTooSmall) {
		t.Errorf("small viewport: got %v", err)
	}

	if _, err := Fit(box, Size{}, 0); !errors.Is(err, ErrViewportTooSmall) {
		t.Errorf("zero viewport: got %v", err)
	}
}

func TestProjectFlipsY(t *testing.T) {
	tr, err := Fit(gcode.BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}, Size{120, 120}, 10)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		in   gcode.Point
		want Point
	}{
		{in: gcode.Point{X: 0, Y: 0}, want: Point{10, 110}},
		{in: gcode.Point{X: 10, Y: 10}, want: Point{110, 10}},
		{in: gcode.Point{X: 5, Y: 0, Z: 7}, want: Point{60, 110}},
	}

	for _, c := range cases {
		got := tr.Project(c.in)
		if !nearPoint(got, c.want) {
			t.Errorf("Project(%v) = %v want %v", c.in, got, c.want)
		}

		back := tr.Unproject(got)
		if math.Abs(back.X-c.in.X) > epsilon || math.Abs(back.Y-c.in.Y) > epsilon {
			t.Errorf("Unproject(%v) = %v want %v", got, back, c.in)
		}
	}

	if line := tr.Line(gcode.Point{}, gcode.Point{X: 10}); len(line) != 2 || !nearPoint(line[1], Point{110, 110}) {
		t.Errorf("Line = %v", line)
	}
}

// identity is an unscaled transform for a 100 unit tall viewport.
func identity() Transform {
	return Transform{Scale: 1, Height: 100}
}

func TestArcEndpoints(t *testing.T) {
	tr := identity()

	for _, s := range []string{
		"G2 X10 Y0 I5 J0",
		"G3 X10 Y0 I5 J0",
		"G0 X10\nG2 X0 Y10 I-10 J0",
		"G0 X10\nG3 X0 Y10 I-10 J0",
		"G3 X6 Y8 R-5",
		"G2 X7 Y3 R20",
	} {
		p, err := gcode.ParseString(s)
		if err != nil {
			t.Fatal(err)
		}

		cmd := p.Commands[len(p.Commands)-1]
		arc, err := gcode.Resolve(cmd)
		if err != nil {
			t.Fatalf("Resolve(%q): %s", s, err)
		}

		pts := tr.Arc(arc, 0)
		if len(pts) != DefaultArcSegments+1 {
			t.Errorf("%q: got %d points want %d", s, len(pts), DefaultArcSegments+1)
		}

		if first := pts[0]; !nearPoint(first, tr.Project(cmd.From)) {
			t.Errorf("%q: starts at %v want %v", s, first, tr.Project(cmd.From))
		}

		if last := pts[len(pts)-1]; !nearPoint(last, tr.Project(cmd.To)) {
			t.Errorf("%q: ends at %v want %v", s, last, tr.Project(cmd.To))
		}

		// the middle sample must lie on the swept side
		mid := tr.Unproject(pts[len(pts)/2])
		want := arc.PointAt(arc.StartAngle + arc.Sweep()/2)
		if math.Abs(mid.X-want.X) > 1e-6 || math.Abs(mid.Y-want.Y) > 1e-6 {
			t.Errorf("%q: midpoint %v want %v", s, mid, want)
		}
	}
}

func TestDeviceSweep(t *testing.T) {
	cases := []struct {
		name  string
		arc   gcode.ResolvedArc
		start float64
		sweep float64
	}{
		{
			name:  "clockwise half",
			arc:   gcode.ResolvedArc{Radius: 5, StartAngle: math.Pi, EndAngle: 0, Clockwise: true},
			start: -math.Pi,
			sweep: math.Pi,
		},
		{
			name:  "counterclockwise quarter",
			arc:   gcode.ResolvedArc{Radius: 5, StartAngle: 0, EndAngle: math.Pi / 2},
			start: 0,
			sweep: -math.Pi / 2,
		},
		{
			name:  "clockwise three quarters",
			arc:   gcode.ResolvedArc{Radius: 5, StartAngle: 0, EndAngle: math.Pi / 2, Clockwise: true},
			start: 0,
			sweep: 3 * math.Pi / 2,
		},
		{
			name:  "full circle clockwise",
			arc:   gcode.ResolvedArc{Radius: 5, StartAngle: 1, EndAngle: 1, FullCircle: true, Clockwise: true},
			start: -1,
			sweep: 2 * math.Pi,
		},
		{
			name:  "full circle counterclockwise",
			arc:   gcode.ResolvedArc{Radius: 5, StartAngle: 1, EndAngle: 1.000001, FullCircle: true},
			start: -1,
			sweep: -2 * math.Pi,
		},
		{
			name:  "zero sweep",
			arc:   gcode.ResolvedArc{Radius: 5, StartAngle: 2, EndAngle: 2},
			start: -2,
			sweep: -2 * math.Pi,
		},
	}

	for _, c := range cases {
		start, sweep := DeviceSweep(c.arc)
		if math.Abs(start-c.start) > epsilon || math.Abs(sweep-c.sweep) > epsilon {
			t.Errorf("%s: got start %g sweep %g want %g, %g", c.name, start, sweep, c.start, c.sweep)
		}

		if math.Abs(sweep+c.arc.Sweep()) > epsilon {
			t.Errorf("%s: device sweep %g is not the mirrored model sweep %g", c.name, sweep, c.arc.Sweep())
		}
	}
}

func TestArcIsMonotonic(t *testing.T) {
	tr := identity()
	center := gcode.Point{X: 50, Y: 50}

	for _, clockwise := range []bool{true, false} {
		arc := gcode.ResolvedArc{Center: center, Radius: 10, StartAngle: 0.3, EndAngle: 2.5, Clockwise: clockwise}
		pts := tr.Arc(arc, 16)

		if len(pts) != 17 {
			t.Fatalf("got %d points want 17", len(pts))
		}

		c := tr.Project(center)
		prev := math.Inf(-1)
		if !clockwise {
			prev = math.Inf(1)
		}

		// unwrap device angles and check the direction never changes
		offset := 0.0
		last := math.NaN()
		for i, p := range pts {
			angle := math.Atan2(p.Y-c.Y, p.X-c.X)
			if !math.IsNaN(last) {
				if angle-last > math.Pi {
					offset -= 2 * math.Pi
				} else if last-angle > math.Pi {
					offset += 2 * math.Pi
				}
			}

			last = angle
			angle += offset

			if clockwise && angle <= prev || !clockwise && angle >= prev {
				t.Errorf("clockwise %v: point %d angle %g does not follow %g", clockwise, i, angle, prev)
			}

			prev = angle

			if r := math.Hypot(p.X-c.X, p.Y-c.Y); math.Abs(r-10) > 1e-9 {
				t.Errorf("clockwise %v: point %d off the circle (r=%g)", clockwise, i, r)
			}
		}
	}
}

func TestArcFullCircle(t *testing.T) {
	p, err := gcode.ParseString("G2 X0 Y0 I5 J0")
	if err != nil {
		t.Fatal(err)
	}

	arc, err := gcode.Resolve(p.Commands[0])
	if err != nil {
		t.Fatal(err)
	}

	tr := identity()
	pts := tr.Arc(arc, 4)
	want := []Point{{0, 100}, {5, 95}, {10, 100}, {5, 105}, {0, 100}}

	if len(pts) != len(want) {
		t.Fatalf("got %d points want %d", len(pts), len(want))
	}

	for i := range want {
		if !nearPoint(pts[i], want[i]) {
			t.Errorf("point %d: got %v want %v", i, pts[i], want[i])
		}
	}
}
