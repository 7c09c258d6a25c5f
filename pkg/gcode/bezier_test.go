package gcode

import (
	"math"
	"testing"
)

func TestBezier(t *testing.T) {
	cases := []struct {
		points []Point
		t      float64
		want   Point
	}{
		{points: []Point{{0, 0, 0}, {10, 0, 0}}, t: 0.3, want: Point{3, 0, 0}},
		{points: []Point{{0, 0, 0}, {5, 10, 0}, {10, 0, 0}}, t: 0.5, want: Point{5, 5, 0}},
		{points: []Point{{0, 0, 0}, {0, 10, 0}, {10, 10, 0}, {10, 0, 0}}, t: 0.5, want: Point{5, 7.5, 0}},
		{points: []Point{{1, 2, 0}, {0, 10, 0}, {10, 10, 0}, {7, 8, 0}}, t: 0, want: Point{1, 2, 0}},
		{points: []Point{{1, 2, 0}, {0, 10, 0}, {10, 10, 0}, {7, 8, 0}}, t: 1, want: Point{7, 8, 0}},
	}

	for i, c := range cases {
		got := bezier(c.t, c.points)
		if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
			t.Errorf("case %d: got %v want %v", i, got, c.want)
		}
	}
}

func TestDrawBezier(t *testing.T) {
	b := NewBuilder()
	if err := b.DrawBezier(8, 0, 0, 0, 10, 10, 10, 10, 0); err != nil {
		t.Fatalf("DrawBezier: %s", err)
	}

	p, err := ParseString(b.String())
	if err != nil {
		t.Fatal(err)
	}

	lines := 0
	for _, cmd := range p.Commands {
		if cmd.Mode == LinearMove {
			lines++
		}
	}

	if lines != 8 {
		t.Errorf("got %d linear moves want 8", lines)
	}

	if got := p.Bounds(); got != (BoundingBox{MinX: 0, MaxX: 10, MinY: 0, MaxY: 7.5}) {
		t.Errorf("Bounds() = %+v", got)
	}

	if err := b.DrawBezier(0, 0, 0, 1, 1); err == nil {
		t.Error("zero steps did not fail")
	}

	if err := b.DrawBezier(4, 0, 0); err == nil {
		t.Error("single point did not fail")
	}
}
