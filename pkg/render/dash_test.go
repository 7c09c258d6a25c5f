package render

import (
	"math"
	"testing"

	"github.com/gucio321/plotview/pkg/projector"
)

func TestDashes(t *testing.T) {
	type pts = []projector.Point

	cases := []struct {
		name    string
		points  pts
		pattern []float64
		want    []pts
	}{
		{
			name:   "solid",
			points: pts{{X: 0, Y: 0}, {X: 10, Y: 0}},
			want:   []pts{{{X: 0, Y: 0}, {X: 10, Y: 0}}},
		},
		{
			name:    "straight",
			points:  pts{{X: 0, Y: 0}, {X: 10, Y: 0}},
			pattern: []float64{2, 3},
			want:    []pts{{{X: 0, Y: 0}, {X: 2, Y: 0}}, {{X: 5, Y: 0}, {X: 7, Y: 0}}},
		},
		{
			name:    "corner",
			points:  pts{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}},
			pattern: []float64{3, 2},
			want:    []pts{{{X: 0, Y: 0}, {X: 3, Y: 0}}, {{X: 4, Y: 1}, {X: 4, Y: 4}}},
		},
		{
			name:    "dash spanning a corner",
			points:  pts{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 10}},
			pattern: []float64{3, 1},
			want:    []pts{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}, {{X: 2, Y: 2}, {X: 2, Y: 5}}, {{X: 2, Y: 6}, {X: 2, Y: 9}}},
		},
		{
			name:    "odd pattern",
			points:  pts{{X: 0, Y: 0}, {X: 0, Y: 9}},
			pattern: []float64{2},
			want:    []pts{{{X: 0, Y: 0}, {X: 0, Y: 2}}, {{X: 0, Y: 4}, {X: 0, Y: 6}}, {{X: 0, Y: 8}, {X: 0, Y: 9}}},
		},
		{
			name:    "zero pattern",
			points:  pts{{X: 0, Y: 0}, {X: 1, Y: 1}},
			pattern: []float64{0, 0},
			want:    []pts{{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		},
	}

	for _, c := range cases {
		got := Dashes(c.points, c.pattern)
		if len(got) != len(c.want) {
			t.Errorf("%s: got %d dashes %v want %d", c.name, len(got), got, len(c.want))
			continue
		}

		for i := range got {
			if len(got[i]) != len(c.want[i]) {
				t.Errorf("%s: dash %d is %v want %v", c.name, i, got[i], c.want[i])
				continue
			}

			for j := range got[i] {
				if math.Abs(got[i][j].X-c.want[i][j].X) > 1e-9 || math.Abs(got[i][j].Y-c.want[i][j].Y) > 1e-9 {
					t.Errorf("%s: dash %d is %v want %v", c.name, i, got[i], c.want[i])
					break
				}
			}
		}
	}
}
