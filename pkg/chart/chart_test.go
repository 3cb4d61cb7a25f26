package chart

import (
	"math"
	"testing"
)

func TestSmooth(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		window int
		want   []float64
	}{
		{
			name:   "trailing average with shrinking head",
			series: []float64{1, 2, 3, 4, 5, 6},
			window: 3,
			want:   []float64{1, 1.5, 2, 3, 4, 5},
		},
		{
			name:   "window of four",
			series: []float64{4, 8, 4, 8, 4},
			window: 4,
			want:   []float64{4, 6, 16.0 / 3, 6, 6},
		},
		{
			name:   "constant series",
			series: []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5},
			window: 3,
			want:   []float64{2.5, 2.5, 2.5, 2.5, 2.5, 2.5, 2.5},
		},
		{
			name:   "length equal to window passes through",
			series: []float64{1, 9, 4},
			window: 3,
			want:   []float64{1, 9, 4},
		},
		{
			name:   "shorter than window passes through",
			series: []float64{7, 3},
			window: 4,
			want:   []float64{7, 3},
		},
		{
			name:   "empty",
			series: []float64{},
			window: 3,
			want:   []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smooth(tt.series, tt.window)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSmooth_ReturnsCopy(t *testing.T) {
	in := []float64{1, 2}
	out := Smooth(in, 3)
	out[0] = 99
	if in[0] != 1 {
		t.Errorf("input mutated: %v", in)
	}

	long := []float64{1, 2, 3, 4, 5}
	_ = Smooth(long, 2)
	if long[4] != 5 {
		t.Errorf("input mutated: %v", long)
	}
}

func TestPlot(t *testing.T) {
	pts := Plot([]float64{10, 20, 15}, 100, 50)
	want := []Point{{0, 50}, {50, 0}, {100, 25}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("pts[%d] = %+v, want %+v", i, pts[i], want[i])
		}
	}
}

func TestPlot_FlatSeries(t *testing.T) {
	pts := Plot([]float64{3, 3, 3}, 10, 8)
	for i, p := range pts {
		if p.Y != 8 {
			t.Errorf("pts[%d].Y = %v, want 8", i, p.Y)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Errorf("pts[%d] = %+v contains NaN", i, p)
		}
	}
}

// recordingSurface captures draw calls.
type recordingSurface struct {
	w, h    float64
	cleared int
	stroke  []Point
	color   string
	width   float64
	fill    []Point
	alpha   float64
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }
func (r *recordingSurface) Clear()                   { r.cleared++ }
func (r *recordingSurface) Stroke(path []Point, color string, width float64) {
	r.stroke, r.color, r.width = path, color, width
}
func (r *recordingSurface) Fill(polygon []Point, color string, alpha float64) {
	r.fill, r.alpha = polygon, alpha
}

func TestDraw(t *testing.T) {
	s := &recordingSurface{w: 120, h: 40}
	Draw(s, []float64{1, 2, 3, 4, 5, 6}, DefaultChartWindow, "#b6ffb0")

	if s.cleared != 1 {
		t.Errorf("cleared = %d, want 1", s.cleared)
	}
	if len(s.stroke) != 6 {
		t.Fatalf("stroke points = %d, want 6", len(s.stroke))
	}
	if s.color != "#b6ffb0" || s.width != LineWidth {
		t.Errorf("stroke color=%q width=%v", s.color, s.width)
	}
	if len(s.fill) != 8 {
		t.Fatalf("fill points = %d, want 8", len(s.fill))
	}
	if s.fill[6] != (Point{120, 40}) || s.fill[7] != (Point{0, 40}) {
		t.Errorf("fill not closed along the bottom edge: %+v", s.fill[6:])
	}
	if s.alpha != FillAlpha {
		t.Errorf("alpha = %v, want %v", s.alpha, FillAlpha)
	}
}

func TestDraw_TooShort(t *testing.T) {
	for _, series := range [][]float64{nil, {42}} {
		s := &recordingSurface{w: 10, h: 10}
		Draw(s, series, DefaultChartWindow, "#fff")
		if s.cleared != 1 {
			t.Errorf("cleared = %d, want 1", s.cleared)
		}
		if s.stroke != nil || s.fill != nil {
			t.Errorf("drew a chart for %v", series)
		}
	}
}

func TestDraw_NilSurface(t *testing.T) {
	Draw(nil, []float64{1, 2, 3}, DefaultChartWindow, "#fff")
}
