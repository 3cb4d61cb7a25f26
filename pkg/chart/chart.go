// Package chart turns a price series into a smoothed line-and-fill mini chart.
package chart

import "math"

const (
	// DefaultSmoothWindow is the trailing window used when callers have no preference.
	DefaultSmoothWindow = 3
	// DefaultChartWindow is the window applied before plotting.
	DefaultChartWindow = 4

	LineWidth = 2
	FillAlpha = 0.06
)

// Point is a position on a drawing surface, origin at the top-left corner.
type Point struct {
	X, Y float64
}

// Surface is anything a chart can be drawn on.
type Surface interface {
	Size() (width, height float64)
	Clear()
	Stroke(path []Point, color string, width float64)
	Fill(polygon []Point, color string, alpha float64)
}

// Smooth returns the trailing moving average of series over up to window samples.
// The first window-1 points average over the samples available so far.
// Series no longer than window are returned as an unmodified copy.
func Smooth(series []float64, window int) []float64 {
	if len(series) <= window || window < 1 {
		return append([]float64(nil), series...)
	}

	out := make([]float64, len(series))
	for i := range series {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, v := range series[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}

// Plot maps series onto a width x height surface: x is proportional to the index,
// y is min-max normalized with the maximum at the top.
// A flat series is plotted along the bottom edge.
func Plot(series []float64, width, height float64) []Point {
	if len(series) == 0 {
		return nil
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range series {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	last := float64(len(series) - 1)
	if last == 0 {
		last = 1
	}

	points := make([]Point, len(series))
	for i, v := range series {
		points[i] = Point{
			X: float64(i) / last * width,
			Y: height - (v-lo)/span*height,
		}
	}
	return points
}

// Draw clears s and, when series has at least two samples, strokes the smoothed
// series and fills the area beneath it down to the bottom edge.
func Draw(s Surface, series []float64, window int, color string) {
	if s == nil {
		return
	}
	s.Clear()
	if len(series) < 2 {
		return
	}

	width, height := s.Size()
	line := Plot(Smooth(series, window), width, height)
	s.Stroke(line, color, LineWidth)

	area := make([]Point, 0, len(line)+2)
	area = append(area, line...)
	area = append(area, Point{X: width, Y: height}, Point{X: 0, Y: height})
	s.Fill(area, color, FillAlpha)
}
