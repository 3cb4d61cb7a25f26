package terminal

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marketpanel/pkg/chart"
)

const (
	lineRune = '•'
	fillRune = '░'
)

type cell struct {
	r     rune
	color string
	faint bool
}

// Surface is a character grid chart.Draw can paint on. One cell is one unit of
// the chart coordinate space.
type Surface struct {
	cols, rows int
	cells      [][]cell
}

// NewSurface creates an empty cols x rows surface.
func NewSurface(cols, rows int) *Surface {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	s := &Surface{cols: cols, rows: rows, cells: make([][]cell, rows)}
	for i := range s.cells {
		s.cells[i] = make([]cell, cols)
	}
	return s
}

// Size maps the chart space onto cell indexes 0..cols-1 and 0..rows-1.
func (s *Surface) Size() (float64, float64) {
	return float64(s.cols - 1), float64(s.rows - 1)
}

// Clear empties every cell.
func (s *Surface) Clear() {
	for _, row := range s.cells {
		for i := range row {
			row[i] = cell{}
		}
	}
}

// Stroke rasterizes the polyline. The grid has no sub-cell resolution, so width is ignored.
func (s *Surface) Stroke(path []chart.Point, color string, _ float64) {
	if len(path) == 1 {
		s.set(path[0], cell{r: lineRune, color: color})
		return
	}
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
		if steps == 0 {
			steps = 1
		}
		for j := 0; j <= steps; j++ {
			t := float64(j) / float64(steps)
			s.set(chart.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}, cell{r: lineRune, color: color})
		}
	}
}

// Fill shades the empty cells whose centre lies inside polygon. Terminals have
// no opacity, so any alpha below one renders faint.
func (s *Surface) Fill(polygon []chart.Point, color string, alpha float64) {
	if len(polygon) < 3 {
		return
	}
	for y, row := range s.cells {
		for x := range row {
			if row[x].r != 0 {
				continue
			}
			if inside(polygon, float64(x), float64(y)) {
				row[x] = cell{r: fillRune, color: color, faint: alpha < 1}
			}
		}
	}
}

// Lines renders the grid, one string per row.
func (s *Surface) Lines() []string {
	out := make([]string, 0, s.rows)
	for _, row := range s.cells {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteByte(' ')
				continue
			}
			st := lipgloss.NewStyle().Foreground(lipgloss.Color(c.color)).Faint(c.faint)
			b.WriteString(st.Render(string(c.r)))
		}
		out = append(out, b.String())
	}
	return out
}

// String renders the grid as plain runes, without styling.
func (s *Surface) String() string {
	var b strings.Builder
	for i, row := range s.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			if c.r == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteRune(c.r)
			}
		}
	}
	return b.String()
}

func (s *Surface) set(p chart.Point, c cell) {
	x, y := int(math.Round(p.X)), int(math.Round(p.Y))
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.cells[y][x] = c
}

// inside is the even-odd ray casting test.
func inside(polygon []chart.Point, x, y float64) bool {
	in := false
	j := len(polygon) - 1
	for i := range polygon {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}
