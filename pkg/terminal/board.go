// Package terminal renders the dashboard as a grid of bordered cards on a text terminal.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/marketpanel/pkg/chart"
	"github.com/marketpanel/pkg/dashboard"
)

const (
	defaultColumns     = 4
	defaultChartWidth  = 24
	defaultChartHeight = 6

	cardPadding = 1
	clearScreen = "\x1b[H\x1b[2J"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	idStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	upStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	downStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, cardPadding)
)

func stateStyle(s dashboard.State) lipgloss.Style {
	switch s {
	case dashboard.StateUp:
		return upStyle
	case dashboard.StateDown:
		return downStyle
	default:
		return neutralStyle
	}
}

func borderColor(s dashboard.State) lipgloss.Color {
	switch s {
	case dashboard.StateUp:
		return lipgloss.Color("10")
	case dashboard.StateDown:
		return lipgloss.Color("9")
	default:
		return lipgloss.Color("240")
	}
}

type slot struct {
	mu     sync.Mutex
	id     string
	symbol string
	price  string
	state  dashboard.State
	chart  *Surface
}

func (s *slot) SetPrice(text string) {
	s.mu.Lock()
	s.price = text
	s.mu.Unlock()
}

func (s *slot) SetState(state dashboard.State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *slot) Surface() chart.Surface {
	return s.chart
}

func (s *slot) view(width int) string {
	s.mu.Lock()
	price, state := s.price, s.state
	s.mu.Unlock()

	lines := []string{
		idStyle.Render(strings.ToUpper(s.id)) + " " + dimStyle.Render(s.symbol),
		stateStyle(state).Render(price),
	}
	lines = append(lines, s.chart.Lines()...)

	return cardStyle.Copy().
		BorderForeground(borderColor(state)).
		Width(width+2*cardPadding).
		Render(strings.Join(lines, "\n"))
}

// Option configures a Board.
type Option func(*Board)

// WithColumns sets the number of cards per row.
func WithColumns(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.columns = n
		}
	}
}

// WithChartSize sets the chart grid size of every card.
func WithChartSize(cols, rows int) Option {
	return func(b *Board) {
		if cols > 0 {
			b.chartWidth = cols
		}
		if rows > 0 {
			b.chartHeight = rows
		}
	}
}

// WithClearScreen makes every Flush redraw the board from the top of the screen.
func WithClearScreen() Option {
	return func(b *Board) {
		b.clear = true
	}
}

// WithClock overrides the time shown in the title bar.
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// Board holds one card per registry entry and writes them to out on Flush.
type Board struct {
	out   io.Writer
	title string
	order []string
	slots map[string]*slot

	columns     int
	chartWidth  int
	chartHeight int
	clear       bool
	now         func() time.Time
}

// NewBoard creates a card for every entry, in registry order. New cards show a
// placeholder price and a neutral state.
func NewBoard(out io.Writer, title string, entries []dashboard.Entry, opts ...Option) *Board {
	b := &Board{
		out:         out,
		title:       title,
		slots:       make(map[string]*slot, len(entries)),
		columns:     defaultColumns,
		chartWidth:  defaultChartWidth,
		chartHeight: defaultChartHeight,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, e := range entries {
		if _, ok := b.slots[e.ID]; ok {
			continue
		}
		b.order = append(b.order, e.ID)
		b.slots[e.ID] = &slot{
			id:     e.ID,
			symbol: e.Symbol,
			price:  dashboard.FormatPrice(nil, ""),
			state:  dashboard.StateNeutral,
			chart:  NewSurface(b.chartWidth, b.chartHeight),
		}
	}
	return b
}

// Slot implements dashboard.Renderer.
func (b *Board) Slot(id string) (dashboard.Slot, bool) {
	s, ok := b.slots[id]
	if !ok {
		return nil, false
	}
	return s, true
}

// Flush implements dashboard.Renderer.
func (b *Board) Flush() error {
	_, err := io.WriteString(b.out, b.View())
	return err
}

// View renders the whole board.
func (b *Board) View() string {
	var sb strings.Builder
	if b.clear {
		sb.WriteString(clearScreen)
	}

	header := fmt.Sprintf(" %s  %s ", b.title, b.now().Format("15:04:05"))
	sb.WriteString(titleStyle.Render(header))
	sb.WriteString("\n")

	cards := make([]string, 0, len(b.order))
	for _, id := range b.order {
		cards = append(cards, b.slots[id].view(b.chartWidth))
	}

	rows := make([]string, 0, len(cards)/b.columns+1)
	for i := 0; i < len(cards); i += b.columns {
		end := i + b.columns
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	sb.WriteString("\n")
	return sb.String()
}
