package dashboard

import "github.com/marketpanel/pkg/chart"

// State is the visual trend state of a slot.
type State int

const (
	StateNeutral State = iota
	StateUp
	StateDown
)

func (s State) String() string {
	switch s {
	case StateUp:
		return "up"
	case StateDown:
		return "down"
	default:
		return "neutral"
	}
}

// Slot is the display binding of one symbol. A slot's state applies to both
// its container and its price text.
type Slot interface {
	SetPrice(text string)
	SetState(state State)
	// Surface returns the chart surface, or nil when the slot has none.
	Surface() chart.Surface
}

// Renderer owns the slots.
type Renderer interface {
	// Slot returns the slot bound to id; ok is false when no such slot exists.
	Slot(id string) (slot Slot, ok bool)
	// Flush publishes the slots after a cycle.
	Flush() error
}
