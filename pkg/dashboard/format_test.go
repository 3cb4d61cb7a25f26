package dashboard

import "testing"

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name       string
		last, prev *float64
		want       float64
	}{
		{name: "gain", last: price(105), prev: price(100), want: 5},
		{name: "loss", last: price(90), prev: price(100), want: -10},
		{name: "zero prev", last: price(5), prev: price(0), want: 0},
		{name: "missing last", prev: price(100), want: 0},
		{name: "missing prev", last: price(100), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.last, tt.prev); got != tt.want {
				t.Errorf("PercentChange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name       string
		last, prev *float64
		want       State
	}{
		{name: "up", last: price(2), prev: price(1), want: StateUp},
		{name: "down", last: price(1), prev: price(2), want: StateDown},
		{name: "equal", last: price(1), prev: price(1), want: StateNeutral},
		{name: "missing last", prev: price(1), want: StateNeutral},
		{name: "missing prev", last: price(1), want: StateNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StateOf(tt.last, tt.prev); got != tt.want {
				t.Errorf("StateOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		price  *float64
		suffix string
		want   string
	}{
		{name: "two decimals", price: price(105), want: "105.00"},
		{name: "rounds", price: price(1.234), want: "1.23"},
		{name: "suffix", price: price(2345.5), suffix: " €", want: "2345.50 €"},
		{name: "negative", price: price(-3.1), want: "-3.10"},
		{name: "missing", price: nil, suffix: " €", want: "—"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPrice(tt.price, tt.suffix); got != tt.want {
				t.Errorf("FormatPrice = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayPrice(t *testing.T) {
	if got := DisplayPrice(price(1), price(2)); *got != 1 {
		t.Errorf("DisplayPrice = %v, want last", *got)
	}
	if got := DisplayPrice(nil, price(2)); *got != 2 {
		t.Errorf("DisplayPrice = %v, want prev", *got)
	}
	if got := DisplayPrice(nil, nil); got != nil {
		t.Errorf("DisplayPrice = %v, want nil", *got)
	}
}

func TestChartColor(t *testing.T) {
	if got := chartColor(0); got != colorGain {
		t.Errorf("chartColor(0) = %s, want gain color", got)
	}
	if got := chartColor(-0.1); got != colorLoss {
		t.Errorf("chartColor(-0.1) = %s, want loss color", got)
	}
}
