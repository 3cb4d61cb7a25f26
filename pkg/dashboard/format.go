package dashboard

import "github.com/shopspring/decimal"

const (
	placeholderPrice = "—"
	errorPrice       = "ERR"

	colorGain = "#b6ffb0"
	colorLoss = "#ffb6b6"
)

// PercentChange is (last-prev)/prev*100, or 0 when either price is missing or prev is zero.
func PercentChange(last, prev *float64) float64 {
	if last == nil || prev == nil || *prev == 0 {
		return 0
	}
	return (*last - *prev) / *prev * 100
}

// StateOf compares last against prev.
func StateOf(last, prev *float64) State {
	if last == nil || prev == nil {
		return StateNeutral
	}
	switch {
	case *last > *prev:
		return StateUp
	case *last < *prev:
		return StateDown
	default:
		return StateNeutral
	}
}

// DisplayPrice picks last, then prev.
func DisplayPrice(last, prev *float64) *float64 {
	if last != nil {
		return last
	}
	return prev
}

// FormatPrice renders price with two decimals followed by suffix.
func FormatPrice(price *float64, suffix string) string {
	if price == nil {
		return placeholderPrice
	}
	return decimal.NewFromFloat(*price).StringFixed(2) + suffix
}

func chartColor(pct float64) string {
	if pct >= 0 {
		return colorGain
	}
	return colorLoss
}
