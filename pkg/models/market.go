package models

// Quote is a point-in-time quote as reported by Finnhub. Any field may be missing.
type Quote struct {
	Current       *float64 `json:"c"`
	Change        *float64 `json:"d"`
	PercentChange *float64 `json:"dp"`
	High          *float64 `json:"h"`
	Low           *float64 `json:"l"`
	Open          *float64 `json:"o"`
	PreviousClose *float64 `json:"pc"`
	Timestamp     *int64   `json:"t"`
}

// CandleSeries holds parallel timestamp and close sequences.
type CandleSeries struct {
	Timestamps []int64   `json:"t"`
	Closes     []float64 `json:"c"`
}

// UpstreamCandles is the raw /stock/candle payload.
type UpstreamCandles struct {
	Closes     []float64 `json:"c"`
	Highs      []float64 `json:"h"`
	Lows       []float64 `json:"l"`
	Opens      []float64 `json:"o"`
	Volumes    []float64 `json:"v"`
	Timestamps []int64   `json:"t"`
	Status     string    `json:"s"`
}

// CandleStatusOK is the status Finnhub reports for a usable candle payload.
const CandleStatusOK = "ok"

// OK reports whether upstream marked the payload as healthy.
func (c UpstreamCandles) OK() bool {
	return c.Status == CandleStatusOK
}

// Series extracts the timestamp/close pair.
func (c UpstreamCandles) Series() CandleSeries {
	return CandleSeries{Timestamps: c.Timestamps, Closes: c.Closes}
}

//easyjson:skip
type CandleQuery struct {
	Symbol     string
	Resolution string
	From       int64
	To         int64
}
