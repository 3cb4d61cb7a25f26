package models

//easyjson:skip
type QuoteRequest struct {
	Symbol string
	// Candles mirrors the candle=1 flag sent by the dashboard.
	Candles bool
}

// QuoteResponse is the merged payload returned by the proxy.
// Quote fields are always present and null when unknown.
type QuoteResponse struct {
	Quote
	Candles *CandleSeries `json:"candles,omitempty"`
	// Historical is a generic close series some proxies expose instead of candles.
	Historical []float64 `json:"historical,omitempty"`
}

type ErrorResponse struct {
	Error   string  `json:"error"`
	Message string  `json:"message,omitempty"`
	Status  int     `json:"status,omitempty"`
	Body    *string `json:"body,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
