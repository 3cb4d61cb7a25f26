package service

import (
	"context"
	"errors"
	"time"

	"github.com/marketpanel/pkg/finnhub"
	"github.com/marketpanel/pkg/models"
)

const (
	// DefaultCandleWindow covers weekends and market holidays.
	DefaultCandleWindow     = 3 * 24 * time.Hour
	DefaultCandleResolution = "60"
)

// Service is the quote proxy: a quote merged with a best-effort candle series.
type Service interface {
	Quote(ctx context.Context, request *models.QuoteRequest) (response models.QuoteResponse, err error)
}

// Upstream is the market-data source behind the proxy.
type Upstream interface {
	Quote(ctx context.Context, token, symbol string) (models.Quote, error)
	Candles(ctx context.Context, token string, q models.CandleQuery) (models.CandleSeries, bool)
}

type service struct {
	upstream   Upstream
	apiKey     string
	window     time.Duration
	resolution string
	now        func() time.Time
}

func (s *service) Quote(ctx context.Context, request *models.QuoteRequest) (response models.QuoteResponse, err error) {
	if s.apiKey == "" {
		err = ErrMisconfigured
		return
	}

	quote, err := s.upstream.Quote(ctx, s.apiKey, request.Symbol)
	if err != nil {
		var statusErr *finnhub.StatusError
		if errors.As(err, &statusErr) {
			err = NewUpstreamError(statusErr.StatusCode, string(statusErr.Body))
		}
		return
	}
	response.Quote = quote

	to := s.now().Unix()
	series, ok := s.upstream.Candles(ctx, s.apiKey, models.CandleQuery{
		Symbol:     request.Symbol,
		Resolution: s.resolution,
		From:       to - int64(s.window/time.Second),
		To:         to,
	})
	if ok {
		response.Candles = &series
	}
	return
}

// Option configures the service.
type Option func(*service)

// WithCandleWindow sets how far back the candle series reaches.
func WithCandleWindow(window time.Duration) Option {
	return func(s *service) {
		s.window = window
	}
}

// WithCandleResolution sets the upstream candle resolution.
func WithCandleResolution(resolution string) Option {
	return func(s *service) {
		s.resolution = resolution
	}
}

// WithClock overrides the time source used for the candle window.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService returns the proxy service. An empty apiKey is not an error here:
// every request then fails with ErrMisconfigured.
func NewService(upstream Upstream, apiKey string, opts ...Option) Service {
	s := &service{
		upstream:   upstream,
		apiKey:     apiKey,
		window:     DefaultCandleWindow,
		resolution: DefaultCandleResolution,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
