package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/log/level"

	"github.com/marketpanel/pkg/chart"
	"github.com/marketpanel/pkg/models"
)

// ErrNoData is reported when the proxy returned nothing usable for a symbol.
var ErrNoData = errors.New("no data")

// Source answers quote requests; the proxy client satisfies it.
type Source interface {
	Quote(ctx context.Context, request *models.QuoteRequest) (response models.QuoteResponse, err error)
}

// update carries one symbol through the stages of a refresh.
type update struct {
	entry Entry
	slot  Slot
	data  models.QuoteResponse

	last, prev *float64
	series     []float64
}

type stage func(ctx context.Context, u *update) error

func (p *Poller) stages() []stage {
	return []stage{
		p.fetch,
		p.buildSeries,
		p.convert,
		p.render,
	}
}

// Update refreshes the slot of a single entry. On ErrNoData the slot shows an
// error token and a neutral state; the returned error is informational only.
func (p *Poller) Update(ctx context.Context, e Entry) error {
	slot, ok := p.renderer.Slot(e.ID)
	if !ok {
		_ = level.Debug(p.logger).Log("msg", "no slot for symbol", "id", e.ID, "symbol", e.Symbol)
		return nil
	}

	u := &update{entry: e, slot: slot}
	for _, run := range p.stages() {
		if err := run(ctx, u); err != nil {
			slot.SetPrice(errorPrice)
			slot.SetState(StateNeutral)
			return fmt.Errorf("update %s: %w", e.ID, err)
		}
	}
	return nil
}

func (p *Poller) fetch(ctx context.Context, u *update) error {
	data, ok := p.fetchQuote(ctx, u.entry.Symbol, true)
	if !ok {
		return ErrNoData
	}
	u.data = data
	u.last = copyPrice(data.Current)
	u.prev = copyPrice(data.PreviousClose)
	return nil
}

// buildSeries prefers candle closes, then a generic history, then [prev, last].
func (p *Poller) buildSeries(_ context.Context, u *update) error {
	switch {
	case u.data.Candles != nil && u.data.Candles.Closes != nil:
		u.series = tail(u.data.Candles.Closes, p.cfg.SeriesLength)
	case u.data.Historical != nil:
		u.series = tail(u.data.Historical, p.cfg.SeriesLength)
	case u.last != nil && u.prev != nil:
		u.series = []float64{*u.prev, *u.last}
	default:
		u.series = nil
	}
	return nil
}

// convert divides prices by the latest rate when the entry is the conversion symbol.
// A missing or zero rate leaves the prices as they are.
func (p *Poller) convert(ctx context.Context, u *update) error {
	conv := p.cfg.Conversion
	if conv.Symbol == "" || u.entry.Symbol != conv.Symbol {
		return nil
	}

	fx, ok := p.fetchQuote(ctx, conv.RateSymbol, false)
	if !ok {
		return nil
	}
	rate := fx.Current
	if rate == nil {
		rate = fx.PreviousClose
	}
	if rate == nil || *rate == 0 {
		return nil
	}

	u.last = divide(u.last, *rate)
	u.prev = divide(u.prev, *rate)
	for i := range u.series {
		u.series[i] /= *rate
	}
	return nil
}

func (p *Poller) render(_ context.Context, u *update) error {
	pct := PercentChange(u.last, u.prev)
	u.slot.SetPrice(FormatPrice(DisplayPrice(u.last, u.prev), p.cfg.Currency.SuffixFor(u.entry.Symbol)))
	u.slot.SetState(StateOf(u.last, u.prev))
	chart.Draw(u.slot.Surface(), u.series, p.cfg.ChartWindow, chartColor(pct))
	return nil
}

// fetchQuote returns ok == false for any proxy failure, after logging it.
func (p *Poller) fetchQuote(ctx context.Context, symbol string, candles bool) (models.QuoteResponse, bool) {
	data, err := p.source.Quote(ctx, &models.QuoteRequest{Symbol: symbol, Candles: candles})
	if err != nil {
		var status interface{ StatusCode() int }
		if errors.As(err, &status) {
			_ = level.Warn(p.logger).Log("msg", "proxy error", "symbol", symbol, "status", status.StatusCode(), "err", err)
		} else {
			_ = level.Error(p.logger).Log("msg", "fetch error", "symbol", symbol, "err", err)
		}
		return models.QuoteResponse{}, false
	}
	return data, true
}

func tail(series []float64, n int) []float64 {
	if len(series) > n {
		series = series[len(series)-n:]
	}
	return append([]float64{}, series...)
}

func copyPrice(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func divide(v *float64, rate float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v / rate
	return &c
}
