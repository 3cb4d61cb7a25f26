// Package finnhub is a small fasthttp client for the Finnhub quote and candle endpoints.
package finnhub

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/valyala/fasthttp"

	"github.com/marketpanel/pkg/models"
)

// DefaultBaseURL is the public Finnhub REST root.
const DefaultBaseURL = "https://finnhub.io/api/v1"

const (
	pathQuote   = "/quote"
	pathCandles = "/stock/candle"
)

// StatusError is returned when Finnhub answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("finnhub status %d: %s", e.StatusCode, e.Body)
}

// Client talks to a single Finnhub host.
type Client struct {
	cli     *fasthttp.HostClient
	baseURL string
	logger  log.Logger
	misses  metrics.Counter
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for best-effort misses.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMissCounter counts candle requests that produced no series.
func WithMissCounter(counter metrics.Counter) Option {
	return func(c *Client) {
		c.misses = counter
	}
}

// NewClient the client creator
func NewClient(cli *fasthttp.HostClient, baseURL string, opts ...Option) *Client {
	c := &Client{
		cli:     cli,
		baseURL: baseURL,
		logger:  log.NewNopLogger(),
		misses:  discard.NewCounter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quote fetches the latest quote for symbol.
func (c *Client) Quote(ctx context.Context, token, symbol string) (quote models.Quote, err error) {
	req, res := fasthttp.AcquireRequest(), fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(res)
	}()

	c.prepare(req, pathQuote, token)
	req.URI().QueryArgs().Add("symbol", symbol)

	if err = c.do(ctx, req, res); err != nil {
		return quote, fmt.Errorf("quote %s: %w", symbol, err)
	}
	if code := res.StatusCode(); code < 200 || code > 299 {
		return quote, &StatusError{StatusCode: code, Body: append([]byte(nil), res.Body()...)}
	}
	if err = quote.UnmarshalJSON(res.Body()); err != nil {
		return quote, fmt.Errorf("decode quote %s: %w", symbol, err)
	}
	return quote, nil
}

// Candles fetches a candle series. The call is best-effort: any failure, including
// an unhealthy status inside the payload, reports ok == false.
func (c *Client) Candles(ctx context.Context, token string, q models.CandleQuery) (series models.CandleSeries, ok bool) {
	req, res := fasthttp.AcquireRequest(), fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(res)
	}()

	c.prepare(req, pathCandles, token)
	args := req.URI().QueryArgs()
	args.Add("symbol", q.Symbol)
	args.Add("resolution", q.Resolution)
	args.Add("from", strconv.FormatInt(q.From, 10))
	args.Add("to", strconv.FormatInt(q.To, 10))

	if err := c.do(ctx, req, res); err != nil {
		c.miss(q.Symbol, "err", err)
		return series, false
	}
	if code := res.StatusCode(); code < 200 || code > 299 {
		c.miss(q.Symbol, "status", code)
		return series, false
	}

	var raw models.UpstreamCandles
	if err := raw.UnmarshalJSON(res.Body()); err != nil {
		c.miss(q.Symbol, "err", err)
		return series, false
	}
	if !raw.OK() {
		c.miss(q.Symbol, "candle_status", raw.Status)
		return series, false
	}
	return raw.Series(), true
}

func (c *Client) prepare(req *fasthttp.Request, path, token string) {
	req.Header.SetMethod(http.MethodGet)
	req.SetRequestURI(c.baseURL + path)
	req.URI().QueryArgs().Add("token", token)
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, res *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		return c.cli.DoDeadline(req, res, deadline)
	}
	return c.cli.Do(req, res)
}

func (c *Client) miss(symbol string, keyvals ...interface{}) {
	c.misses.Add(1)
	_ = level.Debug(c.logger).Log(append([]interface{}{"msg", "candles unavailable", "symbol", symbol}, keyvals...)...)
}
