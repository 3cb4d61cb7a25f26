package finnhub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/valyala/fasthttp"

	"github.com/marketpanel/pkg/models"
	"github.com/marketpanel/pkg/testutils"
)

func newTestClient(t *testing.T, handler fasthttp.RequestHandler) *Client {
	t.Helper()
	srv := testutils.NewServer(t, "finnhub.test", handler)
	return NewClient(srv.Client, srv.URL+"/api/v1")
}

func TestClient_Quote(t *testing.T) {
	var gotPath, gotSymbol, gotToken string
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		gotPath = string(ctx.Path())
		gotSymbol = string(ctx.QueryArgs().Peek("symbol"))
		gotToken = string(ctx.QueryArgs().Peek("token"))
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"c":105,"d":5,"dp":5,"h":106,"l":99,"o":100,"pc":100,"t":1700000000}`)
	})

	q, err := c.Quote(context.Background(), "secret", "NASDAQ:AAPL")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if gotPath != "/api/v1/quote" {
		t.Errorf("path = %q, want %q", gotPath, "/api/v1/quote")
	}
	if gotSymbol != "NASDAQ:AAPL" {
		t.Errorf("symbol = %q, want %q", gotSymbol, "NASDAQ:AAPL")
	}
	if gotToken != "secret" {
		t.Errorf("token = %q, want %q", gotToken, "secret")
	}
	if q.Current == nil || *q.Current != 105 {
		t.Errorf("Current = %v, want 105", q.Current)
	}
	if q.PreviousClose == nil || *q.PreviousClose != 100 {
		t.Errorf("PreviousClose = %v, want 100", q.PreviousClose)
	}
	if q.Timestamp == nil || *q.Timestamp != 1700000000 {
		t.Errorf("Timestamp = %v, want 1700000000", q.Timestamp)
	}
}

func TestClient_QuoteNullFields(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"c":null,"pc":50}`)
	})

	q, err := c.Quote(context.Background(), "secret", "X")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if q.Current != nil {
		t.Errorf("Current = %v, want nil", *q.Current)
	}
	if q.High != nil {
		t.Errorf("High = %v, want nil", *q.High)
	}
	if q.PreviousClose == nil || *q.PreviousClose != 50 {
		t.Errorf("PreviousClose = %v, want 50", q.PreviousClose)
	}
}

func TestClient_QuoteStatusError(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
		ctx.SetBodyString("API limit reached")
	})

	_, err := c.Quote(context.Background(), "secret", "X")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != fasthttp.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, fasthttp.StatusTooManyRequests)
	}
	if string(statusErr.Body) != "API limit reached" {
		t.Errorf("Body = %q, want %q", statusErr.Body, "API limit reached")
	}
}

func TestClient_QuoteMalformed(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"c":`)
	})

	_, err := c.Quote(context.Background(), "secret", "X")
	if err == nil {
		t.Fatal("expected decode error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("decode failure must not be a StatusError")
	}
}

func TestClient_QuoteCancelledContext(t *testing.T) {
	called := false
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		called = true
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Quote(ctx, "secret", "X"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if called {
		t.Error("upstream called with cancelled context")
	}
}

func TestClient_Candles(t *testing.T) {
	var args map[string]string
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		args = map[string]string{}
		ctx.QueryArgs().VisitAll(func(k, v []byte) {
			args[string(k)] = string(v)
		})
		ctx.SetBodyString(`{"c":[1,2,3],"h":[1,2,3],"l":[1,2,3],"o":[1,2,3],"v":[10,10,10],"t":[100,200,300],"s":"ok"}`)
	})

	q := models.CandleQuery{Symbol: "NASDAQ:NVDA", Resolution: "60", From: 1000, To: 2000}
	series, ok := c.Candles(context.Background(), "secret", q)
	if !ok {
		t.Fatal("Candles reported a miss")
	}

	want := map[string]string{
		"symbol":     "NASDAQ:NVDA",
		"resolution": "60",
		"from":       "1000",
		"to":         "2000",
		"token":      "secret",
	}
	for k, v := range want {
		if args[k] != v {
			t.Errorf("query %s = %q, want %q", k, args[k], v)
		}
	}
	if len(series.Closes) != 3 || series.Closes[2] != 3 {
		t.Errorf("Closes = %v, want [1 2 3]", series.Closes)
	}
	if len(series.Timestamps) != 3 || series.Timestamps[0] != 100 {
		t.Errorf("Timestamps = %v, want [100 200 300]", series.Timestamps)
	}
}

type countingCounter struct {
	n float64
}

func (c *countingCounter) With(...string) metrics.Counter { return c }
func (c *countingCounter) Add(delta float64)              { c.n += delta }

func TestClient_CandlesBestEffort(t *testing.T) {
	tests := []struct {
		name    string
		handler fasthttp.RequestHandler
	}{
		{
			name: "no data status",
			handler: func(ctx *fasthttp.RequestCtx) {
				ctx.SetBodyString(`{"s":"no_data"}`)
			},
		},
		{
			name: "missing status",
			handler: func(ctx *fasthttp.RequestCtx) {
				ctx.SetBodyString(`{"c":[1,2]}`)
			},
		},
		{
			name: "upstream failure",
			handler: func(ctx *fasthttp.RequestCtx) {
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				ctx.SetBodyString(`{"error":"You don't have access to this resource."}`)
			},
		},
		{
			name: "malformed body",
			handler: func(ctx *fasthttp.RequestCtx) {
				ctx.SetBodyString(`<html>`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := testutils.NewServer(t, "finnhub.test", tt.handler)
			counter := &countingCounter{}
			c := NewClient(srv.Client, srv.URL, WithMissCounter(counter))

			_, ok := c.Candles(context.Background(), "secret", models.CandleQuery{Symbol: "X", Resolution: "60"})
			if ok {
				t.Error("Candles reported a series, want miss")
			}
			if counter.n != 1 {
				t.Errorf("miss counter = %v, want 1", counter.n)
			}
		})
	}
}

func TestClient_CandlesTimeout(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		time.Sleep(200 * time.Millisecond)
		ctx.SetBodyString(`{"s":"ok","c":[1],"t":[1]}`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, ok := c.Candles(ctx, "secret", models.CandleQuery{Symbol: "X"}); ok {
		t.Error("Candles succeeded past its deadline")
	}
}
