//Package service http client
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/valyala/fasthttp"

	"github.com/marketpanel/pkg/models"
)

type client struct {
	cli *fasthttp.HostClient

	transportQuote QuoteClientTransport
}

// Quote ...
func (s *client) Quote(ctx context.Context, request *models.QuoteRequest) (response models.QuoteResponse, err error) {
	req, res := fasthttp.AcquireRequest(), fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(res)
	}()

	if err = s.transportQuote.EncodeRequest(ctx, req, request); err != nil {
		return
	}
	if err = ctx.Err(); err != nil {
		return
	}
	if deadline, ok := ctx.Deadline(); ok {
		err = s.cli.DoDeadline(req, res, deadline)
	} else {
		err = s.cli.Do(req, res)
	}
	if err != nil {
		return
	}
	return s.transportQuote.DecodeResponse(ctx, res)
}

// NewClient the client creator
func NewClient(
	cli *fasthttp.HostClient,

	transportQuote QuoteClientTransport,
) Service {
	return &client{
		cli: cli,

		transportQuote: transportQuote,
	}
}

// NewHostClient builds a fasthttp host client for the proxy root URL, e.g. "http://localhost:8080".
func NewHostClient(rawURL string) (*fasthttp.HostClient, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("proxy url %q has no host", rawURL)
	}
	isTLS := u.Scheme == "https"
	addr := u.Host
	if u.Port() == "" {
		if isTLS {
			addr += ":443"
		} else {
			addr += ":80"
		}
	}
	return &fasthttp.HostClient{Addr: addr, IsTLS: isTLS}, nil
}

// QuoteClientTransport transport interface
type QuoteClientTransport interface {
	EncodeRequest(ctx context.Context, r *fasthttp.Request, request *models.QuoteRequest) (err error)
	DecodeResponse(ctx context.Context, r *fasthttp.Response) (response models.QuoteResponse, err error)
}

type quoteClientTransport struct {
	errorProcessor ErrorProcessor
	errorCreator   ErrorCreator
	pathTemplate   string
	method         string
}

// EncodeRequest method for encoding requests on client side
func (t *quoteClientTransport) EncodeRequest(ctx context.Context, r *fasthttp.Request, request *models.QuoteRequest) (err error) {
	r.Header.SetMethod(t.method)
	r.SetRequestURI(t.pathTemplate)
	args := r.URI().QueryArgs()
	args.Set(querySymbol, request.Symbol)
	if request.Candles {
		args.Set(queryCandles, "1")
	}
	return
}

// DecodeResponse method for decoding response on client side
func (t *quoteClientTransport) DecodeResponse(ctx context.Context, r *fasthttp.Response) (response models.QuoteResponse, err error) {
	if r.StatusCode() != http.StatusOK {
		err = t.errorProcessor.Decode(r)
		return
	}
	if err = response.UnmarshalJSON(r.Body()); err != nil {
		err = t.errorCreator(http.StatusInternalServerError, "failed to decode JSON response: %v", err)
	}
	return
}

// NewQuoteClientTransport the transport creator for http requests.
// pathTemplate is the absolute proxy endpoint URL.
func NewQuoteClientTransport(
	errorProcessor ErrorProcessor,
	errorCreator ErrorCreator,
	pathTemplate string,
	method string,
) QuoteClientTransport {
	return &quoteClientTransport{
		errorProcessor: errorProcessor,
		errorCreator:   errorCreator,
		pathTemplate:   pathTemplate,
		method:         method,
	}
}
