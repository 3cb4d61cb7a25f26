//Package service http transport
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"context"
	"net/http"

	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"github.com/marketpanel/pkg/models"
)

const (
	headerAllowOrigin = "Access-Control-Allow-Origin"
	headerRequestID   = "X-Request-Id"

	querySymbol  = "symbol"
	queryCandles = "candle"
)

// QuoteTransport transport interface
type QuoteTransport interface {
	DecodeRequest(ctx context.Context, r *fasthttp.Request) (request models.QuoteRequest, err error)
	EncodeResponse(ctx context.Context, r *fasthttp.Response, response *models.QuoteResponse) (err error)
}

type quoteTransport struct {
	errorCreator ErrorCreator
}

// DecodeRequest method for decoding requests on server side
func (t *quoteTransport) DecodeRequest(ctx context.Context, r *fasthttp.Request) (request models.QuoteRequest, err error) {
	args := r.URI().QueryArgs()
	request.Symbol = string(args.Peek(querySymbol))
	if request.Symbol == "" {
		return models.QuoteRequest{}, t.errorCreator(http.StatusBadRequest, "symbol required")
	}
	request.Candles = len(args.Peek(queryCandles)) > 0
	return
}

// EncodeResponse method for encoding response on server side
func (t *quoteTransport) EncodeResponse(ctx context.Context, r *fasthttp.Response, response *models.QuoteResponse) (err error) {
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set(headerAllowOrigin, "*")
	if _, err = easyjson.MarshalToWriter(response, r.BodyWriter()); err != nil {
		return t.errorCreator(http.StatusInternalServerError, "failed to encode JSON response: %s", err)
	}
	return
}

// NewQuoteTransport the transport creator for http requests
func NewQuoteTransport(
	errorCreator ErrorCreator,
) QuoteTransport {
	return &quoteTransport{
		errorCreator: errorCreator,
	}
}
