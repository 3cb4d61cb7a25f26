//Package service http server
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/marketpanel/pkg/models"
)

// DefaultRequestTimeout bounds a single proxied request, both upstream calls included.
const DefaultRequestTimeout = 10 * time.Second

type quoteServer struct {
	transport      QuoteTransport
	service        Service
	errorProcessor ErrorProcessor
	timeout        time.Duration
}

// ServeHTTP implements http.Handler.
func (s *quoteServer) ServeHTTP(ctx *fasthttp.RequestCtx) {
	requestID := uuid.NewString()
	ctx.Response.Header.Set(headerRequestID, requestID)

	defer func() {
		if r := recover(); r != nil {
			s.errorProcessor.Encode(ctx, &ctx.Response, NewInternalError(fmt.Errorf("%v", r)))
		}
	}()

	request, err := s.transport.DecodeRequest(ctx, &ctx.Request)
	if err != nil {
		s.errorProcessor.Encode(ctx, &ctx.Response, err)
		return
	}

	timeoutCtx, cancel := context.WithTimeout(WithRequestID(ctx, requestID), s.timeout)
	defer cancel()

	response, err := s.service.Quote(timeoutCtx, &request)
	if err != nil {
		s.errorProcessor.Encode(ctx, &ctx.Response, err)
		return
	}

	if err := s.transport.EncodeResponse(ctx, &ctx.Response, &response); err != nil {
		s.errorProcessor.Encode(ctx, &ctx.Response, err)
		return
	}
}

// NewQuoteServer the server creator
func NewQuoteServer(transport QuoteTransport, service Service, errorProcessor ErrorProcessor, timeout time.Duration) fasthttp.RequestHandler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	ls := quoteServer{
		transport:      transport,
		service:        service,
		errorProcessor: errorProcessor,
		timeout:        timeout,
	}
	return ls.ServeHTTP
}

// NewHealthServer answers liveness probes.
func NewHealthServer() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		ctx.SetContentType("application/json")
		body, _ := models.HealthResponse{Status: "ok"}.MarshalJSON()
		ctx.SetBody(body)
	}
}
