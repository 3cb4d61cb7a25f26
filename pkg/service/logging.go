//Package service logging wrapper
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/marketpanel/pkg/models"
)

// loggingMiddleware wraps Service and logs request information to the provided logger
type loggingMiddleware struct {
	logger log.Logger
	svc    Service
}

func (s *loggingMiddleware) Quote(ctx context.Context, request *models.QuoteRequest) (response models.QuoteResponse, err error) {
	defer func(begin time.Time) {
		_ = s.wrap(err).Log(
			"method", "Quote",
			"request_id", RequestIDFrom(ctx),
			"symbol", request.Symbol,
			"candles", response.Candles != nil,
			"err", err,
			"elapsed", time.Since(begin),
		)
	}(time.Now())
	return s.svc.Quote(ctx, request)
}

func (s *loggingMiddleware) wrap(err error) log.Logger {
	lvl := level.Debug
	if err != nil {
		lvl = level.Error
	}
	return lvl(s.logger)
}

// NewLoggingMiddleware ...
func NewLoggingMiddleware(logger log.Logger, svc Service) Service {
	return &loggingMiddleware{
		logger: logger,
		svc:    svc,
	}
}
