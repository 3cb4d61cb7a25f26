//Package service http errors
//CODE GENERATED AUTOMATICALLY
//THIS FILE COULD BE EDITED BY HANDS
package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"github.com/marketpanel/pkg/models"
)

// ErrorCreator creates an http error with the given status
type ErrorCreator func(status int, format string, v ...interface{}) error

// Error is an error carrying its http representation.
type Error struct {
	Code    int
	Message string
	Detail  string

	// UpstreamStatus and UpstreamBody are set when Finnhub rejected the quote call.
	UpstreamStatus int
	UpstreamBody   *string

	AllowAnyOrigin bool
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Code, e.Message, e.Detail)
	}
	if e.UpstreamStatus != 0 {
		return fmt.Sprintf("%d %s: upstream status %d", e.Code, e.Message, e.UpstreamStatus)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

// StatusCode returns the http status the error is reported with.
func (e *Error) StatusCode() int {
	return e.Code
}

// ErrMisconfigured is returned for every request while the Finnhub key is unset.
var ErrMisconfigured = &Error{
	Code:    http.StatusInternalServerError,
	Message: "FINNHUB_API_KEY not set in environment",
}

// NewError ...
func NewError(status int, format string, v ...interface{}) error {
	return &Error{
		Code:    status,
		Message: fmt.Sprintf(format, v...),
	}
}

// NewUpstreamError reports a non-2xx answer to the upstream quote call.
func NewUpstreamError(status int, body string) error {
	return &Error{
		Code:           http.StatusBadGateway,
		Message:        "Finnhub quote error",
		UpstreamStatus: status,
		UpstreamBody:   &body,
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) error {
	return &Error{
		Code:           http.StatusInternalServerError,
		Message:        "internal",
		Detail:         err.Error(),
		AllowAnyOrigin: true,
	}
}

// ErrorProcessor encodes errors on the server side and decodes them on the client side.
type ErrorProcessor interface {
	Encode(ctx context.Context, r *fasthttp.Response, err error)
	Decode(r *fasthttp.Response) error
}

type errorProcessor struct {
	defaultCode    int
	defaultMessage string
}

// Encode writes err as a JSON error body. Errors that are not *Error are
// reported with the default code and message.
func (e *errorProcessor) Encode(ctx context.Context, r *fasthttp.Response, err error) {
	var httpErr *Error
	if !errors.As(err, &httpErr) {
		httpErr = &Error{
			Code:           e.defaultCode,
			Message:        e.defaultMessage,
			Detail:         err.Error(),
			AllowAnyOrigin: true,
		}
	}

	body := models.ErrorResponse{
		Error:   httpErr.Message,
		Message: httpErr.Detail,
		Status:  httpErr.UpstreamStatus,
		Body:    httpErr.UpstreamBody,
	}

	r.ResetBody()
	r.SetStatusCode(httpErr.Code)
	r.Header.Set("Content-Type", "application/json")
	if httpErr.AllowAnyOrigin {
		r.Header.Set(headerAllowOrigin, "*")
	}
	if _, err := easyjson.MarshalToWriter(body, r.BodyWriter()); err != nil {
		r.SetBodyString(`{"error":"internal"}`)
	}
}

// Decode turns a non-200 response into an *Error.
func (e *errorProcessor) Decode(r *fasthttp.Response) error {
	httpErr := &Error{Code: r.StatusCode()}

	var body models.ErrorResponse
	if err := body.UnmarshalJSON(r.Body()); err != nil || body.Error == "" {
		httpErr.Message = string(r.Body())
		return httpErr
	}
	httpErr.Message = body.Error
	httpErr.Detail = body.Message
	httpErr.UpstreamStatus = body.Status
	httpErr.UpstreamBody = body.Body
	return httpErr
}

// NewErrorProcessor ...
func NewErrorProcessor(defaultCode int, defaultMessage string) ErrorProcessor {
	return &errorProcessor{
		defaultCode:    defaultCode,
		defaultMessage: defaultMessage,
	}
}
