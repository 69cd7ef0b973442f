package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DefaultBodyLimit caps request bodies read by BindJSON.
const DefaultBodyLimit int64 = 64 << 10

// Client-facing messages of the HTTPErrors returned by BindJSON.
const (
	MsgInvalidBody  = "Invalid request body"
	MsgBodyTooLarge = "Request body too large"
)

// Context provides request/response access and helper methods.
type Context interface {
	// Request returns the current request. Its context reflects every SetContext call.
	Request() *http.Request

	// Response returns the response writer shared by all layers of the request.
	Response() *ResponseWriter

	// Context returns the request context.
	Context() context.Context

	// SetContext replaces the request context.
	SetContext(ctx context.Context)

	// Param returns a chi URL parameter.
	Param(name string) string

	// Header returns a request header value.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// JSON writes v as JSON with the given status.
	JSON(code int, v any) error

	// String writes a plain text response.
	String(code int, s string) error

	// NoContent writes only the status.
	NoContent(code int) error

	// BindJSON decodes the request body into v, reading at most the app's
	// body limit. Failures are *HTTPError with status 400 or 413.
	BindJSON(v any) error

	// Written reports whether the response header has been sent.
	Written() bool

	// Logger returns the app logger.
	Logger() *slog.Logger

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a request-scoped value in the request context.
	Set(key, value any)

	// Get reads a request-scoped value from the request context.
	Get(key any) any
}

type requestContext struct {
	request   *http.Request
	response  *ResponseWriter
	logger    *slog.Logger
	bodyLimit int64
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	return &requestContext{
		request:   r,
		response:  NewResponseWriter(w),
		logger:    app.logger,
		bodyLimit: app.bodyLimit,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() *ResponseWriter {
	return c.response
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := io.WriteString(c.response, s)
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) BindJSON(v any) error {
	body := http.MaxBytesReader(c.response, c.request.Body, c.bodyLimit)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrRequestTooLarge(MsgBodyTooLarge, WithError(err))
		}
		return ErrBadRequest(MsgInvalidBody, WithError(fmt.Errorf("bind json: %w", err)))
	}
	return nil
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
