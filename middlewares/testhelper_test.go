package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jpmayor1/portfolio/internal"
)

// testContext is a minimal internal.Context for driving a middleware directly.
type testContext struct {
	request  *http.Request
	response *internal.ResponseWriter
	logger   *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		request:  r,
		response: internal.NewResponseWriter(w),
		logger:   slog.New(slog.DiscardHandler),
	}
}

func (c *testContext) Request() *http.Request             { return c.request }
func (c *testContext) Response() *internal.ResponseWriter { return c.response }
func (c *testContext) Context() context.Context           { return c.request.Context() }
func (c *testContext) SetContext(ctx context.Context)     { c.request = c.request.WithContext(ctx) }
func (c *testContext) Param(string) string                { return "" }
func (c *testContext) Header(name string) string          { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)       { c.response.Header().Set(name, value) }
func (c *testContext) BindJSON(v any) error               { return json.NewDecoder(c.request.Body).Decode(v) }
func (c *testContext) Written() bool                      { return c.response.Written() }
func (c *testContext) Logger() *slog.Logger               { return c.logger }
func (c *testContext) LogDebug(msg string, attrs ...any)  { c.logger.Debug(msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)   { c.logger.Info(msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)   { c.logger.Warn(msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any)  { c.logger.Error(msg, attrs...) }
func (c *testContext) Set(key, value any)                 { c.SetContext(context.WithValue(c.Context(), key, value)) }
func (c *testContext) Get(key any) any                    { return c.Context().Value(key) }
func (c *testContext) NoContent(code int) error           { c.response.WriteHeader(code); return nil }

func (c *testContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

var _ internal.Context = (*testContext)(nil)
