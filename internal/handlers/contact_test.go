package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/internal/handlers"
	"github.com/jpmayor1/portfolio/middlewares"
	"github.com/jpmayor1/portfolio/pkg/contact"
	"github.com/jpmayor1/portfolio/pkg/mailer"
	"github.com/jpmayor1/portfolio/pkg/mailer/resend"
)

type mockRelay struct {
	mock.Mock
}

func (m *mockRelay) Submit(ctx context.Context, s contact.Submission) contact.Outcome {
	args := m.Called(ctx, s)
	return args.Get(0).(contact.Outcome)
}

func newApp(relay handlers.Relay, extra ...internal.Option) *internal.App {
	opts := []internal.Option{
		internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
		internal.WithHandlers(handlers.NewContact(relay, "")),
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
	}
	return internal.New(append(opts, extra...)...)
}

func post(t *testing.T, app *internal.App, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec, out
}

func TestContact_OutcomeMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		want    map[string]string
		name    string
		outcome contact.Outcome
		status  int
	}{
		{
			name:    "delivered",
			outcome: contact.Outcome{Status: contact.StatusOK, Message: "Email sent successfully", ProviderID: "abc123", StatusCode: 200},
			status:  http.StatusOK,
			want:    map[string]string{"message": "Email sent successfully", "id": "abc123"},
		},
		{
			name:    "validation",
			outcome: contact.Outcome{Status: contact.StatusValidationError, Message: "Invalid email format", StatusCode: 400},
			status:  http.StatusBadRequest,
			want:    map[string]string{"error": "Invalid email format"},
		},
		{
			name:    "provider",
			outcome: contact.Outcome{Status: contact.StatusProviderError, Message: "invalid from address", StatusCode: 422},
			status:  http.StatusUnprocessableEntity,
			want:    map[string]string{"error": "invalid from address"},
		},
		{
			name:    "transport",
			outcome: contact.Outcome{Status: contact.StatusTransportError, Message: "dial tcp: connection refused", StatusCode: 500},
			status:  http.StatusInternalServerError,
			want:    map[string]string{"error": "dial tcp: connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			relay := &mockRelay{}
			relay.On("Submit", mock.Anything, contact.Submission{Name: "Ada", Email: "ada@example.com", Message: "Hi"}).
				Return(tt.outcome).Once()

			rec, body := post(t, newApp(relay), `{"name":"Ada","email":"ada@example.com","message":"Hi"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, body)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			relay.AssertExpectations(t)
		})
	}
}

func TestContact_MalformedBody(t *testing.T) {
	t.Parallel()

	relay := &mockRelay{}
	rec, body := post(t, newApp(relay), `{"name": "Ada",`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"error": "Invalid request body"}, body)
	relay.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestContact_BodyTooLarge(t *testing.T) {
	t.Parallel()

	relay := &mockRelay{}
	payload := `{"name":"Ada","email":"ada@example.com","message":"` + strings.Repeat("x", 70<<10) + `"}`
	rec, body := post(t, newApp(relay), payload)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Request body too large", body["error"])
	relay.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestContact_CustomPath(t *testing.T) {
	t.Parallel()

	relay := &mockRelay{}
	relay.On("Submit", mock.Anything, mock.Anything).
		Return(contact.Outcome{Status: contact.StatusOK, Message: "Email sent successfully", ProviderID: "p1", StatusCode: 200}).Once()

	app := internal.New(internal.WithHandlers(handlers.NewContact(relay, "/contact")))

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hi"}`))
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	relay.AssertExpectations(t)
}

func TestErrorSurface(t *testing.T) {
	t.Parallel()

	relay := &mockRelay{}
	relay.On("Submit", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		panic("relay exploded")
	})

	app := newApp(relay)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   string
		status int
	}{
		{name: "unknown route", method: http.MethodGet, target: "/api/nope", status: http.StatusNotFound, want: "Not found"},
		{name: "wrong method", method: http.MethodGet, target: "/api/contact", status: http.StatusMethodNotAllowed, want: "Method not allowed"},
		{
			name:   "panic",
			method: http.MethodPost,
			target: "/api/contact",
			body:   `{"name":"Ada","email":"ada@example.com","message":"Hi"}`,
			status: http.StatusInternalServerError,
			want:   "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			app.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body["error"])
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestErrorHandler_Timeout(t *testing.T) {
	t.Parallel()

	slow := internal.HandlerFunc(func(c internal.Context) error {
		<-c.Context().Done()
		return c.Context().Err()
	})
	app := internal.New(
		internal.WithMiddleware(middlewares.Timeout(20*time.Millisecond)),
		internal.WithHandlers(routeFunc(func(r internal.Router) { r.GET("/slow", slow) })),
		internal.WithErrorHandler(handlers.ErrorHandler),
	)

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.JSONEq(t, `{"error":"Request timed out"}`, rec.Body.String())
}

type routeFunc func(r internal.Router)

func (f routeFunc) Routes(r internal.Router) { f(r) }

// TestContact_EndToEnd drives the full stack against a stub provider.
func TestContact_EndToEnd(t *testing.T) {
	t.Parallel()

	var calls int
	var sent map[string]any
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer re_e2e", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &sent)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"xyz"}`)
	}))
	t.Cleanup(provider.Close)

	sender, err := resend.New(resend.Config{APIKey: "re_e2e", BaseURL: provider.URL})
	require.NoError(t, err)
	relay := contact.NewRelay(
		mailer.New(sender, mailer.NewRenderer(contact.TemplateFS("")), mailer.Config{}),
		contact.Config{ToEmail: "inbox@example.com"},
	)
	app := newApp(relay)

	rec, body := post(t, app, `{"name":"Ada","email":"ada@example.com","message":"Hello\nWorld"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"message": "Email sent successfully", "id": "xyz"}, body)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "ada@example.com", sent["reply_to"])
	assert.Contains(t, sent["html"], "Hello\nWorld")

	rec, body = post(t, app, `{"name":"Ada","email":"not-an-email","message":"Hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid email format", body["error"])
	assert.Equal(t, 1, calls, "validation failures must not reach the provider")
}
