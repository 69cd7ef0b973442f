package resend

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// maxErrorBody caps how much of a rejected response is buffered.
const maxErrorBody = 64 << 10

// exchange records what the provider answered for one send call.
// The SDK collapses rejections into an opaque error, so the status and
// body are captured on the way through the transport instead.
type exchange struct {
	body   []byte
	status int
}

// rejected reports whether the provider answered with a non-2xx status.
func (e *exchange) rejected() bool {
	return e.status != 0 && (e.status < 200 || e.status >= 300)
}

type exchangeKey struct{}

func withExchange(ctx context.Context, ex *exchange) context.Context {
	return context.WithValue(ctx, exchangeKey{}, ex)
}

// recordingTransport fills the exchange stored in the request context.
// Requests without one pass through untouched.
type recordingTransport struct {
	next http.RoundTripper
}

func (t *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	ex, ok := req.Context().Value(exchangeKey{}).(*exchange)
	if !ok {
		return resp, nil
	}

	ex.status = resp.StatusCode
	if !ex.rejected() {
		return resp, nil
	}

	// A short read still leaves the status usable; the partial body just
	// fails to parse and the caller falls back to a generic message.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()

	ex.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
