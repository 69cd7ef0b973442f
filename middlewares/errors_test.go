package middlewares_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/middlewares"
)

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrappedPanic := fmt.Errorf("chain: %w", &middlewares.PanicError{Value: "x"})
	_, ok := middlewares.AsPanicError(wrappedPanic)
	require.True(t, ok)
	_, ok = middlewares.AsTimeoutError(wrappedPanic)
	require.False(t, ok)

	timeout := &middlewares.TimeoutError{Duration: 15 * time.Second}
	require.EqualError(t, timeout, "request timeout after 15s")
	_, ok = middlewares.AsTimeoutError(fmt.Errorf("chain: %w", timeout))
	require.True(t, ok)
}

func TestStatusForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		name string
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "timeout", err: &middlewares.TimeoutError{Duration: time.Second}, want: http.StatusGatewayTimeout},
		{name: "expired deadline", err: fmt.Errorf("relay: %w", context.DeadlineExceeded), want: http.StatusGatewayTimeout},
		{name: "http error", err: internal.ErrBadRequest("Invalid request body"), want: http.StatusBadRequest},
		{name: "panic", err: &middlewares.PanicError{Value: "x"}, want: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, middlewares.StatusForError(tt.err))
		})
	}
}
