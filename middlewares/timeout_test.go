package middlewares_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("fast handler", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		var deadline time.Time
		err := middlewares.Timeout(time.Second)(func(c internal.Context) error {
			deadline, _ = c.Context().Deadline()
			return c.NoContent(http.StatusOK)
		})(ctx)

		require.NoError(t, err)
		require.False(t, deadline.IsZero(), "request context should carry a deadline")
	})

	t.Run("slow handler returns TimeoutError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Timeout(20*time.Millisecond)(func(c internal.Context) error {
			<-c.Context().Done()
			return c.Context().Err()
		})(ctx)

		te, ok := middlewares.AsTimeoutError(err)
		require.True(t, ok)
		require.Equal(t, 20*time.Millisecond, te.Duration)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("written response is kept", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ctx := newTestContext(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Timeout(10*time.Millisecond)(func(c internal.Context) error {
			time.Sleep(30 * time.Millisecond)
			return c.String(http.StatusOK, "late but sent")
		})(ctx)

		require.NoError(t, err)
		require.Equal(t, "late but sent", rec.Body.String())
	})

	t.Run("handler error without timeout passes through", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		want := errors.New("bad input")

		err := middlewares.Timeout(0)(func(internal.Context) error { return want })(ctx)
		require.ErrorIs(t, err, want)

		_, ok := middlewares.AsTimeoutError(err)
		require.False(t, ok)
	})
}
