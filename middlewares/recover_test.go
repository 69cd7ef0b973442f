package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jpmayor1/portfolio/internal"
	"github.com/jpmayor1/portfolio/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes PanicError", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/contact", nil))

		err := middlewares.Recover()(func(internal.Context) error {
			panic("template nil map")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "template nil map", pe.Value)
		require.NotEmpty(t, pe.Stack)
		require.EqualError(t, err, "panic: template nil map")
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(internal.Context) error {
			panic(errors.New("boom"))
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Nil(t, pe.Stack)
	})

	t.Run("stack size is bounded", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		err := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(internal.Context) error {
			panic("x")
		})(ctx)

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("errors pass through", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		want := errors.New("handler failed")

		err := middlewares.Recover()(func(internal.Context) error { return want })(ctx)
		require.ErrorIs(t, err, want)
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		t.Parallel()

		ctx := newTestContext(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			_ = middlewares.Recover()(func(internal.Context) error {
				panic(http.ErrAbortHandler)
			})(ctx)
		})
	})
}
