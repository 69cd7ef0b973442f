package internal

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func listen(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	return ln
}

func TestApp_Run_ServesUntilContextCancelled(t *testing.T) {
	app := New(WithHandlers(testHandler{}))
	ln := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	var started, stopped atomic.Bool

	done := make(chan error, 1)
	go func() {
		done <- app.Run("",
			Listener(ln),
			WithContext(ctx),
			ShutdownTimeout(time.Second),
			StartupHook(func(context.Context) error { started.Store(true); return nil }),
			ShutdownHook(func(context.Context) error { stopped.Store(true); return nil }),
		)
	}()

	var (
		resp *http.Response
		err  error
	)
	for range 50 {
		resp, err = http.Get("http://" + ln.Addr().String() + "/ping")
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET /ping: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Errorf("body = %q", body)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	if !started.Load() || !stopped.Load() {
		t.Errorf("hooks: started=%v stopped=%v", started.Load(), stopped.Load())
	}
}

func TestApp_Run_StartupHookFailure(t *testing.T) {
	boom := errors.New("template dir missing")

	err := New().Run("",
		Listener(listen(t)),
		StartupHook(func(context.Context) error { return boom }),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
}

func TestApp_Run_ShutdownHookErrorsJoined(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	boom := errors.New("flush failed")
	err := New().Run("",
		Listener(listen(t)),
		WithContext(ctx),
		ShutdownHook(func(context.Context) error { return boom }),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}
}
