package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/agbru/mathsvc/internal/engine"
)

func TestServer_EngineIntegration(t *testing.T) {
	s := New(engine.New(engine.Options{}), DefaultConfig(), newTestLogger())

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/fibonacci/10", http.StatusOK, "34"},
		{"/fibonacci/0", http.StatusBadRequest, "Invalid parameters: `fibonacci` takes in non-negative integers"},
		{"/fibonacci/-4", http.StatusBadRequest, "Invalid parameters: `fibonacci` takes in non-negative integers"},
		{"/fibonacci/10001", http.StatusUnprocessableEntity, "Unable to compute fibonacci of 10001"},
		{"/factorial/5", http.StatusOK, "120"},
		{"/ackermann/2/3", http.StatusOK, "9"},
		{"/ackermann/-1/3", http.StatusBadRequest, "Invalid parameters: `ackermann` takes in non-negative integers"},
		{"/ackermann/4/2", http.StatusUnprocessableEntity, "Unable to compute Ackermann number for m: 4 and n: 2"},
		{"/fibonacci/ten", http.StatusBadRequest, `Invalid parameters: "ten" is not an integer`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(s, "GET", tt.path)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}

	t.Run("metrics report", func(t *testing.T) {
		rec := serve(s, "GET", "/_metrics/")
		body := rec.Body.String()

		// Adapter rejections such as /fibonacci/ten are not recorded.
		for _, want := range []string{
			`"fibonacci":{"invocations_success":1,"invocations_error":3,"invocations_total":4,`,
			`"factorial":{"invocations_success":1,"invocations_error":0,"invocations_total":1,`,
			`"ackermann":{"invocations_success":1,"invocations_error":2,"invocations_total":3,`,
			`"latency_units":"seconds"`,
		} {
			if !strings.Contains(body, want) {
				t.Errorf("metrics body missing %s\n%s", want, body)
			}
		}
		ack := strings.Index(body, `"ackermann"`)
		fac := strings.Index(body, `"factorial"`)
		fib := strings.Index(body, `"fibonacci"`)
		if !(ack < fac && fac < fib) {
			t.Errorf("operations not in sorted order: %s", body)
		}
	})

	t.Run("prometheus exports engine metrics", func(t *testing.T) {
		rec := serve(s, "GET", "/metrics")
		if !strings.Contains(rec.Body.String(), `mathsvc_invocations_total{operation="fibonacci",outcome="error"} 3`) {
			t.Errorf("engine metrics missing from /metrics output")
		}
	})
}

func TestServer_ServeAndShutdown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	s := New(engine.New(engine.Options{}), cfg, newTestLogger())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/factorial/6")
	if err != nil {
		cancel()
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "720" {
		t.Errorf("body = %q, want %q", body, "720")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	cfg := DefaultConfig()
	cfg.Addr = ln.Addr().String()
	s := New(engine.New(engine.Options{}), cfg, newTestLogger())

	err = s.Run(context.Background())
	if err == nil {
		t.Fatal("Run on a taken address should fail")
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		t.Errorf("error = %v, want a *net.OpError in the chain", err)
	}
	if want := "listen on " + cfg.Addr + ": "; !strings.HasPrefix(err.Error(), want) {
		t.Errorf("error = %q, want prefix %q", err.Error(), want)
	}
}
