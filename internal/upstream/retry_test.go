package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"
)

func TestConnectWithRetryGivesUpAfterMaxAttempts(t *testing.T) {
	c := New("filesystem", "http://127.0.0.1:1/mcp") // nothing listens here

	cfg := RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		AttemptTimeout: 50 * time.Millisecond,
	}

	start := time.Now()
	err := ConnectWithRetry(context.Background(), c, cfg, nil)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected ConnectWithRetry to fail against an unreachable address")
	}
	// Two backoff sleeps (after attempts 1 and 2) of at least InitialBackoff
	// each should have elapsed before giving up on attempt 3.
	if elapsed < 2*cfg.InitialBackoff {
		t.Fatalf("expected at least %v to elapse across retries, got %v", 2*cfg.InitialBackoff, elapsed)
	}
}

func TestConnectWithRetryRespectsShutdownDuringBackoff(t *testing.T) {
	c := New("filesystem", "http://127.0.0.1:1/mcp")

	cfg := RetryConfig{
		MaxAttempts:    5,
		InitialBackoff: time.Second,
		MaxBackoff:     10 * time.Second,
		AttemptTimeout: 50 * time.Millisecond,
	}

	shutdown := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(shutdown)
	}()

	start := time.Now()
	err := ConnectWithRetry(context.Background(), c, cfg, shutdown)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected ConnectWithRetry to return an error when cancelled during backoff")
	}
	if elapsed > time.Second {
		t.Fatalf("expected shutdown to cut the first 1s backoff short, took %v", elapsed)
	}
}

func TestConnectWithRetryShutdownCancelsInFlightAttempt(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		for {
			conn, acceptErr := ln.Accept()
			if acceptErr != nil {
				return
			}
			// Accept the connection but never respond, so the attempt
			// blocks in the handshake until its context is cancelled.
			_ = conn
		}
	}()

	c := New("filesystem", fmt.Sprintf("http://%s/mcp", ln.Addr().String()))

	cfg := RetryConfig{
		MaxAttempts:    1,
		InitialBackoff: time.Second,
		MaxBackoff:     time.Second,
		AttemptTimeout: 5 * time.Second,
	}

	shutdown := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(shutdown)
	}()

	start := time.Now()
	err = ConnectWithRetry(context.Background(), c, cfg, shutdown)
	elapsed := time.Since(start)

	if err == nil {
		t.Fatal("expected ConnectWithRetry to fail when shutdown fires mid-attempt")
	}
	if elapsed > time.Second {
		t.Fatalf("expected shutdown to cut the 5s in-flight attempt short, took %v", elapsed)
	}
}

func TestIsUnauthorizedDetects401(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp: connection refused"), false},
		{errors.New("http request failed: 401 Unauthorized"), true},
		{errors.New("server returned Unauthorized"), true},
		{errors.New("500 internal server error"), false},
	}
	for _, tc := range cases {
		if got := IsUnauthorized(tc.err); got != tc.want {
			t.Errorf("IsUnauthorized(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
