// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// fakeServer accepts nothing; Serve blocks until Shutdown unless serveErr is set.
type fakeServer struct {
	serveErr    error
	shutdownErr error

	serves    atomic.Int32
	shutdowns atomic.Int32
	serving   chan struct{}
	stop      chan struct{}
	stopOnce  sync.Once
}

func newFakeServer() *fakeServer {
	return &fakeServer{serving: make(chan struct{}, 8), stop: make(chan struct{})}
}

func (f *fakeServer) Serve(ln net.Listener) error {
	defer ln.Close()
	f.serves.Add(1)
	f.serving <- struct{}{}
	if f.serveErr != nil {
		return f.serveErr
	}
	<-f.stop
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.stopOnce.Do(func() { close(f.stop) })
	return f.shutdownErr
}

func waitServing(t *testing.T, f *fakeServer) {
	t.Helper()
	select {
	case <-f.serving:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}
}

func runService(svc *HTTPServerService) (context.CancelFunc, <-chan error) {
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()
	return cancel, errCh
}

func TestNewHTTPServerService_Defaults(t *testing.T) {
	t.Parallel()
	var _ suture.Service = (*HTTPServerService)(nil)

	for _, timeout := range []time.Duration{0, -5 * time.Second} {
		svc := NewHTTPServerService("127.0.0.1:0", newFakeServer(), timeout)
		if svc.shutdownTimeout != defaultShutdownTimeout {
			t.Errorf("timeout %v: got %v, want %v", timeout, svc.shutdownTimeout, defaultShutdownTimeout)
		}
	}
	svc := NewHTTPServerService("127.0.0.1:0", newFakeServer(), time.Second)
	if svc.String() != "http-server" {
		t.Errorf("String() = %q", svc.String())
	}
	if svc.Addr() != "" {
		t.Errorf("Addr() before Serve = %q, want empty", svc.Addr())
	}
}

func TestHTTPServerService_Serve(t *testing.T) {
	t.Parallel()

	t.Run("drains on cancellation", func(t *testing.T) {
		t.Parallel()
		server := newFakeServer()
		svc := NewHTTPServerService("127.0.0.1:0", server, time.Second)

		cancel, errCh := runService(svc)
		waitServing(t, server)
		if svc.Addr() == "" {
			t.Error("Addr() empty while serving")
		}
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() = %v, want context.Canceled", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return after cancellation")
		}
		if n := server.shutdowns.Load(); n != 1 {
			t.Errorf("Shutdown called %d times, want 1", n)
		}
	})

	t.Run("port in use", func(t *testing.T) {
		t.Parallel()
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("listen: %v", err)
		}
		defer taken.Close()

		server := newFakeServer()
		err = NewHTTPServerService(taken.Addr().String(), server, time.Second).Serve(context.Background())
		if err == nil {
			t.Fatal("Serve() on a taken port returned nil")
		}
		if server.serves.Load() != 0 {
			t.Error("server.Serve called despite bind failure")
		}
	})

	t.Run("serve failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("tls: bad certificate")
		server := newFakeServer()
		server.serveErr = boom

		err := NewHTTPServerService("127.0.0.1:0", server, time.Second).Serve(context.Background())
		if !errors.Is(err, boom) {
			t.Errorf("Serve() = %v, want %v", err, boom)
		}
	})

	t.Run("shutdown failure", func(t *testing.T) {
		t.Parallel()
		drainErr := errors.New("context deadline exceeded")
		server := newFakeServer()
		server.shutdownErr = drainErr
		svc := NewHTTPServerService("127.0.0.1:0", server, time.Second)

		cancel, errCh := runService(svc)
		waitServing(t, server)
		cancel()

		select {
		case err := <-errCh:
			if !errors.Is(err, drainErr) {
				t.Errorf("Serve() = %v, want %v", err, drainErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("Serve did not return")
		}
	})
}

func TestHTTPServerService_RealServer(t *testing.T) {
	t.Parallel()
	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	}
	svc := NewHTTPServerService("127.0.0.1:0", server, time.Second)
	cancel, errCh := runService(svc)

	deadline := time.Now().Add(5 * time.Second)
	for svc.Addr() == "" {
		if time.Now().After(deadline) {
			t.Fatal("listener never opened")
		}
		time.Sleep(10 * time.Millisecond)
	}

	resp, err := http.Get("http://" + svc.Addr() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if svc.Addr() != "" {
		t.Errorf("Addr() after stop = %q, want empty", svc.Addr())
	}
}

func TestHTTPServerService_RestartedBySupervisor(t *testing.T) {
	t.Parallel()
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := taken.Addr().String()

	server := newFakeServer()
	sup := suture.New("test-sup", suture.Spec{
		FailureThreshold: 100,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(NewHTTPServerService(addr, server, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	// Bind fails until the port is released, then the restarted service serves.
	time.Sleep(50 * time.Millisecond)
	_ = taken.Close()
	waitServing(t, server)

	cancel()
	<-errCh
	if server.shutdowns.Load() < 1 {
		t.Error("Shutdown was not called")
	}
}
