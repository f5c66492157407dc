// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/tomtom215/storefront/internal/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	Serve(ln net.Listener) error
	Shutdown(ctx context.Context) error
}

// HTTPServerService binds addr and serves HTTP under suture. Binding happens
// in Serve so a port conflict is reported as a service failure and retried
// with the supervisor's backoff.
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration

	mu    sync.Mutex
	bound string
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout becomes 10s.
//
//	server := &http.Server{Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(cfg.Server.Addr(), server, cfg.Server.ShutdownTimeout))
func NewHTTPServerService(addr string, server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &HTTPServerService{server: server, addr: addr, shutdownTimeout: shutdownTimeout}
}

// Addr returns the bound address, which differs from the configured one when
// the port was 0. Empty until the listener is open.
func (h *HTTPServerService) Addr() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bound
}

func (h *HTTPServerService) setBound(addr string) {
	h.mu.Lock()
	h.bound = addr
	h.mu.Unlock()
}

// Serve implements suture.Service. After ctx is canceled the server drains
// for up to shutdownTimeout and Serve returns ctx.Err().
func (h *HTTPServerService) Serve(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", h.addr)
	if err != nil {
		return fmt.Errorf("http server listen %s: %w", h.addr, err)
	}
	h.setBound(ln.Addr().String())
	defer h.setBound("")

	log := logging.WithComponent("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")

	served := make(chan error, 1)
	go func() {
		// Serve closes ln when it returns.
		err := h.server.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		served <- err
	}()

	select {
	case err := <-served:
		if err == nil {
			return errors.New("http server stopped unexpectedly")
		}
		return fmt.Errorf("http server failed: %w", err)

	case <-ctx.Done():
		drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(drainCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		<-served
		log.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

func (h *HTTPServerService) String() string { return "http-server" }
