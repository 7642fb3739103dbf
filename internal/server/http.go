// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server

	// listener is set by tests to serve on an ephemeral port
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// run blocks until the server stops. A stop caused by shutdown is not an
// error.
func (h *httpServer) run() error {
	listener := h.listener
	if listener == nil {
		var err error
		listener, err = net.Listen("tcp", h.server.Addr)
		if err != nil {
			return fmt.Errorf("listening on %q: %w", h.server.Addr, err)
		}
	}

	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

// shutdown stops accepting connections and waits for in-flight requests
// until ctx ends, after which the remaining connections are closed.
func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")

	err := h.server.Shutdown(ctx)
	if err == nil {
		return nil
	}

	h.logger.Warn().Err(err).Msg("forcing HTTP server close")
	if closeErr := h.server.Close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errShutdownTimedOut
	}
	return err
}
