package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	cfg    config.Server

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, cfg.RequestTimeout, http.StatusText(http.StatusServiceUnavailable))
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.Address(),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// listen binds the configured address and returns the listener together with
// the local URL of the bound port.
func (h *httpServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, "", fmt.Errorf("%w %s: %w", errListening, h.server.Addr, err)
	}

	bound := h.cfg
	if addr, ok := listener.Addr().(*net.TCPAddr); ok {
		bound.Port = addr.Port
	}

	return listener, bound.URL(), nil
}

func (h *httpServer) serve(listener net.Listener) error {
	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("http server Shutdown")
	}
}
