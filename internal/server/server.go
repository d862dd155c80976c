package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandlerProvided
	}

	logger.Info().Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or Serve fails. The readiness line is logged
// only after the port is bound.
func (s *server) run(ctx context.Context) error {
	listener, url, err := s.httpServer.listen()
	if err != nil {
		return err
	}
	s.logger.Info().Str("url", url).Msgf("listening on %s ..", url)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.Shutdown()
		if err = <-serveErr; err != nil {
			return err
		}
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err = <-serveErr:
		return err
	}
}
