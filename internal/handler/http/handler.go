package http

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Handler struct {
	services *service.Services

	registry    *prometheus.Registry
	metrics     *httpMetrics
	metricsPath string

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. An empty cfg.MetricsPath disables the
// metrics endpoint; a path that falls under a mounted route table is rejected
// with [ErrMetricsPathConflict].
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handler, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := &Handler{
		services:    services,
		registry:    registry,
		metrics:     newHTTPMetrics(registry),
		metricsPath: cfg.MetricsPath,
		logger:      logger,
	}

	if err := h.checkMetricsPath(); err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return h, nil
}

// checkMetricsPath rejects a metrics path that would shadow the greeting or
// any route of a mounted table.
func (h *Handler) checkMetricsPath() error {
	if h.metricsPath == "" {
		return nil
	}

	path := strings.TrimSuffix(h.metricsPath, "/")
	if path == "" {
		return fmt.Errorf("%w: %q", ErrMetricsPathConflict, h.metricsPath)
	}

	for _, table := range h.routeTables() {
		if path == table.Prefix || strings.HasPrefix(path, table.Prefix+"/") {
			return fmt.Errorf("%w: %q is served by %s", ErrMetricsPathConflict, h.metricsPath, table.Prefix)
		}
	}
	return nil
}
