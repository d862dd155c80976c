package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// routeTables lists the route tables mounted by Init.
func (h *Handler) routeTables() []RouteTable {
	return []RouteTable{h.usersRouteTable()}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withMetrics)
	router.Use(h.withLogging)

	router.Get("/", h.greeting)

	for _, table := range h.routeTables() {
		table.Mount(router)
	}

	if h.metricsPath != "" {
		router.Method(http.MethodGet, h.metricsPath, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{
			Registry: h.registry,
		}))
	}

	return router
}
