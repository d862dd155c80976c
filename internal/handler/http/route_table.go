// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/go-chi/chi/v5"
)

// Check inspects a request before it reaches a route handler.
//
// A nil error lets the request through with the returned context, which is
// how a check hands data (such as the authenticated identity) to the checks
// and handler after it. A nil context keeps the request context unchanged. A non-nil error ends the request; the response status
// is derived from the error with statusFromError.
type Check func(r *http.Request) (context.Context, error)

// Gate is a named Check. The name only serves inspection and logging.
type Gate struct {
	Name  string
	Check Check
}

// Route binds a method and a chi pattern to a handler guarded by Gates.
// Gates run in slice order.
type Route struct {
	Name    string
	Method  string
	Pattern string
	Gates   []Gate
	Handler http.HandlerFunc
}

// GateNames lists the names of the route's gates in execution order.
func (route Route) GateNames() []string {
	names := make([]string, 0, len(route.Gates))
	for _, gate := range route.Gates {
		names = append(names, gate.Name)
	}
	return names
}

// ServeHTTP runs the gates left to right and calls the handler only when all
// of them pass.
func (route Route) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, gate := range route.Gates {
		ctx, err := gate.Check(r)
		if err != nil {
			logger.FromRequest(r).Err(err).
				Str("route", route.Name).
				Str("gate", gate.Name).
				Msg("request rejected")
			writeError(w, err)
			return
		}
		if ctx != nil {
			r = r.WithContext(ctx)
		}
	}

	route.Handler(w, r)
}

// RouteTable is a group of routes sharing a path prefix.
type RouteTable struct {
	Prefix string
	Routes []Route
}

// Lookup returns the route registered under name.
func (rt RouteTable) Lookup(name string) (Route, bool) {
	for _, route := range rt.Routes {
		if route.Name == name {
			return route, true
		}
	}
	return Route{}, false
}

// Mount registers every route of the table on router under the table prefix.
func (rt RouteTable) Mount(router chi.Router) {
	router.Route(rt.Prefix, func(r chi.Router) {
		for _, route := range rt.Routes {
			r.Method(route.Method, route.Pattern, route)
		}
	})
}
