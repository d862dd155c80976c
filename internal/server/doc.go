// Package server runs the application's HTTP transport.
//
// It binds the configured port, reports readiness once the listener is open,
// and shuts the server down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
