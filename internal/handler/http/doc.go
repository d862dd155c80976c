// Package http implements the HTTP transport layer of the application.
//
// It exposes the router, the users route table, request handlers and
// middleware. Every route is described by a [Route] value whose ordered
// [Gate] list runs before the handler; the first failing gate ends the
// request. Tracing, access logging and metrics wrap every request before it
// is delegated to the service layer.
package http
