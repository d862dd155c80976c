// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication gate when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the authentication gate when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Gate and request parsing errors.
var (
	// ErrUnauthenticated wraps every failure of the authentication gate and is
	// returned by role checks that find no identity on the request.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is returned by role checks when the caller's role is not
	// in the allow-list.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidUserIDParam is returned when the `{id}` path parameter is not
	// a decimal integer.
	ErrInvalidUserIDParam = errors.New("invalid user id in path")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)

// ErrMetricsPathConflict is returned by [NewHandler] when the metrics path
// overlaps a route of the API.
var ErrMetricsPathConflict = errors.New("metrics path conflicts with an API route")
