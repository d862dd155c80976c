package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/acquasitions/internal/service"
	"github.com/MKhiriev/acquasitions/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched top to bottom; the first sentinel found in the
// error chain decides the status.
var errorStatuses = []errorStatus{
	{ErrUnauthenticated, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrInvalidUserIDParam, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidUserID, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrForbiddenUserUpdate, http.StatusForbidden},
	{service.ErrForbiddenRoleChange, http.StatusForbidden},

	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNothingToUpdate, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server errors hide
// their cause.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
