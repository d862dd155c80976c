package store

import (
	"context"

	"github.com/MKhiriev/acquasitions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract of the users resource.
//
// Lookups of an unknown ID return [ErrNoUserWasFound]. Implementations must be
// safe for concurrent use.
type UserRepository interface {
	// ListUsers returns every user ordered by ID.
	ListUsers(ctx context.Context) ([]models.User, error)
	// FindUserByID returns the user with the given ID.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	// UpdateUser applies the non-nil fields of update to the user with the
	// given ID and returns the stored result.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	// DeleteUser removes the user with the given ID.
	DeleteUser(ctx context.Context, id int64) error
}
