package service

import (
	"context"

	"github.com/MKhiriev/acquasitions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies bearer tokens. CreateToken mints tokens for the
// configured key; the server itself never calls it, tests and tooling do.
type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService holds the business rules of the users resource.
type UserService interface {
	FetchAllUsers(ctx context.Context) ([]models.User, error)
	FetchUserByID(ctx context.Context, id int64) (models.User, error)

	// UpdateUserByID applies update on behalf of caller. Callers may update
	// themselves; admins may update anyone and are the only ones allowed to
	// change a role.
	UpdateUserByID(ctx context.Context, caller models.Identity, id int64, update models.UserUpdate) (models.User, error)
	DeleteUserByID(ctx context.Context, id int64) error
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
