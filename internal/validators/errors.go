package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidRole      = errors.New("invalid role")
)
