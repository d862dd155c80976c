package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidUserID       = errors.New("invalid user id")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrForbiddenUserUpdate = errors.New("only the account owner or an admin can update a user")
	ErrForbiddenRoleChange = errors.New("only an admin can change a role")
)
