package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/store"
	"github.com/MKhiriev/acquasitions/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (u *userService) FetchUserByID(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidUserID
	}

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUserByID checks ownership before touching storage:
//   - ErrForbiddenUserUpdate when caller is neither the target nor an admin
//   - ErrForbiddenRoleChange when a non-admin tries to change a role
func (u *userService) UpdateUserByID(ctx context.Context, caller models.Identity, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.User{}, ErrInvalidUserID
	}

	if caller.UserID != id && !caller.IsAdmin() {
		log.Warn().Int64("caller", caller.UserID).Int64("id", id).Msg("update of another user's account rejected")
		return models.User{}, ErrForbiddenUserUpdate
	}

	if update.ChangesRole() && !caller.IsAdmin() {
		log.Warn().Int64("caller", caller.UserID).Int64("id", id).Msg("role change by non-admin rejected")
		return models.User{}, ErrForbiddenRoleChange
	}

	updated, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

func (u *userService) DeleteUserByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidUserID
	}

	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}
