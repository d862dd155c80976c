package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acquasitions/internal/validators"
	"github.com/MKhiriev/acquasitions/models"
)

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) FetchAllUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.FetchAllUsers(ctx)
}

func (v *UserValidationService) FetchUserByID(ctx context.Context, id int64) (models.User, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.User{}, err
	}

	return v.inner.FetchUserByID(ctx, id)
}

func (v *UserValidationService) UpdateUserByID(ctx context.Context, caller models.Identity, id int64, update models.UserUpdate) (models.User, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.User{}, err
	}

	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUserByID(ctx, caller, id, update)
}

func (v *UserValidationService) DeleteUserByID(ctx context.Context, id int64) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.DeleteUserByID(ctx, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

func (v *UserValidationService) validateID(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, models.User{ID: id}, validators.FieldUserID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUserID, err)
	}
	return nil
}
