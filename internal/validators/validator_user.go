package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/acquasitions/models"
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldEmail, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if user.ID <= 0 {
				return ErrInvalidUserID
			}
		case FieldName:
			if err := validateName(user.Name); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(user.Email); err != nil {
				return err
			}
		case FieldRole:
			if !user.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// nil fields of an update are skipped; set fields follow the User rules
func (v *UserValidator) validateUserUpdate(ctx context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNotEmpty, FieldName, FieldEmail, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name == nil {
				continue
			}
			if err := validateName(*update.Name); err != nil {
				return err
			}
		case FieldEmail:
			if update.Email == nil {
				continue
			}
			if err := validateEmail(*update.Email); err != nil {
				return err
			}
		case FieldRole:
			if update.Role != nil && !update.Role.IsValid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// only bare addresses are accepted, "Alice <a@b.c>" is rejected
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
