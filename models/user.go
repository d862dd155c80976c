// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account exposed by the users resource.
type User struct {
	// ID is the server-assigned identifier of the user. It is the value
	// addressed by the `{id}` path parameter of the users routes.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// Role decides which role-gated operations the user may perform.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is a partial update of a single user.
// Only non-nil fields are applied.
type UserUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *Role   `json:"role,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Role == nil
}

// ChangesRole reports whether the update touches the role field.
func (u UserUpdate) ChangesRole() bool {
	return u.Role != nil
}
