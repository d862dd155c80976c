// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldUserID targets the identifier of the user being addressed.
	FieldUserID = "user_id"

	// FieldName targets the display name of a user.
	FieldName = "name"

	// FieldEmail targets the contact address of a user.
	FieldEmail = "email"

	// FieldRole targets the role of a user.
	FieldRole = "role"

	// FieldNotEmpty requires a partial update to carry at least one field.
	FieldNotEmpty = "not_empty"
)

// MaxNameLength is the upper bound on the number of runes in a user name.
const MaxNameLength = 100
