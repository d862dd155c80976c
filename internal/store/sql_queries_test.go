package store

import (
	"testing"

	"github.com/MKhiriev/acquasitions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, email, role, created_at, updated_at FROM users ORDER BY id", query)
	assert.Empty(t, args)
}

func TestBuildFindUserByIDQuery(t *testing.T) {
	query, args, err := buildFindUserByIDQuery(7)

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, email, role, created_at, updated_at FROM users WHERE id = $1", query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name      string
		update    models.UserUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "name only",
			update:    models.UserUpdate{Name: ptr("Jane")},
			wantQuery: "UPDATE users SET name = $1, updated_at = NOW() WHERE id = $2 RETURNING id, name, email, role, created_at, updated_at",
			wantArgs:  []any{"Jane", int64(3)},
		},
		{
			name:      "email and role",
			update:    models.UserUpdate{Email: ptr("jane@example.com"), Role: ptr(models.RoleAdmin)},
			wantQuery: "UPDATE users SET email = $1, role = $2, updated_at = NOW() WHERE id = $3 RETURNING id, name, email, role, created_at, updated_at",
			wantArgs:  []any{"jane@example.com", "admin", int64(3)},
		},
		{
			name: "all fields keep column order",
			update: models.UserUpdate{
				Role:  ptr(models.RoleUser),
				Email: ptr("j@example.com"),
				Name:  ptr("J"),
			},
			wantQuery: "UPDATE users SET name = $1, email = $2, role = $3, updated_at = NOW() WHERE id = $4 RETURNING id, name, email, role, created_at, updated_at",
			wantArgs:  []any{"J", "j@example.com", "user", int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(3, tt.update)

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildUpdateUserQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateUserQuery(3, models.UserUpdate{})

	assert.ErrorIs(t, err, ErrNothingToUpdate)
}

func TestBuildDeleteUserQuery(t *testing.T) {
	query, args, err := buildDeleteUserQuery(9)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM users WHERE id = $1", query)
	assert.Equal(t, []any{int64(9)}, args)
}
