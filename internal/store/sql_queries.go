package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/acquasitions/models"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{"id", "name", "email", "role", "created_at", "updated_at"}

var usersTable = models.User{}.TableName()

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}

func buildFindUserByIDQuery(id int64) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE that touches only the non-nil
// fields of update and returns the stored row.
func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(usersTable)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Role != nil {
		builder = builder.Set("role", string(*update.Role))
	}

	return builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildDeleteUserQuery(id int64) (string, []any, error) {
	return psql.
		Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
