package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when the requested user ID does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmailAlreadyExists is returned when an update would give a user an
	// email address that already belongs to another user.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// row-returning query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails mid-way.
	ErrScanningRows = errors.New("failed to scan user rows")
)
