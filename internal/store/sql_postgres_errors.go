package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation may succeed
// when attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// constraint violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a lost connection or a
	// deadlock rollback.
	Retryable
)

// PostgresErrorClassifier maps pgx driver errors to an [ErrorClassification].
// The zero value is ready for use.
type PostgresErrorClassifier struct{}

// Classify unwraps err as a *pgconn.PgError and classifies its SQLSTATE.
// Client-side pgx failures that pgconn reports as safe to retry (the request
// never reached the server) are [Retryable]; any other error is [NonRetryable].
func (c PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if pgconn.SafeToRetry(err) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08, connection exceptions (08000, 08003, 08006)
//   - Class 40, transaction rollback (40000, 40001, 40P01)
//   - Class 57, cannot connect now (57P03)
//
// Everything else is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
