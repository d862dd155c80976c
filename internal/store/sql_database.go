package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	maxQueryRetries = 2
	queryRetryDelay = 50 * time.Millisecond
)

// DB is a PostgreSQL connection pool used by the SQL repositories.
type DB struct {
	*sql.DB
	classifier PostgresErrorClassifier
	logger     *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op and repeats it, at most maxQueryRetries more times, while
// it fails with an error classified as [Retryable]. op must be idempotent.
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxQueryRetries, retry.NewConstant(queryRetryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.classifier.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
