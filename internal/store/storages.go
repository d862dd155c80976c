package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
)

// Storages aggregates the repositories used by the service layer together
// with the resources backing them.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the storage layer described by cfg.
//
// With a non-empty DSN it connects to PostgreSQL, applies the embedded
// migrations and returns SQL repositories. With an empty DSN it falls back to
// in-memory repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database DSN configured, using in-memory user storage")
		return &Storages{
			UserRepository: NewMemoryUserRepository(),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Msg("database migrations applied")

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
