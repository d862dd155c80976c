package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It reads and modifies the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user models.User
		role string
	)

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &role, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return models.User{}, err
	}
	user.Role = models.Role(role)

	return user, nil
}

// ListUsers returns every stored user ordered by ID. An empty table yields an
// empty, non-nil slice.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var queryErr error
		users, queryErr = r.queryUsers(ctx, query, args)
		return queryErr
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args []any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// FindUserByID returns the user with the given ID or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "userRepository.FindUserByID").Int64("id", id).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser applies update to the user with the given ID and returns the row
// as stored after the update.
//
// Error handling:
//   - empty update → [ErrNothingToUpdate].
//   - no matching row → [ErrNoUserWasFound].
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			return models.User{}, err
		}
		log.Err(err).Str("func", "userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("id", id).Msg("failed to update user")

		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

// DeleteUser removes the user with the given ID or returns
// [ErrNoUserWasFound] when no row was affected.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(id)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Int64("id", id).Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
