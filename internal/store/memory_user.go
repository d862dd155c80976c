package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/acquasitions/models"
)

// memoryUserRepository keeps users in process memory. It is selected when no
// database DSN is configured and is used by tests that need a real
// [UserRepository] without PostgreSQL.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]models.User
	now   func() time.Time
}

// NewMemoryUserRepository returns an in-memory [UserRepository] pre-populated
// with seed. Seed users keep their IDs.
func NewMemoryUserRepository(seed ...models.User) UserRepository {
	users := make(map[int64]models.User, len(seed))
	for _, user := range seed {
		users[user.ID] = user
	}

	return &memoryUserRepository{
		users: users,
		now:   time.Now,
	}
}

func (m *memoryUserRepository) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	slices.SortFunc(users, func(a, b models.User) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	return users, nil
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

func (m *memoryUserRepository) UpdateUser(_ context.Context, id int64, update models.UserUpdate) (models.User, error) {
	if update.IsEmpty() {
		return models.User{}, ErrNothingToUpdate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	if update.Email != nil {
		for otherID, other := range m.users {
			if otherID != id && other.Email == *update.Email {
				return models.User{}, ErrEmailAlreadyExists
			}
		}
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	user.UpdatedAt = m.now()

	m.users[id] = user

	return user, nil
}

func (m *memoryUserRepository) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNoUserWasFound
	}
	delete(m.users, id)

	return nil
}
