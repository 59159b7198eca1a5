// Package memory keeps users in process memory for local runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"user-management/internal/entities"

	"go.uber.org/zap"
)

// Memory is a map-backed user store with a monotonic id sequence.
type Memory struct {
	log *zap.SugaredLogger

	mu     sync.RWMutex
	users  map[int64]entities.User
	nextID int64
}

// New returns an empty store.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:   log.Named("repo.memory"),
		users: make(map[int64]entities.User),
	}
}

func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

func (m *Memory) OnStop(_ context.Context) error { return nil }

func (m *Memory) Ping(ctx context.Context) error { return ctx.Err() }

func (m *Memory) InsertUser(ctx context.Context, user entities.NewUser) (*entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entities.StoreError{Op: "insert user", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	u := entities.User{ID: m.nextID, Name: user.Name, Email: user.Email}
	m.users[u.ID] = u
	return &u, nil
}

// ListUsers returns users ordered by id.
func (m *Memory) ListUsers(ctx context.Context) ([]entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entities.StoreError{Op: "list users", Err: err}
	}

	m.mu.RLock()
	users := make([]entities.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	m.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *Memory) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, &entities.StoreError{Op: "get user", Err: err}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

func (m *Memory) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &entities.StoreError{Op: "update user", Err: err}
	}
	if patch.Empty() {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	m.users[id] = patch.Apply(u)
	return 1, nil
}

func (m *Memory) DeleteUser(ctx context.Context, id int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &entities.StoreError{Op: "delete user", Err: err}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}
