package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Leerling-hub/Booking/domain"
	"github.com/Leerling-hub/Booking/events"
	"github.com/Leerling-hub/Booking/repositories"
)

// ============================================
// In-memory repository mock for the tests
// ============================================
type mockRepository[T any] struct {
	rows  map[string]*T
	order []string
	idOf  func(*T) *domain.Base
	// err, when set, is returned by every call
	err error
	// match decides whether a row passes a filter
	match func(row *T, filter *repositories.Filter) bool
}

func newMockRepository[T any](idOf func(*T) *domain.Base) *mockRepository[T] {
	return &mockRepository[T]{rows: make(map[string]*T), idOf: idOf}
}

func (m *mockRepository[T]) List(_ context.Context, filter *repositories.Filter) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []T{}
	for _, id := range m.order {
		row, ok := m.rows[id]
		if !ok {
			continue
		}
		if filter != nil && m.match != nil && !m.match(row, filter) {
			continue
		}
		out = append(out, *row)
	}
	return out, nil
}

func (m *mockRepository[T]) GetByID(_ context.Context, id string) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (m *mockRepository[T]) Create(_ context.Context, entity *T) error {
	if m.err != nil {
		return m.err
	}
	base := m.idOf(entity)
	if base.ID == "" {
		// simulate the generated id
		base.ID = fmt.Sprintf("id-%d", len(m.order)+1)
	}
	copied := *entity
	m.rows[base.ID] = &copied
	m.order = append(m.order, base.ID)
	return nil
}

func (m *mockRepository[T]) Replace(_ context.Context, id string, entity *T) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	copied := *entity
	m.rows[id] = &copied
	return nil
}

func (m *mockRepository[T]) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// mockUserRepository adds the username lookup
type mockUserRepository struct {
	*mockRepository[domain.User]
}

func newMockUserRepository() *mockUserRepository {
	repo := newMockRepository(func(u *domain.User) *domain.Base { return &u.Base })
	repo.match = func(u *domain.User, f *repositories.Filter) bool {
		return strings.Contains(u.Username, f.Value.(string))
	}
	return &mockUserRepository{repo}
}

func (m *mockUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.rows {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// recordingPublisher keeps the published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// recordingCache is an AccountCache that remembers evictions
type recordingCache struct {
	users   map[string]*domain.User
	deleted []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{users: map[string]*domain.User{}}
}

func (c *recordingCache) Get(username string) (*domain.User, bool) {
	u, ok := c.users[username]
	return u, ok
}

func (c *recordingCache) Set(user *domain.User) { c.users[user.Username] = user }

func (c *recordingCache) Delete(username string) {
	delete(c.users, username)
	c.deleted = append(c.deleted, username)
}

type failingHasher struct{}

func (failingHasher) HashPassword(string) (string, error) {
	return "", errors.New("entropy source unavailable")
}

func (failingHasher) CheckPasswordHash(string, string) bool { return false }
