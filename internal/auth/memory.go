package auth

import (
	"context"
	"sync"
	"time"

	"taskdesk.org/internal/ids"
)

var _ UserStore = (*MemoryStore)(nil)

// MemoryStore implements UserStore in process memory. Used by tests and
// by local runs without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

// NewMemoryStore creates an empty user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byEmail: make(map[string]*User)}
}

func (s *MemoryStore) Create(ctx context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[u.Email]; ok {
		return ErrAlreadyExists
	}
	if u.ID == "" {
		u.ID = ids.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	cp := *u
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}
