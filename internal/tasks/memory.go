package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskdesk.org/internal/ids"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store with in-process concurrency safety. Used
// by tests and by local runs without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*Task
}

// NewMemoryStore creates an empty task store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*Task)}
}

func (s *MemoryStore) Create(ctx context.Context, draft NewTask) (Task, error) {
	if err := draft.validate(); err != nil {
		return Task{}, err
	}
	t := Task{
		ID:          ids.New(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		CreatedAt:   time.Now().UTC(),
	}
	if t.Status == "" {
		t.Status = StatusPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cp := t
	s.items[t.ID] = &cp
	return t, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.items[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return copyTask(t), nil
}

func (s *MemoryStore) List(ctx context.Context, page, pageSize int) (Page, error) {
	if err := validatePageParams(page, pageSize); err != nil {
		return Page{}, err
	}

	s.mu.RLock()
	all := make([]Task, 0, len(s.items))
	for _, t := range s.items {
		all = append(all, copyTask(t))
	}
	s.mu.RUnlock()

	// Newest first, identifier as the deterministic tiebreaker.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})

	total := len(all)
	items := []Task{}
	// Only compute the offset for pages inside the range; an arbitrary
	// large page must yield an empty slice, not an overflowed index.
	if page <= totalPages(total, pageSize) {
		offset := (page - 1) * pageSize
		end := offset + pageSize
		if end > total {
			end = total
		}
		items = all[offset:end]
	}

	return Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, patch Patch) (Task, error) {
	if err := patch.validate(); err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	patch.apply(t, time.Now().UTC())
	return copyTask(t), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func copyTask(t *Task) Task {
	out := *t
	if t.UpdatedAt != nil {
		u := *t.UpdatedAt
		out.UpdatedAt = &u
	}
	return out
}
