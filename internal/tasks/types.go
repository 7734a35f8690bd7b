package tasks

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// MaxTitleLen bounds task titles.
const MaxTitleLen = 200

// Status is the closed task state enumeration.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is the managed resource. The identifier and creation timestamp are
// assigned on creation and never change; UpdatedAt is nil until the first
// mutation.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// NewTask is the input to Create. An empty Status defaults to pending.
type NewTask struct {
	Title       string
	Description string
	Status      Status
}

// Patch is a sparse update: only non-nil fields are applied, everything
// else keeps its stored value.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *Status `json:"status"`
}

// Page is one slice of the task listing plus pagination metadata.
type Page struct {
	Items      []Task `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}

var (
	// ErrNotFound indicates the addressed task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidInput indicates malformed create/update/list input.
	ErrInvalidInput = errors.New("invalid task input")
)

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, MaxTitleLen)
	}
	return nil
}

func (d NewTask) validate() error {
	if err := validateTitle(d.Title); err != nil {
		return err
	}
	if d.Status != "" && !d.Status.Valid() {
		return fmt.Errorf("%w: status must be one of pending, in_progress, done", ErrInvalidInput)
	}
	return nil
}

func (p Patch) validate() error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: status must be one of pending, in_progress, done", ErrInvalidInput)
	}
	return nil
}

// apply merges the patch into t field by field and stamps the mutation
// time. Every successful update refreshes UpdatedAt, even a no-op one.
func (p Patch) apply(t *Task, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	t.UpdatedAt = &now
}

func validatePageParams(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be >= 1", ErrInvalidInput)
	}
	if pageSize < 1 || pageSize > 100 {
		return fmt.Errorf("%w: page_size must be between 1 and 100", ErrInvalidInput)
	}
	return nil
}

func totalPages(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
