package tasks

import "context"

// Store defines task persistence operations. Listings are ordered newest
// first, ties broken by identifier so the order is total.
type Store interface {
	Create(ctx context.Context, draft NewTask) (Task, error)
	Get(ctx context.Context, id string) (Task, error)
	List(ctx context.Context, page, pageSize int) (Page, error)
	Update(ctx context.Context, id string, patch Patch) (Task, error)
	Delete(ctx context.Context, id string) error
}
