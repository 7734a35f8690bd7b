package tasks

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"taskdesk.org/internal/ids"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL. Writes run inside a
// transaction so a create/update either fully commits or has no visible
// effect. Concurrent updates to the same task resolve last-write-wins.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, draft NewTask) (Task, error) {
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

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		insert into tasks(id, title, description, status, created_at)
		values ($1,$2,nullif($3,''),$4,$5)
	`, t.ID, t.Title, t.Description, string(t.Status), t.CreatedAt); err != nil {
		return Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *PGStore) Get(ctx context.Context, id string) (Task, error) {
	row := s.db.QueryRowContext(ctx, `
		select id, title, coalesce(description,''), status, created_at, updated_at
		from tasks where id=$1
	`, id)
	return scanTask(row)
}

func (s *PGStore) List(ctx context.Context, page, pageSize int) (Page, error) {
	if err := validatePageParams(page, pageSize); err != nil {
		return Page{}, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `select count(*) from tasks`).Scan(&total); err != nil {
		return Page{}, err
	}

	// Pages beyond the last are valid requests for an empty slice. Skip
	// the query: the offset arithmetic can overflow for extreme pages.
	pages := totalPages(total, pageSize)
	if page > pages {
		return Page{
			Items:      []Task{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: pages,
		}, nil
	}

	offset := (page - 1) * pageSize
	rows, err := s.db.QueryContext(ctx, `
		select id, title, coalesce(description,''), status, created_at, updated_at
		from tasks
		order by created_at desc, id desc
		limit $1 offset $2
	`, pageSize, offset)
	if err != nil {
		return Page{}, err
	}
	defer rows.Close()

	items := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return Page{}, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return Page{}, err
	}

	return Page{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}, nil
}

func (s *PGStore) Update(ctx context.Context, id string, patch Patch) (Task, error) {
	if err := patch.validate(); err != nil {
		return Task{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		select id, title, coalesce(description,''), status, created_at, updated_at
		from tasks where id=$1 for update
	`, id)
	t, err := scanTask(row)
	if err != nil {
		return Task{}, err
	}

	patch.apply(&t, time.Now().UTC())

	if _, err := tx.ExecContext(ctx, `
		update tasks set title=$2, description=nullif($3,''), status=$4, updated_at=$5
		where id=$1
	`, t.ID, t.Title, t.Description, string(t.Status), *t.UpdatedAt); err != nil {
		return Task{}, err
	}
	if err := tx.Commit(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from tasks where id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var (
		t       Task
		status  string
		updated sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &t.CreatedAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	t.Status = Status(status)
	if updated.Valid {
		u := updated.Time
		t.UpdatedAt = &u
	}
	return t, nil
}
