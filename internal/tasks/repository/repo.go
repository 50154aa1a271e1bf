package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
)

// Store provides persistence operations for projects and tasks.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a new task store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Begin opens the write transaction for one create-task run. All
// inserts go through the returned Tx and stay invisible until Commit.
func (s *Store) Begin(ctx context.Context) (*Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// ListTasksPaged returns one page of tasks joined with their projects,
// plus the total task count. Bounds are validated by the caller.
func (s *Store) ListTasksPaged(ctx context.Context, limit, offset int) ([]domain.TaskWithProject, int, error) {
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tasks;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	const q = `
SELECT t.task_id, t.project_id, t.twitter_name, COALESCE(t.description, ''),
       t.type, t.url, COALESCE(t.user_wallet, ''), t.created_time,
       p.name, COALESCE(p.icon, '')
FROM tasks t
JOIN projects p ON p.id = t.project_id
ORDER BY t.task_id
LIMIT $1 OFFSET $2;
`
	rows, err := s.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TaskWithProject, 0, limit)
	for rows.Next() {
		var t domain.TaskWithProject
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.TwitterName, &t.Description,
			&t.Type, &t.URL, &t.UserWallet, &t.CreatedTime,
			&t.ProjectName, &t.ProjectIcon,
		); err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Tx wraps the request-scoped pgx transaction.
type Tx struct {
	tx pgx.Tx
}

// FindProjectByName looks up a project by exact name. Returns nil when
// no project exists.
func (t *Tx) FindProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	const q = `
SELECT id, name, COALESCE(icon, ''), COALESCE(description, ''), created_time
FROM projects
WHERE name = $1;
`
	var p domain.Project
	err := t.tx.QueryRow(ctx, q, name).
		Scan(&p.ID, &p.Name, &p.Icon, &p.Description, &p.CreatedTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find project by name: %w", err)
	}
	return &p, nil
}

// InsertProject inserts a project within the transaction; the row is
// invisible to other sessions until Commit. A unique violation on the
// name surfaces as domain.ErrProjectExists.
func (t *Tx) InsertProject(ctx context.Context, name, description, icon string) (*domain.Project, error) {
	const q = `
INSERT INTO projects (name, description, icon)
VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
RETURNING id, created_time;
`
	p := domain.Project{Name: name, Description: description, Icon: icon}
	err := t.tx.QueryRow(ctx, q, name, description, icon).Scan(&p.ID, &p.CreatedTime)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrProjectExists
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

// InsertTask inserts a task referencing an uncommitted project id.
func (t *Tx) InsertTask(ctx context.Context, projectID int64, taskType, twitterName, url, description, userWallet string) (*domain.Task, error) {
	const q = `
INSERT INTO tasks (project_id, twitter_name, description, type, url, user_wallet)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''))
RETURNING task_id, created_time;
`
	task := domain.Task{
		ProjectID:   projectID,
		TwitterName: twitterName,
		Description: description,
		Type:        taskType,
		URL:         url,
		UserWallet:  userWallet,
	}
	err := t.tx.QueryRow(ctx, q, projectID, twitterName, description, taskType, url, userWallet).
		Scan(&task.ID, &task.CreatedTime)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return &task, nil
}

// Commit finalizes all writes made through the transaction.
func (t *Tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback discards uncommitted writes. Safe to call more than once or
// after Commit.
func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
