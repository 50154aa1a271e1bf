package service

import (
	"context"

	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
	"github.com/hetu-labs/hetu-middleware/internal/tasks/repository"
)

// Tx is the write transaction the orchestrator drives. Inserts stay
// invisible until Commit; Rollback is idempotent.
type Tx interface {
	FindProjectByName(ctx context.Context, name string) (*domain.Project, error)
	InsertProject(ctx context.Context, name, description, icon string) (*domain.Project, error)
	InsertTask(ctx context.Context, projectID int64, taskType, twitterName, url, description, userWallet string) (*domain.Task, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store is the storage gateway the task service depends on.
type Store interface {
	Begin(ctx context.Context) (Tx, error)
	ListTasksPaged(ctx context.Context, limit, offset int) ([]domain.TaskWithProject, int, error)
}

type pgStore struct {
	inner *repository.Store
}

// NewStore adapts the pgx repository to the service's Store interface.
func NewStore(inner *repository.Store) Store {
	return &pgStore{inner: inner}
}

func (s *pgStore) Begin(ctx context.Context) (Tx, error) {
	return s.inner.Begin(ctx)
}

func (s *pgStore) ListTasksPaged(ctx context.Context, limit, offset int) ([]domain.TaskWithProject, int, error) {
	return s.inner.ListTasksPaged(ctx, limit, offset)
}
