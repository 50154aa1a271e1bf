package service

import (
	"context"
	"fmt"

	"github.com/hetu-labs/hetu-middleware/internal/flux"
	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

const (
	maxListLimit = 100
)

// SubscriptionClient registers monitoring subscriptions with the
// interaction collection service.
type SubscriptionClient interface {
	UpsertSubscription(ctx context.Context, method twitter.SubscriptionMethod, account, tweetID, updateFrequency string) twitter.SubscriptionResult
}

// LedgerClient registers reward tasks with the Flux ledger.
type LedgerClient interface {
	RegisterTask(ctx context.Context, req flux.RegisterTaskRequest) flux.RegisterTaskResult
}

// TaskService coordinates project/task creation across the local store,
// the interaction collection service, and the Flux ledger.
type TaskService struct {
	store        Store
	subscription SubscriptionClient
	ledger       LedgerClient
}

// NewTaskService creates a new task service.
func NewTaskService(store Store, subscription SubscriptionClient, ledger LedgerClient) *TaskService {
	return &TaskService{
		store:        store,
		subscription: subscription,
		ledger:       ledger,
	}
}

// CreateTask runs the create-task chain: insert project and task inside
// one transaction, register the monitoring subscription, register the
// ledger task, then commit. Any failure rolls the transaction back
// before the error surfaces. The remote registrations have no undo:
// a subscription or ledger entry created before a later failure is left
// behind (see the nil compensations below).
func (s *TaskService) CreateTask(ctx context.Context, req domain.CreateTaskRequest) (*domain.CreateTaskResult, error) {
	logger := NewLogger(ctx)

	var (
		tx        Tx
		project   *domain.Project
		task      *domain.Task
		tweetID   string
		ledgerRes flux.RegisterTaskResult
	)

	steps := []sagaStep{
		{
			name: "begin transaction",
			run: func(ctx context.Context) error {
				var err error
				tx, err = s.store.Begin(ctx)
				return err
			},
			compensate: func(ctx context.Context) {
				if err := tx.Rollback(ctx); err != nil {
					logger.LogError("create_task", fmt.Errorf("rollback: %w", err))
				}
			},
		},
		{
			name: "check project",
			run: func(ctx context.Context) error {
				existing, err := tx.FindProjectByName(ctx, req.ProjectName)
				if err != nil {
					return err
				}
				if existing != nil {
					return domain.ErrProjectExists
				}
				return nil
			},
		},
		{
			name: "insert project",
			run: func(ctx context.Context) error {
				var err error
				project, err = tx.InsertProject(ctx, req.ProjectName, req.ProjectDescription, req.ProjectIcon)
				return err
			},
		},
		{
			name: "insert task",
			run: func(ctx context.Context) error {
				var err error
				task, err = tx.InsertTask(ctx, project.ID, req.TaskType, req.TwitterName, req.TwitterURL, req.Description, req.UserWallet)
				return err
			},
		},
		{
			name: "extract tweet id",
			run: func(ctx context.Context) error {
				var err error
				tweetID, err = twitter.ExtractTweetID(req.TwitterURL)
				return err
			},
		},
		{
			// No compensation: the collection service has no way to undo
			// a subscription mid-flight, so one created before a later
			// failure is left behind.
			name: "create subscription",
			run: func(ctx context.Context) error {
				res := s.subscription.UpsertSubscription(ctx, twitter.SubscriptionCreate, req.TwitterName, tweetID, "")
				if !res.Success {
					return fmt.Errorf("interaction subscription failed: %s: %w", res.Message, domain.ErrUpstreamRejected)
				}
				return nil
			},
		},
		{
			// No compensation: ledger registrations are not reversible.
			name: "register ledger task",
			run: func(ctx context.Context) error {
				ledgerRes = s.ledger.RegisterTask(ctx, flux.RegisterTaskRequest{
					UserWallet:      req.UserWallet,
					ProjectName:     req.ProjectName,
					ProjectIcon:     req.ProjectIcon,
					Description:     req.ProjectDescription,
					TwitterUsername: req.TwitterName,
					TwitterLink:     req.TwitterURL,
					TweetID:         tweetID,
					TaskType:        req.TaskType,
				})
				if !ledgerRes.Success {
					return fmt.Errorf("ledger registration failed: %s: %w", ledgerRes.Message, domain.ErrUpstreamRejected)
				}
				return nil
			},
		},
		{
			name: "commit",
			run: func(ctx context.Context) error {
				return tx.Commit(ctx)
			},
		},
	}

	if err := runSaga(ctx, steps); err != nil {
		logger.LogError("create_task", err)
		return nil, err
	}

	logger.LogInfof("create_task", "created project=%s task_id=%d flux_task_id=%s", project.Name, task.ID, ledgerRes.TaskID)

	return &domain.CreateTaskResult{
		TaskID:     task.ID,
		FluxTaskID: ledgerRes.TaskID,
		VLCValue:   ledgerRes.VLCValue,
		Message:    fmt.Sprintf("Successfully created project %s and associated task", project.Name),
	}, nil
}

// ListTasks returns one page of tasks joined with their projects.
// limit must be in [1,100] and offset non-negative.
func (s *TaskService) ListTasks(ctx context.Context, limit, offset int) (*domain.TaskPage, error) {
	if limit < 1 || limit > maxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, maxListLimit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrValidation)
	}

	tasks, total, err := s.store.ListTasksPaged(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &domain.TaskPage{
		Tasks:      tasks,
		TotalCount: total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    offset+limit < total,
	}, nil
}
