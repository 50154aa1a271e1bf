package subscription

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

const sweepPageSize = 100

// TaskLister pages through stored tasks.
type TaskLister interface {
	ListTasksPaged(ctx context.Context, limit, offset int) ([]domain.TaskWithProject, int, error)
}

// Subscriber re-registers monitoring subscriptions.
type Subscriber interface {
	UpsertSubscription(ctx context.Context, method twitter.SubscriptionMethod, account, tweetID, updateFrequency string) twitter.SubscriptionResult
}

// Refresher periodically re-issues subscription updates for every
// stored task so the collection service keeps monitoring them.
type Refresher struct {
	store    TaskLister
	client   Subscriber
	schedule string
	cron     *cron.Cron
}

// NewRefresher creates a refresher with a cron schedule spec
// (e.g. "@every 10m").
func NewRefresher(store TaskLister, client Subscriber, schedule string) *Refresher {
	return &Refresher{
		store:    store,
		client:   client,
		schedule: schedule,
	}
}

// Start schedules the sweep and begins running it.
func (r *Refresher) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(r.schedule, func() {
		if err := r.RunOnce(context.Background()); err != nil {
			log.Printf("[error] operation=subscription_sweep error=%v", err)
		}
	}); err != nil {
		return err
	}

	log.Printf("[info] operation=subscription_sweep scheduled (%s)", r.schedule)
	r.cron = c
	c.Start()
	return nil
}

// Stop halts the schedule. Any in-flight sweep finishes.
func (r *Refresher) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// RunOnce walks all stored tasks page by page and re-issues an UPDATE
// subscription for each. Individual failures are logged, never fatal.
func (r *Refresher) RunOnce(ctx context.Context) error {
	for offset := 0; ; offset += sweepPageSize {
		tasks, total, err := r.store.ListTasksPaged(ctx, sweepPageSize, offset)
		if err != nil {
			return err
		}

		for _, t := range tasks {
			tweetID, err := twitter.ExtractTweetID(t.URL)
			if err != nil {
				log.Printf("[warn] operation=subscription_sweep task_id=%d skipping unparseable url %q", t.ID, t.URL)
				continue
			}
			res := r.client.UpsertSubscription(ctx, twitter.SubscriptionUpdate, t.TwitterName, tweetID, "")
			if !res.Success {
				log.Printf("[warn] operation=subscription_sweep task_id=%d update failed: %s", t.ID, res.Message)
			}
		}

		if offset+sweepPageSize >= total || len(tasks) == 0 {
			return nil
		}
	}
}
