package subscription

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetu-labs/hetu-middleware/internal/tasks/domain"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

type fakeLister struct {
	tasks []domain.TaskWithProject
}

func (f *fakeLister) ListTasksPaged(ctx context.Context, limit, offset int) ([]domain.TaskWithProject, int, error) {
	if offset >= len(f.tasks) {
		return nil, len(f.tasks), nil
	}
	end := offset + limit
	if end > len(f.tasks) {
		end = len(f.tasks)
	}
	return f.tasks[offset:end], len(f.tasks), nil
}

type fakeSubscriber struct {
	updates []string
	methods []twitter.SubscriptionMethod
}

func (f *fakeSubscriber) UpsertSubscription(ctx context.Context, method twitter.SubscriptionMethod, account, tweetID, updateFrequency string) twitter.SubscriptionResult {
	f.updates = append(f.updates, tweetID)
	f.methods = append(f.methods, method)
	return twitter.SubscriptionResult{Success: true, Message: "ok"}
}

func task(id int64, url string) domain.TaskWithProject {
	return domain.TaskWithProject{Task: domain.Task{ID: id, TwitterName: "hetu", URL: url}}
}

func TestRefresher_RunOnce(t *testing.T) {
	t.Run("updates every stored task", func(t *testing.T) {
		lister := &fakeLister{tasks: []domain.TaskWithProject{
			task(1, "https://x.com/hetu/status/100"),
			task(2, "https://x.com/hetu/status/200"),
		}}
		sub := &fakeSubscriber{}

		r := NewRefresher(lister, sub, "@every 10m")
		require.NoError(t, r.RunOnce(context.Background()))

		assert.Equal(t, []string{"100", "200"}, sub.updates)
		for _, m := range sub.methods {
			assert.Equal(t, twitter.SubscriptionUpdate, m)
		}
	})

	t.Run("skips tasks with unparseable URLs", func(t *testing.T) {
		lister := &fakeLister{tasks: []domain.TaskWithProject{
			task(1, "https://x.com/hetu/status/100"),
			task(2, "https://x.com/hetu"),
			task(3, "https://x.com/hetu/status/300"),
		}}
		sub := &fakeSubscriber{}

		r := NewRefresher(lister, sub, "@every 10m")
		require.NoError(t, r.RunOnce(context.Background()))
		assert.Equal(t, []string{"100", "300"}, sub.updates)
	})

	t.Run("walks multiple pages", func(t *testing.T) {
		tasks := make([]domain.TaskWithProject, 0, 150)
		for i := 0; i < 150; i++ {
			tasks = append(tasks, task(int64(i), "https://x.com/hetu/status/1"))
		}
		lister := &fakeLister{tasks: tasks}
		sub := &fakeSubscriber{}

		r := NewRefresher(lister, sub, "@every 10m")
		require.NoError(t, r.RunOnce(context.Background()))
		assert.Len(t, sub.updates, 150)
	})

	t.Run("empty store is a no-op", func(t *testing.T) {
		sub := &fakeSubscriber{}
		r := NewRefresher(&fakeLister{}, sub, "@every 10m")
		require.NoError(t, r.RunOnce(context.Background()))
		assert.Empty(t, sub.updates)
	})
}
