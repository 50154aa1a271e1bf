package twitter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	pages   []*InteractionPage
	err     error
	fetches int
}

func (f *fakeFetcher) FetchInteractions(ctx context.Context, account string, q InteractionQuery) (*InteractionPage, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.pages[q.Page-1], nil
}

func page(hasNext bool, interactions ...Interaction) *InteractionPage {
	return &InteractionPage{
		Pagination:   PaginationInfo{HasNext: hasNext},
		Interactions: interactions,
	}
}

func TestVerifier_HasRetweet(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("match on page 2 of 3 stops after 2 fetches", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []*InteractionPage{
			page(true, Interaction{InteractionType: "like", PostID: "99"}),
			page(true, Interaction{InteractionType: "Retweet", PostID: "99"}),
			page(false, Interaction{InteractionType: "retweet", PostID: "99"}),
		}}

		v := NewVerifier(fetcher, nil)
		has, err := v.HasRetweet(context.Background(), "hetu", "u1", "99", start, end)
		require.NoError(t, err)
		assert.True(t, has)
		assert.Equal(t, 2, fetcher.fetches)
	})

	t.Run("no match walks every page", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []*InteractionPage{
			page(true, Interaction{InteractionType: "like", PostID: "99"}),
			page(true, Interaction{InteractionType: "retweet", PostID: "other"}),
			page(false),
		}}

		v := NewVerifier(fetcher, nil)
		has, err := v.HasRetweet(context.Background(), "hetu", "u1", "99", start, end)
		require.NoError(t, err)
		assert.False(t, has)
		assert.Equal(t, 3, fetcher.fetches)
	})

	t.Run("kind match is case-insensitive, post id exact", func(t *testing.T) {
		fetcher := &fakeFetcher{pages: []*InteractionPage{
			page(false, Interaction{InteractionType: "RETWEET", PostID: "99"}),
		}}

		v := NewVerifier(fetcher, nil)
		has, err := v.HasRetweet(context.Background(), "hetu", "u1", "99", start, end)
		require.NoError(t, err)
		assert.True(t, has)
	})

	t.Run("client failures propagate unchanged", func(t *testing.T) {
		wantErr := errors.New("boom")
		fetcher := &fakeFetcher{err: wantErr}

		v := NewVerifier(fetcher, nil)
		_, err := v.HasRetweet(context.Background(), "hetu", "u1", "99", start, end)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("cached positive skips the upstream walk", func(t *testing.T) {
		mr, err := miniredis.Run()
		require.NoError(t, err)
		defer mr.Close()

		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()
		cache := NewRetweetCache(client)

		fetcher := &fakeFetcher{pages: []*InteractionPage{
			page(false, Interaction{InteractionType: "retweet", PostID: "99"}),
		}}
		v := NewVerifier(fetcher, cache)

		has, err := v.HasRetweet(context.Background(), "hetu", "u1", "99", start, end)
		require.NoError(t, err)
		assert.True(t, has)
		assert.Equal(t, 1, fetcher.fetches)

		has, err = v.HasRetweet(context.Background(), "hetu", "u1", "99", start, end)
		require.NoError(t, err)
		assert.True(t, has)
		assert.Equal(t, 1, fetcher.fetches, "second check is served from cache")
	})
}
