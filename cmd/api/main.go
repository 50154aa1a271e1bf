package main

import (
	"context"
	"log"

	"github.com/hetu-labs/hetu-middleware/config"
	"github.com/hetu-labs/hetu-middleware/internal/bootstrap"
	"github.com/hetu-labs/hetu-middleware/internal/subscription"
	"github.com/hetu-labs/hetu-middleware/internal/tasks/repository"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer pool.Close()

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "hetu-middleware",
		Cfg:         cfg,
		DB:          pool,
		Redis:       redisClient,
	})

	if cfg.Sweep.Enabled {
		refresher := subscription.NewRefresher(
			repository.NewStore(pool),
			twitter.NewClient(cfg.Twitter.BaseURL, cfg.Twitter.Timeout, cfg.Twitter.RatePerSec),
			cfg.Sweep.Schedule,
		)
		if err := refresher.Start(); err != nil {
			log.Fatalf("start subscription sweep: %v", err)
		}
		defer refresher.Stop()
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
