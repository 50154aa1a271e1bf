package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/hetu-labs/hetu-middleware/config"
	httpapi "github.com/hetu-labs/hetu-middleware/internal/api/http"
	"github.com/hetu-labs/hetu-middleware/internal/api/http/middleware"
	"github.com/hetu-labs/hetu-middleware/internal/flux"
	"github.com/hetu-labs/hetu-middleware/internal/subnet"
	subnethttp "github.com/hetu-labs/hetu-middleware/internal/subnet/http"
	taskshttp "github.com/hetu-labs/hetu-middleware/internal/tasks/http"
	"github.com/hetu-labs/hetu-middleware/internal/tasks/repository"
	"github.com/hetu-labs/hetu-middleware/internal/tasks/service"
	"github.com/hetu-labs/hetu-middleware/internal/twitter"
	twitterhttp "github.com/hetu-labs/hetu-middleware/internal/twitter/http"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	DB          *pgxpool.Pool
	Redis       *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	twitterClient := twitter.NewClient(dep.Cfg.Twitter.BaseURL, dep.Cfg.Twitter.Timeout, dep.Cfg.Twitter.RatePerSec)
	fluxClient := flux.NewClient(dep.Cfg.Flux.BaseURL, dep.Cfg.Flux.Timeout)

	var cache *twitter.RetweetCache
	if dep.Redis != nil {
		cache = twitter.NewRetweetCache(dep.Redis)
	}
	verifier := twitter.NewVerifier(twitterClient, cache)

	store := service.NewStore(repository.NewStore(dep.DB))
	taskService := service.NewTaskService(store, twitterClient, fluxClient)

	taskshttp.NewHandler(taskService).RegisterRoutes(r)
	twitterhttp.NewHandler(twitterClient, verifier).RegisterRoutes(r)
	subnethttp.NewHandler(subnet.NewService()).RegisterRoutes(r)

	return r
}
