package api

import (
	"net/http"

	"github.com/gilby125/thai-flight-analytics/analysis"
	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/metrics"
	"github.com/gilby125/thai-flight-analytics/pkg/buildinfo"
	"github.com/gilby125/thai-flight-analytics/pkg/cache"
	"github.com/gilby125/thai-flight-analytics/pkg/health"
	"github.com/gilby125/thai-flight-analytics/pkg/middleware"
	"github.com/gilby125/thai-flight-analytics/queue"
	"github.com/gilby125/thai-flight-analytics/worker"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes wires the orchestrator, store, queue, and worker manager
// into the HTTP surface (§6).
func RegisterRoutes(router *gin.Engine, store db.PostgresDB, q queue.Queue, workerManager *worker.Manager, orch *analysis.Orchestrator, cfg *config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisConfig.Host + ":" + cfg.RedisConfig.Port,
		Password: cfg.RedisConfig.Password,
		DB:       cfg.RedisConfig.DB,
	})

	redisCache := cache.NewRedisCache(redisClient, "thai_flight_analytics")
	cacheManager := cache.NewCacheManager(redisCache)

	healthChecker := health.NewHealthChecker(buildinfo.Version)
	healthChecker.AddChecker(&health.PostgresChecker{DB: store, Name: "postgres"})
	healthChecker.AddChecker(&health.RedisChecker{Client: redisClient, Name: "redis"})
	healthChecker.AddChecker(&health.QueueChecker{Queue: q, Name: "queue"})
	healthChecker.AddChecker(&health.WorkerChecker{Manager: workerManager, Name: "workers"})

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		report := healthChecker.CheckHealth(c.Request.Context())
		status := http.StatusOK
		if report.Status == health.StatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	})
	router.GET("/health/ready", func(c *gin.Context) {
		report := healthChecker.CheckReadiness(c.Request.Context())
		status := http.StatusOK
		if report.Status == health.StatusDown {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, report)
	})
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, healthChecker.CheckLiveness(c.Request.Context()))
	})

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/analyze", AnalyzeFlightPrices(orch))

		cached := v1.Group("/")
		cached.Use(middleware.ResponseCache(cacheManager, middleware.CacheConfig{
			TTL:         cache.LongTTL,
			KeyPrefix:   "http_cache",
			OnlyMethods: []string{"GET"},
		}))
		{
			cached.GET("/airlines", GetAirlines(store))
			cached.GET("/routes", GetRoutes(store))
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.AdminAuthConfig))
		{
			admin.GET("/workers", GetWorkerStatus(workerManager))
			admin.GET("/queue/:name", GetQueueStatus(q))
			admin.GET("/queue/:name/jobs", ListQueueJobs(q))
			admin.POST("/ingest/:type", TriggerIngestion(q))
		}
	}
}
