package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gilby125/thai-flight-analytics/aggregator"
	"github.com/gilby125/thai-flight-analytics/analysis"
	"github.com/gilby125/thai-flight-analytics/api"
	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/forecast"
	"github.com/gilby125/thai-flight-analytics/ingest"
	"github.com/gilby125/thai-flight-analytics/pkg/buildinfo"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/queue"
	"github.com/gilby125/thai-flight-analytics/upstream/holiday"
	"github.com/gilby125/thai-flight-analytics/upstream/weather"
	"github.com/gilby125/thai-flight-analytics/worker"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	for _, arg := range os.Args[1:] {
		if arg == "-health-check" {
			resp, err := http.Get("http://localhost:8080/health/ready")
			if err != nil || resp.StatusCode != http.StatusOK {
				os.Exit(1)
			}
			os.Exit(0)
		}

		if arg == "-health-check-worker" {
			cfg, err := config.Load()
			if err != nil {
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			connStr := fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				cfg.PostgresConfig.Host, cfg.PostgresConfig.Port, cfg.PostgresConfig.User, cfg.PostgresConfig.Password,
				cfg.PostgresConfig.DBName, cfg.PostgresConfig.SSLMode)

			postgresDB, err := sql.Open("postgres", connStr)
			if err != nil {
				os.Exit(1)
			}
			defer postgresDB.Close()

			if err := postgresDB.PingContext(ctx); err != nil {
				os.Exit(1)
			}

			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisConfig.Host + ":" + cfg.RedisConfig.Port,
				Password: cfg.RedisConfig.Password,
				DB:       cfg.RedisConfig.DB,
			})
			defer redisClient.Close()

			if _, err := redisClient.Ping(ctx).Result(); err != nil {
				os.Exit(1)
			}

			os.Exit(0)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(logger.Config{
		Level:  cfg.LoggingConfig.Level,
		Format: cfg.LoggingConfig.Format,
	})

	logger.Info("starting thai flight analytics engine",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"api_enabled", cfg.APIEnabled,
		"http_bind_addr", cfg.HTTPBindAddr,
		"worker_enabled", cfg.WorkerEnabled)

	if cfg.Environment == "production" && cfg.InitSchema {
		logger.Info("INIT_SCHEMA enabled in production (safe/idempotent)", "init_schema", cfg.InitSchema)
	}

	var postgresDB db.PostgresDB
	var redisQueue *queue.RedisQueue

	maxRetries := 10
	retryDelay := 5 * time.Second

	logger.Info("connecting to databases (with retries)...")

	for i := 0; i < maxRetries; i++ {
		var pErr, rErr error

		if postgresDB == nil {
			postgresDB, pErr = db.NewPostgresDB(cfg.PostgresConfig)
			if pErr != nil {
				logger.Warn("failed to connect to postgres, retrying...", "error", pErr, "attempt", i+1)
			}
		}

		if redisQueue == nil {
			redisQueue, rErr = queue.NewRedisQueue(cfg.RedisConfig)
			if rErr != nil {
				logger.Warn("failed to connect to redis, retrying...", "error", rErr, "attempt", i+1)
			}
		}

		if pErr == nil && rErr == nil {
			logger.Info("all database connections established")
			break
		}

		if i == maxRetries-1 {
			logger.Fatal(fmt.Errorf("db connection timeout"), "all database connection attempts failed")
		}

		time.Sleep(retryDelay)
	}
	defer postgresDB.Close()

	if cfg.InitSchema {
		logger.Info("running database migrations...")
		if err := db.RunMigrations(db.BuildPostgresConnString(cfg.PostgresConfig)); err != nil {
			logger.Fatal(err, "failed to run postgres migrations")
		}
	} else {
		logger.Info("skipping schema initialization", "init_schema", cfg.InitSchema)
	}

	redisClient := redisQueue.GetClient()

	holidayClient := holiday.New(cfg.IngestionConfig.IAPPAPIURL, cfg.IngestionConfig.IAPPAPIKey)
	weatherClient := weather.New(cfg.IngestionConfig.OpenWeatherMapAPIURL, cfg.IngestionConfig.OpenWeatherMapAPIKey)

	weatherIngester := ingest.NewWeatherIngester(postgresDB, weatherClient, cfg.IngestionConfig)
	holidayIngester := ingest.NewHolidayIngester(postgresDB, holidayClient, cfg.IngestionConfig)
	priceRefresher := ingest.NewRoutePriceRefresher(postgresDB)

	workerManager := worker.NewManager(redisQueue, redisClient, postgresDB, weatherIngester, holidayIngester, priceRefresher, cfg.WorkerConfig, cfg.IngestionConfig)

	if cfg.WorkerEnabled {
		logger.Info("starting ingestion worker pool", "concurrency", cfg.WorkerConfig.Concurrency)
		workerManager.Start()
		defer workerManager.Stop()
	} else {
		logger.Info("ingestion worker pool disabled")
	}

	agg := aggregator.New(postgresDB, holidayClient)
	forecaster := forecast.New(postgresDB, cfg.ForecastConfig)
	orch := analysis.New(postgresDB, agg, forecaster)

	var srv *http.Server
	if cfg.APIEnabled {
		router := gin.New()

		api.RegisterRoutes(router, postgresDB, redisQueue, workerManager, orch, cfg)

		addr := ":" + cfg.Port
		if cfg.HTTPBindAddr != "" {
			addr = cfg.HTTPBindAddr + ":" + cfg.Port
		}

		srv = &http.Server{
			Addr:    addr,
			Handler: router,
		}

		go func() {
			logger.Info("http server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal(err, "failed to start http server")
			}
		}()
	} else {
		logger.Info("api server disabled", "api_enabled", cfg.APIEnabled)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Fatal(err, "server forced to shutdown")
		}
	}

	logger.Info("process exited gracefully")
}
