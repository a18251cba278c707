// Command fetch-daily-weather refreshes historical or forecast daily
// weather for the configured provinces, independent of the scheduled
// worker run (§6).
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/ingest"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/upstream/weather"
)

func main() {
	mode := flag.String("mode", "forecast", "historical or forecast")
	startStr := flag.String("start", "", "historical range start, YYYY-MM-DD (historical mode only)")
	endStr := flag.String("end", "", "historical range end, YYYY-MM-DD (historical mode only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.LoggingConfig.Level, Format: cfg.LoggingConfig.Format})

	store, err := db.NewPostgresDB(cfg.PostgresConfig)
	if err != nil {
		logger.Error(err, "connect to postgres failed")
		os.Exit(1)
	}
	defer store.Close()

	client := weather.New(cfg.IngestionConfig.OpenWeatherMapAPIURL, cfg.IngestionConfig.OpenWeatherMapAPIKey)
	ingester := ingest.NewWeatherIngester(store, client, cfg.IngestionConfig)

	provinceDelay := time.Duration(cfg.IngestionConfig.ProvincePauseMillis) * time.Millisecond
	if provinceDelay <= 0 {
		provinceDelay = time.Second
	}

	failures := 0
	ctx := context.Background()

	switch *mode {
	case "historical":
		start, err := time.Parse("2006-01-02", *startStr)
		if err != nil {
			os.Stderr.WriteString("invalid -start: " + err.Error() + "\n")
			os.Exit(1)
		}
		end, err := time.Parse("2006-01-02", *endStr)
		if err != nil {
			os.Stderr.WriteString("invalid -end: " + err.Error() + "\n")
			os.Exit(1)
		}
		for _, province := range cfg.IngestionConfig.Provinces {
			if err := ingester.IngestHistorical(ctx, province, start, end); err != nil {
				logger.Error(err, "historical weather ingestion failed", "province", province)
				failures++
			}
			time.Sleep(provinceDelay)
		}
	case "forecast":
		for _, province := range cfg.IngestionConfig.Provinces {
			if err := ingester.IngestForecast(ctx, province); err != nil {
				logger.Error(err, "forecast weather ingestion failed", "province", province)
				failures++
			}
			time.Sleep(provinceDelay)
		}
	default:
		os.Stderr.WriteString("unknown -mode: " + *mode + " (want historical or forecast)\n")
		os.Exit(1)
	}

	if failures > 0 {
		logger.Error(nil, "weather ingestion completed with failures", "failed_provinces", failures)
		os.Exit(1)
	}
	logger.Info("weather ingestion completed", "mode", *mode, "provinces", len(cfg.IngestionConfig.Provinces))
}
