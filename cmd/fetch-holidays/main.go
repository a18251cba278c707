// Command fetch-holidays refreshes the Thai holiday calendar for a
// configurable year range, independent of the scheduled worker run (§6).
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
	"github.com/gilby125/thai-flight-analytics/upstream/holiday"
)

func main() {
	yearsBack := flag.Int("years-back", 0, "years before the current year to refresh (defaults to config)")
	yearsAhead := flag.Int("years-ahead", 0, "years after the current year to refresh (defaults to config)")
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

	back := *yearsBack
	if back <= 0 {
		back = cfg.IngestionConfig.HolidayYearRangeBack
	}
	ahead := *yearsAhead
	if ahead <= 0 {
		ahead = cfg.IngestionConfig.HolidayYearRangeAhead
	}

	client := holiday.New(cfg.IngestionConfig.IAPPAPIURL, cfg.IngestionConfig.IAPPAPIKey)
	ingester := ingest.NewHolidayIngester(store, client, cfg.IngestionConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := ingester.IngestRange(ctx, back, ahead); err != nil {
		logger.Error(err, "holiday ingestion failed")
		os.Exit(1)
	}
	logger.Info("holiday ingestion completed", "years_back", back, "years_ahead", ahead)
}
