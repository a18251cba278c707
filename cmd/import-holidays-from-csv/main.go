// Command import-holidays-from-csv loads a Thai holiday calendar from a
// local RFC-4180 CSV file, bypassing the upstream API entirely (§6). Expected
// columns: date (YYYY-MM-DD), name, category (national|regional).
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/ingest"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
)

func main() {
	path := flag.String("file", "", "path to the holidays CSV file")
	flag.Parse()
	if *path == "" {
		os.Stderr.WriteString("-file is required\n")
		os.Exit(1)
	}

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

	f, err := os.Open(*path)
	if err != nil {
		logger.Error(err, "open csv file failed", "path", *path)
		os.Exit(1)
	}
	defer f.Close()

	entries, err := parseHolidayCSV(f)
	if err != nil {
		logger.Error(err, "parse csv file failed", "path", *path)
		os.Exit(1)
	}

	byMonth := map[string][]db.HolidayEntry{}
	for _, e := range entries {
		period := e.Date.Format("2006-01")
		byMonth[period] = append(byMonth[period], e)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	failures := 0
	for period, monthEntries := range byMonth {
		stat := ingest.BuildHolidayStat(period, monthEntries)
		if err := store.UpsertHolidayStat(ctx, stat); err != nil {
			logger.Error(err, "upsert holiday stat failed", "period", period)
			failures++
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
	logger.Info("holiday csv import completed", "rows", len(entries), "months", len(byMonth))
}

func parseHolidayCSV(r io.Reader) ([]db.HolidayEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	var entries []db.HolidayEntry
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, err
		}
		entries = append(entries, db.HolidayEntry{
			Date:     date,
			Name:     record[1],
			Category: record[2],
		})
	}
	return entries, nil
}
