// Command import-daily-weather-from-csv loads daily weather observations
// from a local RFC-4180 CSV file, bypassing the upstream API entirely (§6).
// Expected columns: province, date (YYYY-MM-DD), temp_max, temp_min,
// precipitation_mm, humidity (blank if unknown), source (historical|forecast).
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/ingest"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/upstream/weather"
)

func main() {
	path := flag.String("file", "", "path to the weather CSV file")
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

	rows, err := parseWeatherCSV(f)
	if err != nil {
		logger.Error(err, "parse csv file failed", "path", *path)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := store.UpsertDailyWeatherRows(ctx, rows); err != nil {
		logger.Error(err, "upsert daily weather rows failed")
		os.Exit(1)
	}

	ingester := ingest.NewWeatherIngester(store, weather.New(cfg.IngestionConfig.OpenWeatherMapAPIURL, cfg.IngestionConfig.OpenWeatherMapAPIKey), cfg.IngestionConfig)
	periods := map[string]bool{}
	for _, r := range rows {
		periods[r.Province+"|"+r.Date.Format("2006-01")] = true
	}
	for key := range periods {
		province, period := splitKey(key)
		ingester.RecomputeMonthly(ctx, province, period)
	}

	logger.Info("weather csv import completed", "rows", len(rows), "periods", len(periods))
}

func splitKey(key string) (province, period string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '|' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

func parseWeatherCSV(r io.Reader) ([]db.DailyWeatherRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 7

	var rows []db.DailyWeatherRow
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

		date, err := time.Parse("2006-01-02", record[1])
		if err != nil {
			return nil, err
		}
		tempMax, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, err
		}
		tempMin, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, err
		}
		precip, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, err
		}

		row := db.DailyWeatherRow{
			Province:        record[0],
			Date:            date,
			TempMax:         tempMax,
			TempMin:         tempMin,
			TempAvg:         weather.TempAvg(tempMax, tempMin),
			PrecipitationMM: precip,
			Source:          db.WeatherSource(record[6]),
		}
		if record[5] != "" {
			humidity, err := strconv.ParseFloat(record[5], 64)
			if err != nil {
				return nil, err
			}
			row.Humidity = sql.NullFloat64{Float64: humidity, Valid: true}
		} else {
			row.Humidity = sql.NullFloat64{Float64: weather.EstimateHumidity(row.TempAvg, precip), Valid: true}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
