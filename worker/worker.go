package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/ingest"
)

// Worker executes one ingestion job at a time, dispatched by Manager.
// It holds no goroutine-local state beyond the store and ingesters it was
// built with; all mutable state lives in Manager's workerState bookkeeping.
type Worker struct {
	store           db.PostgresDB
	weatherIngester *ingest.WeatherIngester
	holidayIngester *ingest.HolidayIngester
	priceRefresher  *ingest.RoutePriceRefresher
}

// WeatherHistoricalPayload is the body of an "ingest:weather_historical" job.
type WeatherHistoricalPayload struct {
	Province  string `json:"province"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

// WeatherForecastPayload is the body of an "ingest:weather_forecast" job.
type WeatherForecastPayload struct {
	Province string `json:"province"`
}

// HolidayPayload is the body of an "ingest:holiday" job.
type HolidayPayload struct {
	YearsBack  int `json:"years_back"`
	YearsAhead int `json:"years_ahead"`
}

// AggregatePayload is the body of an "ingest:aggregate" job.
type AggregatePayload struct {
	TriggeredAt string `json:"triggered_at"`
}

// ProcessWeatherHistorical backfills one province's historical weather over
// the requested window.
func (w *Worker) ProcessWeatherHistorical(ctx context.Context, raw json.RawMessage) error {
	var payload WeatherHistoricalPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode weather_historical payload: %w", err)
	}

	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date %q: %w", payload.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date %q: %w", payload.EndDate, err)
	}

	return w.weatherIngester.IngestHistorical(ctx, payload.Province, start, end)
}

// ProcessWeatherForecast refreshes one province's short-range forecast.
func (w *Worker) ProcessWeatherForecast(ctx context.Context, raw json.RawMessage) error {
	var payload WeatherForecastPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode weather_forecast payload: %w", err)
	}
	return w.weatherIngester.IngestForecast(ctx, payload.Province)
}

// ProcessHoliday refreshes the holiday calendar over the configured year range.
func (w *Worker) ProcessHoliday(ctx context.Context, raw json.RawMessage) error {
	var payload HolidayPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode holiday payload: %w", err)
	}
	return w.holidayIngester.IngestRange(ctx, payload.YearsBack, payload.YearsAhead)
}

// ProcessAggregate recomputes RoutePriceStat for every known route.
func (w *Worker) ProcessAggregate(ctx context.Context, raw json.RawMessage) error {
	const windowMonths = 12
	return w.priceRefresher.RefreshAll(ctx, windowMonths)
}
