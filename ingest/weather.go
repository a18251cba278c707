package ingest

import (
	"context"
	"time"

	"github.com/gilby125/thai-flight-analytics/aggregator"
	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/upstream/weather"
)

// WeatherIngester runs the weather flow of the ingestion pipeline (§4.1):
// historical backfill from the bulk archive, and short-range forecast
// refresh, both deduplicated against storage and idempotent.
type WeatherIngester struct {
	store  db.PostgresDB
	client *weather.Client
	cfg    config.IngestionConfig
	sleep  func(time.Duration)
}

// NewWeatherIngester builds a WeatherIngester wired to store and client.
func NewWeatherIngester(store db.PostgresDB, client *weather.Client, cfg config.IngestionConfig) *WeatherIngester {
	return &WeatherIngester{store: store, client: client, cfg: cfg, sleep: time.Sleep}
}

// IngestHistorical backfills one province across [start, end] one
// calendar-month chunk at a time, pausing ~200ms between chunks. Failures on
// a single chunk are logged and skipped; the run continues (§4.1).
func (w *WeatherIngester) IngestHistorical(ctx context.Context, province string, start, end time.Time) error {
	lat, lon, ok := CoordinatesForProvince(province)
	if !ok {
		return apperr.Input("no coordinates configured for province %q", province)
	}

	cutover, err := time.Parse("2006-01-02", w.cfg.HistoricalCutoverDate)
	if err != nil {
		return apperr.Input("invalid historical cutover date %q", w.cfg.HistoricalCutoverDate)
	}
	if end.After(cutover) {
		end = cutover
	}

	touchedPeriods := map[string]bool{}
	chunkStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !chunkStart.After(end) {
		days, err := w.client.FetchHistoricalMonth(ctx, lat, lon, chunkStart)
		if err != nil {
			logger.Error(err, "historical weather chunk failed, skipping", "province", province, "month", chunkStart.Format("2006-01"))
			chunkStart = chunkStart.AddDate(0, 1, 0)
			w.pause(w.cfg.ChunkPauseMillis)
			continue
		}

		if err := w.storeDays(ctx, province, days, db.WeatherHistorical); err != nil {
			logger.Error(err, "store historical weather chunk failed", "province", province, "month", chunkStart.Format("2006-01"))
		} else {
			touchedPeriods[chunkStart.Format("2006-01")] = true
		}

		chunkStart = chunkStart.AddDate(0, 1, 0)
		w.pause(w.cfg.ChunkPauseMillis)
	}

	for period := range touchedPeriods {
		w.RecomputeMonthly(ctx, province, period)
	}
	return nil
}

// IngestForecast refreshes the short-range forecast for a single province.
// Only dates strictly after the historical cutover and strictly after today
// are retained (§4.1). Pause ~1s is the caller's responsibility between
// provinces in a batch run.
func (w *WeatherIngester) IngestForecast(ctx context.Context, province string) error {
	lat, lon, ok := CoordinatesForProvince(province)
	if !ok {
		return apperr.Input("no coordinates configured for province %q", province)
	}

	cutover, err := time.Parse("2006-01-02", w.cfg.HistoricalCutoverDate)
	if err != nil {
		return apperr.Input("invalid historical cutover date %q", w.cfg.HistoricalCutoverDate)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)

	days, err := w.client.FetchForecast(ctx, lat, lon)
	if err != nil {
		return apperr.Upstream("forecast fetch failed for "+province, err)
	}

	var kept []weather.Day
	for _, d := range days {
		if d.Date.After(cutover) && d.Date.After(today) {
			kept = append(kept, d)
		}
	}

	if err := w.storeDays(ctx, province, kept, db.WeatherForecast); err != nil {
		return apperr.Storage("store forecast weather failed for "+province, err)
	}

	periods := map[string]bool{}
	for _, d := range kept {
		periods[d.Date.Format("2006-01")] = true
	}
	for period := range periods {
		w.RecomputeMonthly(ctx, province, period)
	}
	return nil
}

// storeDays writes days for province. A forecast day whose (province, date)
// already exists in storage is skipped; historical days are always written,
// and the storage layer's upsert enforces that historical never loses to
// forecast for the same key (§3).
func (w *WeatherIngester) storeDays(ctx context.Context, province string, days []weather.Day, source db.WeatherSource) error {
	if len(days) == 0 {
		return nil
	}

	rows := make([]db.DailyWeatherRow, 0, len(days))
	for _, d := range days {
		exists, err := w.store.DailyWeatherExists(ctx, province, d.Date)
		if err != nil {
			logger.Error(err, "weather existence check failed", "province", province, "date", d.Date.Format("2006-01-02"))
			continue
		}
		if exists && source == db.WeatherForecast {
			continue
		}

		tempAvg := weather.TempAvg(d.TempMax, d.TempMin)
		row := db.DailyWeatherRow{
			Province:        province,
			Date:            d.Date,
			TempMax:         d.TempMax,
			TempMin:         d.TempMin,
			TempAvg:         tempAvg,
			PrecipitationMM: d.PrecipitationMM,
			Source:          source,
		}
		if d.Humidity != nil {
			row.Humidity.Float64 = *d.Humidity
			row.Humidity.Valid = true
		} else {
			row.Humidity.Float64 = weather.EstimateHumidity(tempAvg, d.PrecipitationMM)
			row.Humidity.Valid = true
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil
	}
	return w.store.UpsertDailyWeatherRows(ctx, rows)
}

// RecomputeMonthly aggregates daily weather into the monthly stat for
// province/period and upserts it, shared by the ingestion flow and the CSV
// import CLI (§6).
func (w *WeatherIngester) RecomputeMonthly(ctx context.Context, province, period string) {
	stat, err := w.store.AggregateMonthlyWeather(ctx, province, period)
	if err != nil || stat == nil {
		return
	}
	stat.WeatherScore = aggregator.WeatherScoreFromAggregate(stat.AvgTemp, stat.AvgRain, stat.AvgHumidity.Float64, stat.AvgHumidity.Valid)
	if err := w.store.UpsertMonthlyWeatherStat(ctx, *stat); err != nil {
		logger.Error(err, "upsert monthly weather stat failed", "province", province, "period", period)
	}
}

func (w *WeatherIngester) pause(millis int) {
	if millis <= 0 || w.sleep == nil {
		return
	}
	w.sleep(time.Duration(millis) * time.Millisecond)
}
