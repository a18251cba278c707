package ingest

import (
	"context"
	"time"

	"github.com/gilby125/thai-flight-analytics/aggregator"
	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/gilby125/thai-flight-analytics/calendar"
	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/upstream/holiday"
)

// HolidayIngester runs the holiday flow of the ingestion pipeline (§4.1):
// fetch per configured year, group into monthly HolidayStat rows, upsert.
type HolidayIngester struct {
	store  db.PostgresDB
	client *holiday.Client
	cfg    config.IngestionConfig
	sleep  func(time.Duration)
}

// NewHolidayIngester builds a HolidayIngester wired to store and client.
func NewHolidayIngester(store db.PostgresDB, client *holiday.Client, cfg config.IngestionConfig) *HolidayIngester {
	return &HolidayIngester{store: store, client: client, cfg: cfg, sleep: time.Sleep}
}

// IngestRange refreshes the holiday calendar for every year from
// (currentYear - yearsBack) through (currentYear + yearsAhead), rate-limited
// to at least cfg.HolidayYearPauseMillis between year calls. Per-year
// failures are isolated and logged; the run continues (§4.1).
func (h *HolidayIngester) IngestRange(ctx context.Context, yearsBack, yearsAhead int) error {
	now := time.Now().UTC()
	byMonth := map[string][]holiday.MappedEntry{}

	for year := now.Year() - yearsBack; year <= now.Year()+yearsAhead; year++ {
		entries, err := h.fetchYear(ctx, year)
		if err != nil {
			logger.Error(err, "holiday year fetch failed, skipping", "year", year)
			h.pause()
			continue
		}
		for _, e := range entries {
			period := e.Date.Format("2006-01")
			byMonth[period] = append(byMonth[period], e)
		}
		h.pause()
	}

	if len(byMonth) == 0 {
		return apperr.Upstream("no holiday data resolved for the configured year range", nil)
	}

	for period, entries := range byMonth {
		detail := make([]db.HolidayEntry, 0, len(entries))
		for _, e := range entries {
			detail = append(detail, db.HolidayEntry{Date: e.Date, Name: e.Name, Category: string(e.Category)})
		}
		stat := BuildHolidayStat(period, detail)
		if err := h.store.UpsertHolidayStat(ctx, stat); err != nil {
			logger.Error(err, "upsert holiday stat failed", "period", period)
		}
	}
	return nil
}

// fetchYear calls the upstream holiday API for a single calendar year. The
// date-range query (FetchRange over Jan 1 - Dec 31) is tried first; on
// failure this falls back to the year-parameterized FetchYear query (§4.1).
func (h *HolidayIngester) fetchYear(ctx context.Context, year int) ([]holiday.MappedEntry, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	entries, err := h.client.FetchRange(ctx, start, end)
	if err == nil {
		return entries, nil
	}

	logger.Error(err, "holiday range fetch failed, falling back to year query", "year", year)
	return h.client.FetchYear(ctx, year)
}

// BuildHolidayStat folds one month's holiday entries into a HolidayStat,
// shared by the ingestion flow and the CSV import CLI (§6).
func BuildHolidayStat(period string, entries []db.HolidayEntry) db.HolidayStat {
	longWeekends := 0
	for _, e := range entries {
		if calendar.IsLongWeekend(e.Date) {
			longWeekends++
		}
	}
	return db.HolidayStat{
		Period:            period,
		HolidaysCount:     len(entries),
		LongWeekendsCount: longWeekends,
		HolidayScore:      aggregator.HolidayScoreFromEntries(entries, longWeekends),
		HolidaysDetail:    entries,
	}
}

func (h *HolidayIngester) pause() {
	if h.sleep == nil {
		return
	}
	millis := h.cfg.HolidayYearPauseMillis
	if millis <= 0 {
		millis = 200
	}
	h.sleep(time.Duration(millis) * time.Millisecond)
}
