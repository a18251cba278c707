// Package aggregator implements the score aggregator (C3): for a set of
// calendar periods touched by a query, it materializes three 0-100 scores:
// price percentile, holiday boost, weather factor, preferring precomputed
// statistics, falling back to on-the-fly aggregation, and finally fabricating
// a deterministic proxy when no signal exists at all (§4.3).
package aggregator

import (
	"context"
	"math"
	"sort"

	"github.com/gilby125/thai-flight-analytics/calendar"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/upstream/holiday"
)

// HolidayFetcher is the subset of holiday.Client the aggregator depends on,
// so tests can substitute a fake.
type HolidayFetcher interface {
	FetchYear(ctx context.Context, year int) ([]holiday.MappedEntry, error)
}

// Aggregator computes period scores for a route/destination-province pair.
type Aggregator struct {
	store   db.PostgresDB
	holiday HolidayFetcher
}

// New builds an Aggregator. holidayClient may be nil, in which case a
// missing HolidayStat always falls through to fabrication.
func New(store db.PostgresDB, holidayClient HolidayFetcher) *Aggregator {
	return &Aggregator{store: store, holiday: holidayClient}
}

// Scores holds the three period-indexed score maps produced by Compute.
type Scores struct {
	PricePercentile map[string]float64
	Holiday         map[string]float64
	Weather         map[string]float64
}

// Compute derives scores for periods, given the flight rows for each period
// (already loaded by the caller) and the province backing destinationCode's
// weather signal (empty if unmapped).
func (a *Aggregator) Compute(ctx context.Context, routeID int, province string, periods []string, rowsByPeriod map[string][]db.FlightPrice) Scores {
	avgPriceByPeriod := make(map[string]float64, len(periods))
	for _, period := range periods {
		rows := rowsByPeriod[period]
		if len(rows) == 0 {
			continue
		}
		sum := 0.0
		for _, r := range rows {
			sum += r.Price
		}
		avgPriceByPeriod[period] = sum / float64(len(rows))
	}

	return Scores{
		PricePercentile: a.pricePercentiles(ctx, routeID, periods, avgPriceByPeriod),
		Holiday:         a.holidayScores(ctx, periods, avgPriceByPeriod),
		Weather:         a.weatherScores(ctx, province, routeID, periods, avgPriceByPeriod),
	}
}

// pricePercentiles prefers RoutePriceStat; any period missing a stat is
// computed from the rank of its avg(price) among periods present in the
// query window (§4.3, and the reference-set caveat in §9).
func (a *Aggregator) pricePercentiles(ctx context.Context, routeID int, periods []string, avgPrice map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(periods))
	stats, err := a.store.GetRoutePriceStats(ctx, routeID, periods)
	if err != nil {
		logger.Error(err, "load route price stats failed, falling back to on-the-fly ranking", "route_id", routeID)
		stats = map[string]db.RoutePriceStat{}
	}

	var unresolved []string
	for _, p := range periods {
		if stat, ok := stats[p]; ok {
			out[p] = stat.PricePercentile
			continue
		}
		unresolved = append(unresolved, p)
	}
	if len(unresolved) == 0 {
		return out
	}

	type ranked struct {
		period string
		avg    float64
	}
	var values []ranked
	for _, p := range unresolved {
		if avg, ok := avgPrice[p]; ok {
			values = append(values, ranked{period: p, avg: avg})
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i].avg < values[j].avg })

	n := len(values)
	for i, v := range values {
		countLE := i + 1
		out[v.period] = 100 * float64(countLE) / float64(n)
	}
	return out
}

// holidayScores prefers HolidayStat.holiday_score, falls back to fetching
// and upserting from the upstream holiday API, then fabricates a
// deterministic proxy seeded by the period alone (national, route-independent).
func (a *Aggregator) holidayScores(ctx context.Context, periods []string, avgPrice map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(periods))
	stats, err := a.store.GetHolidayStats(ctx, periods)
	if err != nil {
		logger.Error(err, "load holiday stats failed, falling back")
		stats = map[string]db.HolidayStat{}
	}

	var unresolved []string
	for _, p := range periods {
		if stat, ok := stats[p]; ok {
			out[p] = stat.HolidayScore
			continue
		}
		unresolved = append(unresolved, p)
	}

	for _, p := range a.fetchAndUpsertHolidays(ctx, unresolved) {
		out[p.period] = p.score
	}

	for _, p := range unresolved {
		if _, ok := out[p]; ok {
			continue
		}
		out[p] = fabricateHolidayScore(p, avgPrice[p])
	}
	return out
}

type periodScore struct {
	period string
	score  float64
}

// fetchAndUpsertHolidays pulls the upstream calendar for the years spanned
// by the unresolved periods and upserts a freshly computed HolidayStat for
// each. Returns the periods it managed to resolve; anything upstream could
// not cover is left for fabrication.
func (a *Aggregator) fetchAndUpsertHolidays(ctx context.Context, periods []string) []periodScore {
	if a.holiday == nil || len(periods) == 0 {
		return nil
	}

	years := map[int]bool{}
	for _, p := range periods {
		if y := calendar.YearOf(p); y > 0 {
			years[y] = true
		}
	}

	byPeriod := map[string][]holiday.MappedEntry{}
	for year := range years {
		entries, err := a.holiday.FetchYear(ctx, year)
		if err != nil {
			logger.Error(err, "holiday upstream fetch failed", "year", year)
			continue
		}
		for _, e := range entries {
			period := e.Date.Format("2006-01")
			byPeriod[period] = append(byPeriod[period], e)
		}
	}

	var resolved []periodScore
	for _, p := range periods {
		entries, ok := byPeriod[p]
		if !ok {
			continue
		}
		stat := buildHolidayStat(p, entries)
		if err := a.store.UpsertHolidayStat(ctx, stat); err != nil {
			logger.Error(err, "upsert holiday stat failed", "period", p)
		}
		resolved = append(resolved, periodScore{period: p, score: stat.HolidayScore})
	}
	return resolved
}

func buildHolidayStat(period string, entries []holiday.MappedEntry) db.HolidayStat {
	detail := make([]db.HolidayEntry, 0, len(entries))
	longWeekends := 0
	for _, e := range entries {
		if calendar.IsLongWeekend(e.Date) {
			longWeekends++
		}
		detail = append(detail, db.HolidayEntry{
			Date:     e.Date,
			Name:     e.Name,
			Category: string(e.Category),
		})
	}
	return db.HolidayStat{
		Period:            period,
		HolidaysCount:     len(entries),
		LongWeekendsCount: longWeekends,
		HolidayScore:      HolidayScoreFromEntries(detail, longWeekends),
		HolidaysDetail:    detail,
	}
}

// HolidayScoreFromEntries implements holiday_score(holidays) from §4.3.
func HolidayScoreFromEntries(entries []db.HolidayEntry, longWeekends int) float64 {
	score := 50.0
	peakMonth := false
	for _, e := range entries {
		score += calendar.HolidayCategoryPoints(calendar.ClassifyHoliday(e.Name))
		if calendar.IsPeakMonth(int(e.Date.Month())) {
			peakMonth = true
		}
	}
	score += 5 * float64(longWeekends)
	if peakMonth {
		score += 20
	}
	return clamp(score, 0, 100)
}

// fabricateHolidayScore implements the §4.3 fallback: normalize avg price to
// [0,1] (a neutral 0.5 if no price is available), map to [35,95], add seeded
// jitter of amplitude 20, seeded by the period alone.
func fabricateHolidayScore(period string, avgPrice float64) float64 {
	normalized := 0.5
	if avgPrice > 0 {
		normalized = math.Mod(avgPrice, 10000) / 10000
	}
	base := 35 + normalized*60
	jitter := (calendar.SeededRand(period) - 0.5) * 20
	return clamp(base+jitter, 0, 100)
}

// weatherScores prefers MonthlyWeatherStat.weather_score, falls back to
// recomputing from stored daily rows, then fabricates a route-scoped proxy.
// An empty province (no destination mapping) scores every period neutral (§4.3).
func (a *Aggregator) weatherScores(ctx context.Context, province string, routeID int, periods []string, avgPrice map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(periods))
	if province == "" {
		for _, p := range periods {
			out[p] = 50
		}
		return out
	}

	stats, err := a.store.GetMonthlyWeatherStats(ctx, province, periods)
	if err != nil {
		logger.Error(err, "load monthly weather stats failed, falling back", "province", province)
		stats = map[string]db.MonthlyWeatherStat{}
	}

	var unresolved []string
	for _, p := range periods {
		if stat, ok := stats[p]; ok {
			out[p] = stat.WeatherScore
			continue
		}
		unresolved = append(unresolved, p)
	}

	for _, p := range unresolved {
		stat, err := a.store.AggregateMonthlyWeather(ctx, province, p)
		if err != nil || stat == nil {
			continue
		}
		stat.WeatherScore = WeatherScoreFromAggregate(stat.AvgTemp, stat.AvgRain, stat.AvgHumidity.Float64, stat.AvgHumidity.Valid)
		if err := a.store.UpsertMonthlyWeatherStat(ctx, *stat); err != nil {
			logger.Error(err, "upsert monthly weather stat failed", "province", province, "period", p)
		}
		out[p] = stat.WeatherScore
	}

	for _, p := range unresolved {
		if _, ok := out[p]; ok {
			continue
		}
		out[p] = fabricateWeatherScore(p, routeID, avgPrice[p])
	}
	return out
}

// fabricateWeatherScore maps avg price to [30,90], seeded by period plus
// route identifier so distinct routes produce distinct mock curves.
func fabricateWeatherScore(period string, routeID int, avgPrice float64) float64 {
	normalized := 0.5
	if avgPrice > 0 {
		normalized = math.Mod(avgPrice, 10000) / 10000
	}
	base := 30 + normalized*60
	seed := period + ":route:" + calendar.FormatInt(routeID)
	jitter := (calendar.SeededRand(seed) - 0.5) * 20
	return clamp(base+jitter, 0, 100)
}

// WeatherScoreFromAggregate implements weather_score(temp, rain, humidity)
// from §4.3, used when recomputing a MonthlyWeatherStat from daily rows.
func WeatherScoreFromAggregate(avgTemp, avgRain float64, avgHumidity float64, humidityKnown bool) float64 {
	score := 50.0
	switch {
	case avgTemp >= 20 && avgTemp <= 28:
		score += 20
	case avgTemp < 20 || avgTemp > 32:
		score -= 20
	}
	switch {
	case avgRain < 50:
		score += 15
	case avgRain > 200:
		score -= 15
	}
	if humidityKnown {
		switch {
		case avgHumidity >= 50 && avgHumidity <= 70:
			score += 15
		case avgHumidity > 80:
			score -= 15
		}
	}
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
