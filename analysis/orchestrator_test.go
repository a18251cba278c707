package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/gilby125/thai-flight-analytics/aggregator"
	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/forecast"
	"github.com/gilby125/thai-flight-analytics/internal/storetest"
	"github.com/gilby125/thai-flight-analytics/pricing"
	"github.com/gilby125/thai-flight-analytics/season"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrchestrator(store *storetest.Store) *Orchestrator {
	agg := aggregator.New(store, nil)
	eng := forecast.New(store, config.ForecastConfig{})
	return New(store, agg, eng)
}

func seedBKKHKTRoute(store *storetest.Store, routeID int, days int) {
	route := db.Route{ID: routeID, Origin: "BKK", Destination: "HKT"}
	store.Routes = append(store.Routes, route)
	store.RoutesByKey["BKK->HKT"] = &route
	store.AirlinesByRoute[routeID] = []db.Airline{{ID: 1, Code: "TG", Name: "Thai Airways"}}

	now := time.Now().UTC()
	for i := 0; i < days; i++ {
		store.FlightPrices[routeID] = append(store.FlightPrices[routeID], db.FlightPrice{
			RouteID:       routeID,
			DepartureDate: now.AddDate(0, 0, i),
			Price:         2500 + float64(i%7)*100,
			BasePrice:     2500 + float64(i%7)*100,
			Cabin:         db.CabinEconomy,
			TripType:      db.TripRoundTrip,
			AirlineName:   "Thai Airways",
		})
	}
	store.CheapestFn = func(ctx context.Context, rid int, date time.Time, tripType db.TripType, cabin db.Cabin) (*db.FlightPrice, error) {
		for _, r := range store.FlightPrices[rid] {
			if r.DepartureDate.Year() == date.Year() && r.DepartureDate.YearDay() == date.YearDay() {
				cp := r
				return &cp, nil
			}
		}
		return nil, nil
	}
}

func TestAnalyzeFlightPricesUnresolvedOrigin(t *testing.T) {
	store := storetest.New()
	o := newTestOrchestrator(store)

	_, err := o.AnalyzeFlightPrices(context.Background(), Request{Origin: "Nowhereville", Destination: "Phuket"})
	require.Error(t, err)
	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindInput, kind)
}

func TestAnalyzeFlightPricesUnresolvedDestination(t *testing.T) {
	store := storetest.New()
	o := newTestOrchestrator(store)

	_, err := o.AnalyzeFlightPrices(context.Background(), Request{Origin: "Bangkok", Destination: "Nowhereville"})
	require.Error(t, err)
}

func TestAnalyzeFlightPricesNoKnownRoute(t *testing.T) {
	store := storetest.New()
	o := newTestOrchestrator(store)

	_, err := o.AnalyzeFlightPrices(context.Background(), Request{Origin: "Bangkok", Destination: "Phuket"})
	require.Error(t, err)
}

func TestAnalyzeFlightPricesHappyPath(t *testing.T) {
	store := storetest.New()
	seedBKKHKTRoute(store, 10, 45)
	o := newTestOrchestrator(store)

	result, err := o.AnalyzeFlightPrices(context.Background(), Request{
		Origin:        "Bangkok",
		Destination:   "Phuket",
		Passengers:    pricing.Passengers{Adults: 1},
		DurationRange: DurationRange{Min: 3, Max: 5},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.FlightPrices)
	assert.NotEmpty(t, result.Seasons)
}

func TestExpandWindowShortRangeCentersSixMonths(t *testing.T) {
	start := time.Now().UTC().AddDate(0, 0, 10)
	end := start.AddDate(0, 0, 5)
	windowStart, windowEnd, avg := expandWindow(&start, &end, DurationRange{Min: 3, Max: 7})

	assert.True(t, windowEnd.Sub(windowStart) > 300*24*time.Hour)
	assert.Equal(t, 5.0, avg)
}

func TestExpandWindowLongRangeExtendsPast90Days(t *testing.T) {
	start := time.Now().UTC()
	end := start.AddDate(0, 8, 0)
	windowStart, windowEnd, _ := expandWindow(&start, &end, DurationRange{Min: 5, Max: 5})

	assert.True(t, windowEnd.After(end.AddDate(0, 0, 89)))
	assert.True(t, windowStart.Before(start))
}

func TestMonthsBetweenInclusive(t *testing.T) {
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periods := monthsBetween(start, end)
	assert.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, periods)
}

func TestResolveRecommendedStartFallsBackToUserDate(t *testing.T) {
	userStart := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	got := resolveRecommendedStart(nil, &userStart)
	assert.Equal(t, userStart, got)
}

func TestBuildTrendRequiresThirtyPoints(t *testing.T) {
	assert.Nil(t, buildTrend(nil))
}

func TestHighSeasonFindsLabeledEntry(t *testing.T) {
	seasons := []season.Season{
		{Label: db.SeasonLow},
		{Label: db.SeasonHigh, BestDeal: &season.BestDeal{Price: 9000}},
		{Label: db.SeasonNormal},
	}
	high := highSeason(seasons)
	require.NotNil(t, high)
	assert.Equal(t, 9000.0, high.BestDeal.Price)
}

func TestHighSeasonAbsent(t *testing.T) {
	seasons := []season.Season{{Label: db.SeasonLow}, {Label: db.SeasonNormal}}
	assert.Nil(t, highSeason(seasons))
}

func TestComputeSavingsUsesHighSeasonBestDeal(t *testing.T) {
	store := storetest.New()
	seasons := []season.Season{
		{Label: db.SeasonLow},
		{Label: db.SeasonHigh, BestDeal: &season.BestDeal{Price: 9000}},
	}
	savings := computeSavings(nil, 5000, seasons, pricing.Passengers{Adults: 1}, store, context.Background(), nil, db.TripRoundTrip, db.CabinEconomy)
	assert.Equal(t, 4000.0, savings)
}

func TestComputeSavingsNoHighSeasonIsZero(t *testing.T) {
	store := storetest.New()
	seasons := []season.Season{{Label: db.SeasonLow}}
	savings := computeSavings(nil, 5000, seasons, pricing.Passengers{Adults: 1}, store, context.Background(), nil, db.TripRoundTrip, db.CabinEconomy)
	assert.Equal(t, 0.0, savings)
}

func TestRouteDistanceKnownAirports(t *testing.T) {
	route := &db.Route{Origin: "BKK", Destination: "HKT"}
	miles, costPerMileCents := routeDistance(route, 3000)
	assert.True(t, miles > 300 && miles < 500)
	assert.True(t, costPerMileCents > 0)
}

func TestRouteDistanceNilRoute(t *testing.T) {
	miles, cost := routeDistance(nil, 3000)
	assert.Equal(t, 0.0, miles)
	assert.Equal(t, 0.0, cost)
}
