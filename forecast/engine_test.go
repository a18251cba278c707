package forecast

import (
	"context"
	"testing"
	"time"

	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/internal/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRoute(store *storetest.Store, routeID int, days int) {
	now := time.Now().UTC()
	for i := 0; i < days; i++ {
		store.FlightPrices[routeID] = append(store.FlightPrices[routeID], db.FlightPrice{
			RouteID:       routeID,
			DepartureDate: now.AddDate(0, 0, i-30),
			Price:         2000 + float64(i)*10,
			Cabin:         db.CabinEconomy,
			TripType:      db.TripRoundTrip,
			AirlineName:   "Thai Air",
		})
	}
}

func TestEnginePredictReturnsModelUnavailableWithNoRows(t *testing.T) {
	store := storetest.New()
	eng := New(store, config.ForecastConfig{})

	_, err := eng.Predict(context.Background(), 1, db.TripRoundTrip, time.Now().AddDate(0, 0, 10), nil)
	require.Error(t, err)
}

func TestEnginePredictTrainsAndCaches(t *testing.T) {
	store := storetest.New()
	seedRoute(store, 1, 60)
	eng := New(store, config.ForecastConfig{MinRows: 5, CVFolds: 2, Rounds: 10, Shrinkage: 0.1})

	p1, err := eng.Predict(context.Background(), 1, db.TripRoundTrip, time.Now().AddDate(0, 0, 10), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p1.Price, 0.0)
	assert.NotEmpty(t, p1.Confidence)

	key := cacheKey{routeID: 1, tripType: db.TripRoundTrip}
	entry := eng.entryFor(key)
	assert.NotNil(t, entry.model)
}

func TestEnginePredictConfidenceBands(t *testing.T) {
	store := storetest.New()
	seedRoute(store, 2, 60)
	eng := New(store, config.ForecastConfig{MinRows: 5, CVFolds: 2, Rounds: 10, Shrinkage: 0.1})

	near, err := eng.Predict(context.Background(), 2, db.TripRoundTrip, time.Now().AddDate(0, 0, 5), nil)
	require.NoError(t, err)
	assert.Equal(t, ConfidenceHigh, near.Confidence)

	far, err := eng.Predict(context.Background(), 2, db.TripRoundTrip, time.Now().AddDate(0, 0, 120), nil)
	require.NoError(t, err)
	assert.Equal(t, ConfidenceLow, far.Confidence)
}

func TestEngineGraphFallsBackWhenModelUnavailable(t *testing.T) {
	store := storetest.New()
	eng := New(store, config.ForecastConfig{})

	points := eng.Graph(context.Background(), 3, db.TripRoundTrip, 5, nil, 3000, nil)
	assert.Len(t, points, 5)
	for _, p := range points {
		assert.Greater(t, p.Typical, 0.0)
		assert.False(t, p.IsActual)
	}
}

func TestFallbackPriceIsDeterministic(t *testing.T) {
	d := time.Now().AddDate(0, 0, 10)
	a := fallbackPrice(d, 3000, nil, 1, db.TripRoundTrip)
	b := fallbackPrice(d, 3000, nil, 1, db.TripRoundTrip)
	assert.Equal(t, a, b)
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, clampUnit(-1))
	assert.Equal(t, 1.0, clampUnit(2))
	assert.Equal(t, 0.5, clampUnit(0.5))
}
