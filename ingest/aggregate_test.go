package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/internal/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRouteMonth(store *storetest.Store, routeID int, period string, price float64) {
	d, _ := time.Parse("2006-01", period)
	store.FlightPrices[routeID] = append(store.FlightPrices[routeID], db.FlightPrice{
		RouteID:       routeID,
		DepartureDate: d.AddDate(0, 0, 10),
		Price:         price,
		Cabin:         db.CabinEconomy,
		TripType:      db.TripRoundTrip,
	})
}

func TestRefreshAllRanksPeriodsByAveragePrice(t *testing.T) {
	store := storetest.New()
	store.Routes = []db.Route{{ID: 1, Origin: "BKK", Destination: "HKT"}}

	now := time.Now().UTC()
	cheap := now.AddDate(0, -1, 0).Format("2006-01")
	pricey := now.AddDate(0, 1, 0).Format("2006-01")
	seedRouteMonth(store, 1, cheap, 2000)
	seedRouteMonth(store, 1, pricey, 8000)

	r := NewRoutePriceRefresher(store)
	require.NoError(t, r.RefreshAll(context.Background(), 4))

	cheapStat, err := store.GetRoutePriceStat(context.Background(), 1, cheap)
	require.NoError(t, err)
	require.NotNil(t, cheapStat)

	priceyStat, err := store.GetRoutePriceStat(context.Background(), 1, pricey)
	require.NoError(t, err)
	require.NotNil(t, priceyStat)

	assert.Less(t, cheapStat.PricePercentile, priceyStat.PricePercentile)
}

func TestRefreshAllSkipsRouteWithNoRows(t *testing.T) {
	store := storetest.New()
	store.Routes = []db.Route{{ID: 2, Origin: "BKK", Destination: "CNX"}}

	r := NewRoutePriceRefresher(store)
	require.NoError(t, r.RefreshAll(context.Background(), 4))

	stat, err := store.GetRoutePriceStat(context.Background(), 2, time.Now().UTC().Format("2006-01"))
	require.NoError(t, err)
	assert.Nil(t, stat)
}
