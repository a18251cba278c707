package ingest

import (
	"context"
	"sort"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
)

// RoutePriceRefresher recomputes RoutePriceStat for every known route on a
// fixed cadence, independent of any single analysis request's period set.
type RoutePriceRefresher struct {
	store db.PostgresDB
}

// NewRoutePriceRefresher builds a refresher wired to store.
func NewRoutePriceRefresher(store db.PostgresDB) *RoutePriceRefresher {
	return &RoutePriceRefresher{store: store}
}

// RefreshAll recomputes RoutePriceStat for every known route across the
// trailing window months, ranking each route's own monthly averages against
// each other the same way the on-the-fly aggregator does (§4.3), so that
// later analysis requests hit precomputed stats instead of falling back.
func (r *RoutePriceRefresher) RefreshAll(ctx context.Context, windowMonths int) error {
	routes, err := r.store.ListRoutes(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var periods []string
	cursor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -windowMonths/2, 0)
	for i := 0; i < windowMonths; i++ {
		periods = append(periods, cursor.Format("2006-01"))
		cursor = cursor.AddDate(0, 1, 0)
	}

	for _, route := range routes {
		if err := r.refreshRoute(ctx, route.ID, periods); err != nil {
			logger.Error(err, "refresh route price stats failed", "route_id", route.ID)
		}
	}
	return nil
}

func (r *RoutePriceRefresher) refreshRoute(ctx context.Context, routeID int, periods []string) error {
	avgByPeriod := map[string]float64{}
	for _, period := range periods {
		start, _ := time.Parse("2006-01", period)
		end := start.AddDate(0, 1, -1)
		rows, err := r.store.GetFlightPrices(ctx, routeID, db.FlightPriceFilter{
			StartDate: start,
			EndDate:   end,
			Cabin:     db.CabinEconomy,
			TripType:  db.TripRoundTrip,
		})
		if err != nil || len(rows) == 0 {
			continue
		}
		sum := 0.0
		for _, row := range rows {
			sum += row.Price
		}
		avgByPeriod[period] = sum / float64(len(rows))
	}

	if len(avgByPeriod) == 0 {
		return nil
	}

	type ranked struct {
		period string
		avg    float64
	}
	var values []ranked
	for period, avg := range avgByPeriod {
		values = append(values, ranked{period, avg})
	}
	sort.Slice(values, func(i, j int) bool { return values[i].avg < values[j].avg })

	n := len(values)
	for i, v := range values {
		percentile := 100 * float64(i+1) / float64(n)
		if err := r.store.UpsertRoutePriceStat(ctx, db.RoutePriceStat{
			RouteID:         routeID,
			Period:          v.period,
			PricePercentile: percentile,
		}); err != nil {
			return err
		}
	}
	return nil
}
