// Package storetest provides a hand-written in-memory implementation of
// db.PostgresDB for tests, in the same spirit as the teacher's
// test/mocks/postgres_mock.go.
package storetest

import (
	"context"
	"errors"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
)

// ErrNotFound stands in for pgx.ErrNoRows on lookups with no match.
var ErrNotFound = errors.New("storetest: not found")

// Store is a configurable in-memory fake satisfying db.PostgresDB. Each
// field is a function a test can override; unset fields return zero values.
type Store struct {
	Routes          []db.Route
	RoutesByKey     map[string]*db.Route
	Airlines        map[int]db.Airline
	AirlinesByRoute map[int][]db.Airline
	FlightPrices    map[int][]db.FlightPrice
	CheapestFn      func(ctx context.Context, routeID int, date time.Time, tripType db.TripType, cabin db.Cabin) (*db.FlightPrice, error)

	DailyWeather       map[string][]db.DailyWeatherRow
	MonthlyWeatherStat map[string]db.MonthlyWeatherStat
	HolidayStats       map[string]db.HolidayStat
	RoutePriceStats    map[string]db.RoutePriceStat
}

// New builds an empty Store ready for a test to populate.
func New() *Store {
	return &Store{
		RoutesByKey:        map[string]*db.Route{},
		Airlines:           map[int]db.Airline{},
		AirlinesByRoute:    map[int][]db.Airline{},
		FlightPrices:       map[int][]db.FlightPrice{},
		DailyWeather:       map[string][]db.DailyWeatherRow{},
		MonthlyWeatherStat: map[string]db.MonthlyWeatherStat{},
		HolidayStats:       map[string]db.HolidayStat{},
		RoutePriceStats:    map[string]db.RoutePriceStat{},
	}
}

func (s *Store) Close() error                        { return nil }
func (s *Store) Ping(ctx context.Context) error       { return nil }
func (s *Store) InitSchema(ctx context.Context) error { return nil }

func (s *Store) GetOrCreateRoute(ctx context.Context, origin, destination string) (*db.Route, error) {
	return s.GetRoute(ctx, origin, destination)
}

func (s *Store) GetRoute(ctx context.Context, origin, destination string) (*db.Route, error) {
	if r, ok := s.RoutesByKey[origin+"->"+destination]; ok {
		return r, nil
	}
	return nil, ErrNotFound
}

func (s *Store) ListRoutes(ctx context.Context) ([]db.Route, error) {
	return s.Routes, nil
}

func (s *Store) ListAirlinesForRoute(ctx context.Context, routeID int) ([]db.Airline, error) {
	return s.AirlinesByRoute[routeID], nil
}

func (s *Store) GetAirlinesByIDs(ctx context.Context, ids []int) ([]db.Airline, error) {
	var out []db.Airline
	for _, id := range ids {
		if a, ok := s.Airlines[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) GetFlightPrices(ctx context.Context, routeID int, filter db.FlightPriceFilter) ([]db.FlightPrice, error) {
	var out []db.FlightPrice
	for _, r := range s.FlightPrices[routeID] {
		if !filter.StartDate.IsZero() && r.DepartureDate.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && r.DepartureDate.After(filter.EndDate) {
			continue
		}
		if filter.TripType != "" && r.TripType != filter.TripType {
			continue
		}
		if filter.Cabin != "" && r.Cabin != filter.Cabin {
			continue
		}
		if len(filter.AirlineIDs) > 0 {
			match := false
			for _, id := range filter.AirlineIDs {
				if r.AirlineID == id {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Store) GetCheapestFlightPriceOnDate(ctx context.Context, routeID int, date time.Time, tripType db.TripType, cabin db.Cabin) (*db.FlightPrice, error) {
	if s.CheapestFn != nil {
		return s.CheapestFn(ctx, routeID, date, tripType, cabin)
	}
	return nil, nil
}

func (s *Store) GetDailyWeather(ctx context.Context, province string, start, end time.Time) ([]db.DailyWeatherRow, error) {
	return s.DailyWeather[province], nil
}

func (s *Store) DailyWeatherExists(ctx context.Context, province string, date time.Time) (bool, error) {
	for _, r := range s.DailyWeather[province] {
		if r.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) UpsertDailyWeatherRows(ctx context.Context, rows []db.DailyWeatherRow) error {
	for _, r := range rows {
		s.DailyWeather[r.Province] = append(s.DailyWeather[r.Province], r)
	}
	return nil
}

func (s *Store) AggregateMonthlyWeather(ctx context.Context, province, period string) (*db.MonthlyWeatherStat, error) {
	stat, ok := s.MonthlyWeatherStat[province+":"+period]
	if !ok {
		return nil, nil
	}
	return &stat, nil
}

func (s *Store) DistinctWeatherPeriods(ctx context.Context, province string) ([]string, error) {
	var periods []string
	for _, r := range s.DailyWeather[province] {
		periods = append(periods, r.Date.Format("2006-01"))
	}
	return periods, nil
}

func (s *Store) GetMonthlyWeatherStat(ctx context.Context, province, period string) (*db.MonthlyWeatherStat, error) {
	stat, ok := s.MonthlyWeatherStat[province+":"+period]
	if !ok {
		return nil, nil
	}
	return &stat, nil
}

func (s *Store) GetMonthlyWeatherStats(ctx context.Context, province string, periods []string) (map[string]db.MonthlyWeatherStat, error) {
	out := map[string]db.MonthlyWeatherStat{}
	for _, p := range periods {
		if stat, ok := s.MonthlyWeatherStat[province+":"+p]; ok {
			out[p] = stat
		}
	}
	return out, nil
}

func (s *Store) UpsertMonthlyWeatherStat(ctx context.Context, stat db.MonthlyWeatherStat) error {
	s.MonthlyWeatherStat[stat.Province+":"+stat.Period] = stat
	return nil
}

func (s *Store) GetHolidayStat(ctx context.Context, period string) (*db.HolidayStat, error) {
	stat, ok := s.HolidayStats[period]
	if !ok {
		return nil, nil
	}
	return &stat, nil
}

func (s *Store) GetHolidayStats(ctx context.Context, periods []string) (map[string]db.HolidayStat, error) {
	out := map[string]db.HolidayStat{}
	for _, p := range periods {
		if stat, ok := s.HolidayStats[p]; ok {
			out[p] = stat
		}
	}
	return out, nil
}

func (s *Store) UpsertHolidayStat(ctx context.Context, stat db.HolidayStat) error {
	s.HolidayStats[stat.Period] = stat
	return nil
}

func (s *Store) GetRoutePriceStat(ctx context.Context, routeID int, period string) (*db.RoutePriceStat, error) {
	key := itoa(routeID) + ":" + period
	stat, ok := s.RoutePriceStats[key]
	if !ok {
		return nil, nil
	}
	return &stat, nil
}

func (s *Store) GetRoutePriceStats(ctx context.Context, routeID int, periods []string) (map[string]db.RoutePriceStat, error) {
	out := map[string]db.RoutePriceStat{}
	for _, p := range periods {
		key := itoa(routeID) + ":" + p
		if stat, ok := s.RoutePriceStats[key]; ok {
			out[p] = stat
		}
	}
	return out, nil
}

func (s *Store) UpsertRoutePriceStat(ctx context.Context, stat db.RoutePriceStat) error {
	s.RoutePriceStats[itoa(stat.RouteID)+":"+stat.Period] = stat
	return nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
