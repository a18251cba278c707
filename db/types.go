package db

import (
	"context"
	"database/sql"
	"time"
)

// RowScanner defines the interface for scanning a single row result.
// This allows mocking database row scanning behavior.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// TripType is the stored trip type of a FlightPrice row.
type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// Cabin is the stored cabin class of a FlightPrice row.
type Cabin string

const (
	CabinEconomy  Cabin = "economy"
	CabinBusiness Cabin = "business"
	CabinFirst    Cabin = "first"
)

// SeasonLabel is the tercile classification assigned to a calendar month on a route.
type SeasonLabel string

const (
	SeasonLow    SeasonLabel = "low"
	SeasonNormal SeasonLabel = "normal"
	SeasonHigh   SeasonLabel = "high"
)

// WeatherSource distinguishes historical (authoritative) from forecast daily weather rows.
type WeatherSource string

const (
	WeatherHistorical WeatherSource = "historical"
	WeatherForecast   WeatherSource = "forecast"
)

// Route is a (origin, destination) airport-code pair. Created lazily by the
// first query that mentions it; uniquely keyed.
type Route struct {
	ID          int
	Origin      string
	Destination string
	CreatedAt   time.Time
}

// Airline is a stable carrier identity.
type Airline struct {
	ID               int
	Code             string
	Name             string
	DisplayNameLocal string
}

// FlightPrice is a single stored fare row. Invariant: Price already
// incorporates seasonal + holiday + variation multipliers; downstream
// components must never re-apply them (§3).
type FlightPrice struct {
	ID              int
	RouteID         int
	AirlineID       int
	AirlineCode     string
	AirlineName     string
	DepartureDate   time.Time
	ReturnDate      sql.NullTime
	TripType        TripType
	Cabin           Cabin
	Price           float64
	BasePrice       float64
	SeasonLabel     SeasonLabel
	FlightNumber    string
	DepartureTime   time.Time
	ArrivalTime     time.Time
	DurationMinutes int
	Airplane        string
	CarbonGrams     int
	Legroom         string
	OftenDelayed    bool
}

// DailyWeatherRow is one day's weather observation or forecast for a province.
// Unique on (Province, Date). Historical source owns the past through the
// cutover date; forecast owns dates strictly after it and is displaced by
// historical data when both exist (§3).
type DailyWeatherRow struct {
	Province        string
	Date            time.Time
	TempMax         float64
	TempMin         float64
	TempAvg         float64
	PrecipitationMM float64
	Humidity        sql.NullFloat64
	Source          WeatherSource
}

// MonthlyWeatherStat is the monthly aggregate of DailyWeatherRow for a province.
type MonthlyWeatherStat struct {
	Province     string
	Period       string // YYYY-MM
	AvgTemp      float64
	AvgRain      float64
	AvgHumidity  sql.NullFloat64
	WeatherScore float64 // [0,100]
	DaysCount    int
}

// HolidayEntry is one canonical Thai public-holiday calendar entry.
type HolidayEntry struct {
	Date     time.Time `json:"date"`
	Name     string    `json:"name"`
	Category string    `json:"category"` // national | regional
}

// HolidayStat is the monthly holiday summary driving the holiday score (§4.3).
type HolidayStat struct {
	Period            string // YYYY-MM
	HolidaysCount     int
	LongWeekendsCount int
	HolidayScore      float64 // [0,100]
	HolidaysDetail    []HolidayEntry
}

// RoutePriceStat is a precomputed monthly price percentile for a route (§4.3).
type RoutePriceStat struct {
	RouteID         int
	Period          string // YYYY-MM
	PricePercentile float64 // [0,100]
}

// FlightPriceFilter narrows GetFlightPrices to one route's rows. Multi-airport
// cities (Bangkok → {BKK, DMK}) resolve to more than one route, so callers
// query once per route and merge (§4.5 step 1).
type FlightPriceFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	TripType   TripType
	Cabin      Cabin
	AirlineIDs []int // empty means unfiltered
}

// Tx defines the interface for database transactions used by batched
// ingestion writes.
type Tx interface {
	Commit() error
	Rollback() error
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Rows defines the interface for query results so callers can be mocked in tests.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Close() error
	Err() error
}

var _ Rows = (*sql.Rows)(nil)
