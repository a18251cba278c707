// Package analysis implements the analysis orchestrator (C5): the single
// public entry point that resolves a route, builds seasons, picks a
// recommendation, and assembles the comparison, chart, and forecast data
// for the response (§4.5).
package analysis

import (
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/pricing"
)

// DurationRange is the user's stated trip-length preference in days.
type DurationRange struct {
	Min int
	Max int
}

// Request is the input to AnalyzeFlightPrices (§4.5).
type Request struct {
	Origin           string
	Destination      string
	TripType         db.TripType
	DurationRange    DurationRange
	SelectedAirlines []string // airline codes
	StartDate        *time.Time
	EndDate          *time.Time
	Passengers       pricing.Passengers
	Cabin            db.Cabin
}

// RecommendedPeriod is the system's chosen travel window.
type RecommendedPeriod struct {
	StartDate  time.Time
	EndDate    time.Time
	ReturnDate time.Time
	Price      float64
	Airline    string
	Season     db.SeasonLabel
	Savings    float64
}

// PriceRange is a season's observed min/max stored price, with the pricing
// rules (passenger mix, one-way halving) applied.
type PriceRange struct {
	Min float64
	Max float64
}

// BestDeal is a season's cheapest fare, formatted for display.
type BestDeal struct {
	Date        time.Time
	Price       float64
	AirlineName string
}

// SeasonEntry is one Low/Normal/High bucket in the response.
type SeasonEntry struct {
	Type        db.SeasonLabel
	Months      []string // localized month names
	PriceRange  PriceRange
	BestDeal    *BestDeal
	Description string
}

// DayComparison is one side of the ±7-day price comparison.
type DayComparison struct {
	Date       time.Time
	Price      float64
	Difference float64
	Percentage float64
}

// PriceComparison reports the anchor price against the days 7 before/after.
type PriceComparison struct {
	BasePrice   *float64
	BaseAirline string
	IfGoBefore  *DayComparison
	IfGoAfter   *DayComparison
}

// ChartDay is one day's entry in the anchor month's price chart.
type ChartDay struct {
	StartDate  time.Time
	ReturnDate *time.Time
	Price      float64
	Season     db.SeasonLabel
}

// PricePrediction is the optional single-date forecast.
type PricePrediction struct {
	PredictedPrice float64
	Confidence     string
	RSquared       float64
	MinPrice       float64
	MaxPrice       float64
}

// PriceTrend summarizes the 30-day forecast trend.
type PriceTrend struct {
	Trend           string // increasing | decreasing | stable
	ChangePercent   float64
	CurrentAvgPrice float64
	FutureAvgPrice  float64
}

// GraphDay is one point of the mixed actual+predicted curve.
type GraphDay struct {
	Date     time.Time
	Low      float64
	Typical  float64
	High     float64
	IsActual bool
}

// Result is the full response of AnalyzeFlightPrices (§6).
type Result struct {
	RecommendedPeriod  RecommendedPeriod
	Seasons            []SeasonEntry
	PriceComparison    PriceComparison
	PriceChartData     []ChartDay
	PricePrediction    *PricePrediction
	PriceTrend         *PriceTrend
	PriceGraphData     []GraphDay
	FlightPrices       []db.FlightPrice
	RouteDistanceMiles float64
	CostPerMileCents   float64
}
