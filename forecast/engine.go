// Package forecast implements the gradient-boosted price forecaster (C6):
// lazy per-route-and-trip-type training, single-date and long-range
// predictions, and the mixed actual+predicted price curve.
package forecast

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/gilby125/thai-flight-analytics/calendar"
	"github.com/gilby125/thai-flight-analytics/config"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/metrics"
)

// Confidence is the qualitative band attached to a single-date prediction.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Prediction is the result of a single-date forecast (§4.6 Predict).
type Prediction struct {
	Price      float64
	Confidence Confidence
	MinPrice   float64
	MaxPrice   float64
	RSquared   float64
}

// GraphPoint is one day of the mixed actual+predicted curve.
type GraphPoint struct {
	Date     time.Time
	Low      float64
	Typical  float64
	High     float64
	IsActual bool
}

// cacheKey identifies one trained model slot.
type cacheKey struct {
	routeID  int
	tripType db.TripType
}

// entry holds a trained model plus the in-flight training coalescing state
// for one (route, trip_type) pair (§5 "Shared resources").
type entry struct {
	mu        sync.Mutex
	model     *Model
	training  bool
	trainedAt time.Time
	err       error
}

// Engine is the model cache and training orchestrator for C6. One Engine is
// shared across requests; callers never train directly.
type Engine struct {
	store db.PostgresDB
	cfg   config.ForecastConfig

	mu      sync.Mutex
	entries map[cacheKey]*entry
}

// New builds an Engine backed by store, using cfg for training parameters.
func New(store db.PostgresDB, cfg config.ForecastConfig) *Engine {
	return &Engine{
		store:   store,
		cfg:     cfg,
		entries: make(map[cacheKey]*entry),
	}
}

func (e *Engine) entryFor(key cacheKey) *entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.entries[key]
	if !ok {
		en = &entry{}
		e.entries[key] = en
	}
	return en
}

// ensureTrained returns the cached model for (routeID, tripType), training
// it first if absent. Concurrent callers for the same key coalesce onto a
// single training run (§5 "re-entry is a no-op").
func (e *Engine) ensureTrained(ctx context.Context, routeID int, tripType db.TripType, holidays []time.Time) (*Model, error) {
	key := cacheKey{routeID: routeID, tripType: tripType}
	en := e.entryFor(key)

	en.mu.Lock()
	defer en.mu.Unlock()

	if en.model != nil {
		return en.model, nil
	}
	if en.training {
		return nil, en.err
	}

	en.training = true
	defer func() { en.training = false }()

	model, err := e.train(ctx, routeID, tripType, holidays)
	en.model, en.err, en.trainedAt = model, err, time.Now().UTC()
	return model, err
}

func (e *Engine) train(ctx context.Context, routeID int, tripType db.TripType, holidays []time.Time) (*Model, error) {
	now := time.Now().UTC()
	minDay := e.cfg.MinTrainingDay
	if minDay <= 0 {
		minDay = 180
	}
	maxDay := e.cfg.MaxForecastDay
	if maxDay <= 0 {
		maxDay = 60
	}
	start := now.AddDate(0, 0, -minDay)
	end := now.AddDate(0, 0, maxDay)

	rows, err := e.store.GetFlightPrices(ctx, routeID, db.FlightPriceFilter{
		StartDate: start,
		EndDate:   end,
		TripType:  tripType,
		Cabin:     db.CabinEconomy,
	})
	if err != nil {
		return nil, apperr.Storage("load training rows", err)
	}

	minRows := e.cfg.MinRows
	if minRows <= 0 {
		minRows = 5
	}
	if len(rows) < minRows {
		all, err := e.store.GetFlightPrices(ctx, routeID, db.FlightPriceFilter{
			TripType: tripType,
			Cabin:    db.CabinEconomy,
		})
		if err == nil && len(all) > len(rows) {
			rows = all
		}
	}
	if len(rows) == 0 {
		return nil, apperr.ModelUnavailable(fmt.Sprintf("no flight price rows for route %d", routeID))
	}

	training := rowsToTraining(rows, now, holidays)
	opts := modelOptions{
		Shrinkage: e.cfg.Shrinkage,
		MaxDepth:  e.cfg.MaxDepth,
		Rounds:    e.cfg.Rounds,
		CVFolds:   e.cfg.CVFolds,
	}
	if opts.Shrinkage <= 0 {
		opts.Shrinkage = 0.1
	}
	if opts.CVFolds <= 0 {
		opts.CVFolds = 5
	}

	model, err := crossValidate(training, opts)
	routeLabel := strconv.Itoa(routeID)
	if err != nil {
		metrics.ForecastTrainings.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ForecastTrainings.WithLabelValues("success").Inc()
	metrics.ForecastRMSE.WithLabelValues(routeLabel).Set(model.RMSE)
	return model, nil
}

// Predict forecasts the price for a single date (§4.6 Predict).
func (e *Engine) Predict(ctx context.Context, routeID int, tripType db.TripType, date time.Time, holidays []time.Time) (*Prediction, error) {
	model, err := e.ensureTrained(ctx, routeID, tripType, holidays)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	features := BuildFeatures(date, now, holidays)
	raw := model.predict(features)
	multiplier := HolidayMultiplier(date, holidays)
	price := math.Round(raw) * multiplier
	if price < 0 {
		price = 0
	}

	daysOut := int(math.Floor(date.Sub(now).Hours() / 24))
	var confidence Confidence
	var band float64
	switch {
	case daysOut <= 30:
		confidence, band = ConfidenceHigh, 0.15
	case daysOut <= 60:
		confidence, band = ConfidenceMedium, 0.20
	default:
		confidence, band = ConfidenceLow, 0.25
	}

	rSquared := 0.0
	if model.RMSE >= 0 && price > 0 {
		rSquared = clampUnit(1 - (model.RMSE*model.RMSE)/(price*price+1))
	}

	return &Prediction{
		Price:      price,
		Confidence: confidence,
		MinPrice:   price * (1 - band),
		MaxPrice:   price * (1 + band),
		RSquared:   rSquared,
	}, nil
}

// Graph builds the mixed actual+predicted curve (§4.6 Graph). actualRows
// should cover roughly [today-30, today+30] for the same route/trip_type;
// avgPrice is the historical average used by the deterministic fallback
// when the model is unavailable or fails for a given day.
func (e *Engine) Graph(ctx context.Context, routeID int, tripType db.TripType, days int, actualRows []db.FlightPrice, avgPrice float64, holidays []time.Time) []GraphPoint {
	if days <= 0 {
		days = 350
	}
	now := time.Now().UTC()

	actualByDate := map[string]db.FlightPrice{}
	for _, r := range actualRows {
		actualByDate[r.DepartureDate.Format("2006-01-02")] = r
	}

	var points []GraphPoint
	for key, row := range actualByDate {
		date, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		typical := row.Price
		points = append(points, GraphPoint{
			Date:     date,
			Low:      typical * 0.85,
			Typical:  typical,
			High:     typical * 1.30,
			IsActual: true,
		})
	}

	model, modelErr := e.ensureTrained(ctx, routeID, tripType, holidays)

	for i := 1; i <= days; i++ {
		date := now.AddDate(0, 0, i)
		key := date.Format("2006-01-02")
		if _, exists := actualByDate[key]; exists {
			continue
		}

		var typical float64
		if modelErr == nil && model != nil {
			features := BuildFeatures(date, now, holidays)
			typical = math.Round(model.predict(features)) * HolidayMultiplier(date, holidays)
		}
		if typical <= 0 {
			typical = fallbackPrice(date, avgPrice, holidays, routeID, tripType)
		}

		points = append(points, GraphPoint{
			Date:     date,
			Low:      typical * 0.85,
			Typical:  typical,
			High:     typical * 1.30,
			IsActual: false,
		})
	}

	return points
}

// fallbackPrice implements the §4.6 Graph fallback: historical average
// scaled by holiday multiplier, a weekend bump, and deterministic jitter.
func fallbackPrice(date time.Time, avgPrice float64, holidays []time.Time, routeID int, tripType db.TripType) float64 {
	weekendFactor := 1.0
	if calendar.IsWeekend(date) {
		weekendFactor = 1.05
	}

	seed := fmt.Sprintf("%d:%s:%s", routeID, tripType, date.Format("2006-01-02"))
	jitter := 0.92 + calendar.SeededRand(seed)*0.16

	price := avgPrice * HolidayMultiplier(date, holidays) * weekendFactor * jitter
	if price < 0 {
		return 0
	}
	return price
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
