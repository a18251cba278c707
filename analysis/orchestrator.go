package analysis

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/gilby125/thai-flight-analytics/aggregator"
	"github.com/gilby125/thai-flight-analytics/apperr"
	"github.com/gilby125/thai-flight-analytics/calendar"
	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/gilby125/thai-flight-analytics/forecast"
	"github.com/gilby125/thai-flight-analytics/iata"
	"github.com/gilby125/thai-flight-analytics/metrics"
	"github.com/gilby125/thai-flight-analytics/pkg/geo"
	"github.com/gilby125/thai-flight-analytics/pkg/logger"
	"github.com/gilby125/thai-flight-analytics/pricing"
	"github.com/gilby125/thai-flight-analytics/season"
)

// Orchestrator is the analysis orchestrator (C5). It owns no state beyond
// its dependencies; every call is independent.
type Orchestrator struct {
	store      db.PostgresDB
	aggregator *aggregator.Aggregator
	forecaster *forecast.Engine
}

// New builds an Orchestrator wired to store, aggregator, and forecaster.
func New(store db.PostgresDB, agg *aggregator.Aggregator, forecaster *forecast.Engine) *Orchestrator {
	return &Orchestrator{store: store, aggregator: agg, forecaster: forecaster}
}

// routeLeg is one resolved (origin code, destination code) route whose rows
// contribute to the query. Multi-airport cities produce more than one leg.
type routeLeg struct {
	route *db.Route
}

// AnalyzeFlightPrices runs the full §4.5 algorithm.
func (o *Orchestrator) AnalyzeFlightPrices(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	result, err := o.analyzeFlightPrices(ctx, req)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
	} else {
		metrics.AnalysisRequests.WithLabelValues("success").Inc()
	}
	return result, err
}

func (o *Orchestrator) analyzeFlightPrices(ctx context.Context, req Request) (*Result, error) {
	originCodes := iata.ResolveLocation(req.Origin)
	if len(originCodes) == 0 {
		return nil, apperr.Input("unresolved origin %q", req.Origin)
	}
	destCodes := iata.ResolveLocation(req.Destination)
	if len(destCodes) == 0 {
		return nil, apperr.Input("unresolved destination %q", req.Destination)
	}

	legs, err := o.resolveLegs(ctx, originCodes, destCodes)
	if err != nil {
		return nil, err
	}
	if len(legs) == 0 {
		return nil, apperr.Input("no known route between %q and %q", req.Origin, req.Destination)
	}

	airlineIDs, err := o.resolveAirlines(ctx, legs, req.SelectedAirlines)
	if err != nil {
		return nil, err
	}

	cabin := req.Cabin
	if cabin == "" {
		cabin = db.CabinEconomy
	}
	tripType := req.TripType
	if tripType == "" {
		tripType = db.TripRoundTrip
	}

	windowStart, windowEnd, avgDuration := expandWindow(req.StartDate, req.EndDate, req.DurationRange)

	rows, err := o.loadRows(ctx, legs, windowStart, windowEnd, tripType, cabin, airlineIDs)
	if err != nil {
		return nil, apperr.Storage("load flight rows", err)
	}

	periods := monthsBetween(windowStart, windowEnd)
	rowsByPeriod := groupByPeriod(rows)

	province, _ := iata.ProvinceForAirport(destCodes[0])
	scores := o.aggregator.Compute(ctx, legs[0].route.ID, province, periods, rowsByPeriod)
	seasons := season.Classify(periods, rowsByPeriod, scores.PricePercentile, scores.Holiday, scores.Weather)

	best := season.CheapestSeason(seasons)
	recommendedStart := resolveRecommendedStart(best, req.StartDate)
	recommendedEnd := recommendedStart.AddDate(0, 0, int(math.Round(avgDuration)))

	labelPeriod := recommendedStart.Format("2006-01")
	if req.StartDate != nil {
		labelPeriod = req.StartDate.Format("2006-01")
	}
	recommendedLabel := season.LabelForMonth(seasons, labelPeriod)

	recommendedAirline, recommendedPrice := cheapestOnDate(o.store, ctx, legs, recommendedStart, tripType, cabin)

	anchor := recommendedStart
	if req.StartDate != nil {
		anchor = *req.StartDate
	}

	comparison := o.buildComparison(ctx, legs, anchor, tripType, cabin, req.Passengers)
	chart := o.buildChart(ctx, legs, anchor, tripType, cabin, seasons)

	savings := computeSavings(req.StartDate, recommendedPrice, seasons, req.Passengers, o.store, ctx, legs, tripType, cabin)

	result := &Result{
		RecommendedPeriod: RecommendedPeriod{
			StartDate:  recommendedStart,
			EndDate:    recommendedEnd,
			ReturnDate: recommendedEnd,
			Price:      pricing.Display(recommendedPrice, req.Passengers, tripType == db.TripOneWay),
			Airline:    recommendedAirline,
			Season:     recommendedLabel,
			Savings:    savings,
		},
		Seasons:         buildSeasonEntries(seasons, req.Passengers, tripType == db.TripOneWay),
		PriceComparison: comparison,
		PriceChartData:  chart,
		FlightPrices:    applyPricingToRows(rows, req.Passengers, tripType == db.TripOneWay),
	}

	result.RouteDistanceMiles, result.CostPerMileCents = routeDistance(legs[0].route, recommendedPrice)

	o.attachForecast(ctx, legs[0].route.ID, tripType, anchor, periods, rowsByPeriod, req.Passengers, tripType == db.TripOneWay, result)

	return result, nil
}

func (o *Orchestrator) resolveLegs(ctx context.Context, originCodes, destCodes []string) ([]routeLeg, error) {
	var legs []routeLeg
	for _, oc := range originCodes {
		for _, dc := range destCodes {
			route, err := o.store.GetRoute(ctx, oc, dc)
			if err != nil {
				continue
			}
			legs = append(legs, routeLeg{route: route})
		}
	}
	return legs, nil
}

func (o *Orchestrator) resolveAirlines(ctx context.Context, legs []routeLeg, selected []string) ([]int, error) {
	var all []db.Airline
	seen := map[int]bool{}
	for _, leg := range legs {
		airlines, err := o.store.ListAirlinesForRoute(ctx, leg.route.ID)
		if err != nil {
			return nil, apperr.Storage("list airlines", err)
		}
		for _, a := range airlines {
			if !seen[a.ID] {
				seen[a.ID] = true
				all = append(all, a)
			}
		}
	}

	if len(selected) == 0 {
		return nil, nil
	}

	wanted := map[string]bool{}
	for _, code := range selected {
		wanted[code] = true
	}

	var ids []int
	for _, a := range all {
		if wanted[a.Code] {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}

// expandWindow implements §4.5 step 3.
func expandWindow(start, end *time.Time, duration DurationRange) (time.Time, time.Time, float64) {
	avgDuration := float64(duration.Min+duration.Max) / 2
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var s, e time.Time
	if start != nil {
		s = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		s = today
	}
	if end != nil {
		e = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		e = s.AddDate(0, 0, int(math.Round(avgDuration)))
	}

	window := e.Sub(s)
	if window < 180*24*time.Hour {
		center := s
		windowStart := center.AddDate(0, -6, 0)
		windowEnd := center.AddDate(0, 6, 0)

		earliestAllowed := today.AddDate(-1, 0, 0)
		if windowStart.Before(earliestAllowed) {
			shift := earliestAllowed.Sub(windowStart)
			windowStart = windowStart.Add(shift)
			windowEnd = windowEnd.Add(shift)
		}
		return windowStart, windowEnd, avgDuration
	}

	extendedByDays := e.AddDate(0, 0, 90)
	endOfMonthPlus6 := time.Date(e.Year(), e.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1).AddDate(0, 6, 0)
	newEnd := extendedByDays
	if endOfMonthPlus6.After(newEnd) {
		newEnd = endOfMonthPlus6
	}
	newStart := s.AddDate(0, 0, -14)
	return newStart, newEnd, avgDuration
}

func monthsBetween(start, end time.Time) []string {
	var periods []string
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(last) {
		periods = append(periods, cursor.Format("2006-01"))
		cursor = cursor.AddDate(0, 1, 0)
	}
	return periods
}

func groupByPeriod(rows []db.FlightPrice) map[string][]db.FlightPrice {
	out := map[string][]db.FlightPrice{}
	for _, r := range rows {
		period := r.DepartureDate.Format("2006-01")
		out[period] = append(out[period], r)
	}
	return out
}

func (o *Orchestrator) loadRows(ctx context.Context, legs []routeLeg, start, end time.Time, tripType db.TripType, cabin db.Cabin, airlineIDs []int) ([]db.FlightPrice, error) {
	var all []db.FlightPrice
	for _, leg := range legs {
		rows, err := o.store.GetFlightPrices(ctx, leg.route.ID, db.FlightPriceFilter{
			StartDate:  start,
			EndDate:    end,
			TripType:   tripType,
			Cabin:      cabin,
			AirlineIDs: airlineIDs,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].DepartureDate.Before(all[j].DepartureDate) })
	return all, nil
}

// resolveRecommendedStart implements §4.5 step 6's fallback chain.
func resolveRecommendedStart(best *season.Season, userStart *time.Time) time.Time {
	if best != nil && best.BestDeal != nil && !best.BestDeal.DepartureDate.IsZero() {
		return best.BestDeal.DepartureDate
	}
	if userStart != nil {
		return *userStart
	}
	return time.Now().UTC()
}

func cheapestOnDate(store db.PostgresDB, ctx context.Context, legs []routeLeg, date time.Time, tripType db.TripType, cabin db.Cabin) (string, float64) {
	var bestAirline string
	bestPrice := -1.0
	for _, leg := range legs {
		fp, err := store.GetCheapestFlightPriceOnDate(ctx, leg.route.ID, date, tripType, cabin)
		if err != nil || fp == nil {
			continue
		}
		if bestPrice < 0 || fp.Price < bestPrice {
			bestPrice = fp.Price
			bestAirline = fp.AirlineName
		}
	}
	if bestPrice < 0 {
		return "", 0
	}
	return bestAirline, bestPrice
}

// routeDistance returns the great-circle distance between the route's
// origin and destination airports and the resulting cost-per-mile of price
// (in cents), using the recommended price as the reference fare.
func routeDistance(route *db.Route, price float64) (miles float64, costPerMileCents float64) {
	if route == nil {
		return 0, 0
	}
	origin := geo.Coordinates{Lat: iata.IATATimeZone(route.Origin).Lat, Lon: iata.IATATimeZone(route.Origin).Lon}
	dest := geo.Coordinates{Lat: iata.IATATimeZone(route.Destination).Lat, Lon: iata.IATATimeZone(route.Destination).Lon}
	if !origin.IsValid() || !dest.IsValid() || origin.IsZero() || dest.IsZero() {
		return 0, 0
	}
	miles = geo.DistanceBetween(origin, dest)
	costPerMileCents = geo.CostPerMileCents(price, miles)
	return miles, costPerMileCents
}

// buildComparison implements §4.5 step 9.
func (o *Orchestrator) buildComparison(ctx context.Context, legs []routeLeg, anchor time.Time, tripType db.TripType, cabin db.Cabin, passengers pricing.Passengers) PriceComparison {
	anchorAirline, anchorPrice := cheapestOnDate(o.store, ctx, legs, anchor, tripType, cabin)
	before := anchor.AddDate(0, 0, -7)
	after := anchor.AddDate(0, 0, 7)
	_, beforePrice := cheapestOnDate(o.store, ctx, legs, before, tripType, cabin)
	_, afterPrice := cheapestOnDate(o.store, ctx, legs, after, tripType, cabin)

	hasAnchor := anchorPrice > 0
	hasBefore := beforePrice > 0
	hasAfter := afterPrice > 0

	reference := anchorPrice
	if !hasAnchor && hasBefore && hasAfter {
		reference = (beforePrice + afterPrice) / 2
	}

	comp := PriceComparison{BaseAirline: anchorAirline}
	if hasAnchor {
		display := pricing.Display(anchorPrice, passengers, tripType == db.TripOneWay)
		comp.BasePrice = &display
	}

	if hasBefore {
		diff, pct := 0.0, 0.0
		if reference > 0 {
			diff = beforePrice - reference
			pct = 100 * diff / reference
		}
		comp.IfGoBefore = &DayComparison{
			Date:       before,
			Price:      pricing.Display(beforePrice, passengers, tripType == db.TripOneWay),
			Difference: pricing.Display(diff, passengers, tripType == db.TripOneWay),
			Percentage: pct,
		}
	}
	if hasAfter {
		diff, pct := 0.0, 0.0
		if reference > 0 {
			diff = afterPrice - reference
			pct = 100 * diff / reference
		} else if hasBefore {
			pct = 0
		}
		comp.IfGoAfter = &DayComparison{
			Date:       after,
			Price:      pricing.Display(afterPrice, passengers, tripType == db.TripOneWay),
			Difference: pricing.Display(diff, passengers, tripType == db.TripOneWay),
			Percentage: pct,
		}
	}
	return comp
}

// buildChart implements §4.5 step 10.
func (o *Orchestrator) buildChart(ctx context.Context, legs []routeLeg, anchor time.Time, tripType db.TripType, cabin db.Cabin, seasons []season.Season) []ChartDay {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var chart []ChartDay
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		_, price := cheapestOnDate(o.store, ctx, legs, d, tripType, cabin)
		label := season.LabelForMonth(seasons, d.Format("2006-01"))
		chart = append(chart, ChartDay{
			StartDate: d,
			Price:     price,
			Season:    label,
		})
	}
	return chart
}

// computeSavings implements §4.5 step 11: against a user-supplied date it
// compares that date's price to the recommendation; otherwise it compares
// the High season's best deal to the recommendation.
func computeSavings(userStart *time.Time, recommendedPrice float64, seasons []season.Season, passengers pricing.Passengers, store db.PostgresDB, ctx context.Context, legs []routeLeg, tripType db.TripType, cabin db.Cabin) float64 {
	if userStart != nil {
		_, anchorPrice := cheapestOnDate(store, ctx, legs, *userStart, tripType, cabin)
		if anchorPrice <= 0 || recommendedPrice <= 0 {
			return 0
		}
		diff := anchorPrice - recommendedPrice
		if diff < 0 {
			diff = 0
		}
		return pricing.Display(diff, passengers, tripType == db.TripOneWay)
	}

	high := highSeason(seasons)
	if high == nil || high.BestDeal == nil || recommendedPrice <= 0 {
		return 0
	}
	diff := high.BestDeal.Price - recommendedPrice
	if diff < 0 {
		diff = 0
	}
	return pricing.Display(diff, passengers, tripType == db.TripOneWay)
}

// highSeason returns the High-labeled entry from seasons, or nil if none.
func highSeason(seasons []season.Season) *season.Season {
	for i := range seasons {
		if seasons[i].Label == db.SeasonHigh {
			return &seasons[i]
		}
	}
	return nil
}

func buildSeasonEntries(seasons []season.Season, passengers pricing.Passengers, oneWay bool) []SeasonEntry {
	var out []SeasonEntry
	for _, s := range seasons {
		entry := SeasonEntry{
			Type:        s.Label,
			PriceRange:  PriceRange{Min: pricing.Display(s.PriceMin, passengers, oneWay), Max: pricing.Display(s.PriceMax, passengers, oneWay)},
			Description: describeSeason(s.Label),
		}
		for _, m := range s.Months {
			entry.Months = append(entry.Months, localizedMonth(m))
		}
		if s.BestDeal != nil {
			entry.BestDeal = &BestDeal{
				Date:        s.BestDeal.DepartureDate,
				Price:       pricing.Display(s.BestDeal.Price, passengers, oneWay),
				AirlineName: s.BestDeal.AirlineName,
			}
		}
		out = append(out, entry)
	}
	return out
}

func localizedMonth(period string) string {
	year := calendar.YearOf(period)
	monthIdx := 0
	if len(period) == 7 {
		for _, c := range period[5:7] {
			if c < '0' || c > '9' {
				return period
			}
			monthIdx = monthIdx*10 + int(c-'0')
		}
	}
	name := calendar.MonthName(monthIdx)
	if name == "" {
		return period
	}
	return name + " " + calendar.FormatInt(year)
}

func describeSeason(label db.SeasonLabel) string {
	switch label {
	case db.SeasonLow:
		return "Lower demand, better prices"
	case db.SeasonHigh:
		return "Peak demand, higher prices"
	default:
		return "Typical demand and pricing"
	}
}

func applyPricingToRows(rows []db.FlightPrice, passengers pricing.Passengers, oneWay bool) []db.FlightPrice {
	out := make([]db.FlightPrice, len(rows))
	for i, r := range rows {
		r.Price = pricing.Display(r.Price, passengers, oneWay)
		r.BasePrice = pricing.Display(r.BasePrice, passengers, oneWay)
		out[i] = r
	}
	return out
}

// attachForecast implements §4.5 step 12. Failures are swallowed; the
// forecast fields are left nil on the result.
func (o *Orchestrator) attachForecast(ctx context.Context, routeID int, tripType db.TripType, anchor time.Time, periods []string, rowsByPeriod map[string][]db.FlightPrice, passengers pricing.Passengers, oneWay bool, result *Result) {
	if o.forecaster == nil {
		return
	}

	holidays := o.loadHolidays(ctx, periods, anchor)
	var allRows []db.FlightPrice
	for _, rows := range rowsByPeriod {
		allRows = append(allRows, rows...)
	}

	prediction, err := o.forecaster.Predict(ctx, routeID, tripType, anchor, holidays)
	if err != nil {
		logger.Debug("forecast prediction unavailable", "route_id", routeID, "err", err.Error())
	} else {
		result.PricePrediction = &PricePrediction{
			PredictedPrice: pricing.Display(prediction.Price, passengers, oneWay),
			Confidence:     string(prediction.Confidence),
			RSquared:       prediction.RSquared,
			MinPrice:       pricing.Display(prediction.MinPrice, passengers, oneWay),
			MaxPrice:       pricing.Display(prediction.MaxPrice, passengers, oneWay),
		}
	}

	avgPrice := averagePrice(allRows)
	graph := o.forecaster.Graph(ctx, routeID, tripType, 350, actualsNear(allRows, time.Now().UTC()), avgPrice, holidays)
	for _, p := range graph {
		result.PriceGraphData = append(result.PriceGraphData, GraphDay{
			Date:     p.Date,
			Low:      pricing.Display(p.Low, passengers, oneWay),
			Typical:  pricing.Display(p.Typical, passengers, oneWay),
			High:     pricing.Display(p.High, passengers, oneWay),
			IsActual: p.IsActual,
		})
	}

	result.PriceTrend = buildTrend(graph)
}

// loadHolidays collects holiday dates (§4.6 feature/multiplier input) for the
// query window plus the forecast graph's forward horizon, so both Predict
// and Graph see holidays whether they fall inside the requested window or
// past it.
func (o *Orchestrator) loadHolidays(ctx context.Context, periods []string, anchor time.Time) []time.Time {
	wanted := map[string]bool{}
	for _, p := range periods {
		wanted[p] = true
	}
	for _, p := range monthsBetween(anchor, anchor.AddDate(0, 0, 365)) {
		wanted[p] = true
	}

	all := make([]string, 0, len(wanted))
	for p := range wanted {
		all = append(all, p)
	}

	stats, err := o.store.GetHolidayStats(ctx, all)
	if err != nil {
		logger.Debug("holiday stats unavailable for forecast", "err", err.Error())
		return nil
	}

	var holidays []time.Time
	for _, stat := range stats {
		for _, h := range stat.HolidaysDetail {
			holidays = append(holidays, h.Date)
		}
	}
	return holidays
}

func averagePrice(rows []db.FlightPrice) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rows {
		sum += r.Price
	}
	return sum / float64(len(rows))
}

func actualsNear(rows []db.FlightPrice, now time.Time) []db.FlightPrice {
	start := now.AddDate(0, 0, -30)
	end := now.AddDate(0, 0, 30)
	var out []db.FlightPrice
	for _, r := range rows {
		if !r.DepartureDate.Before(start) && !r.DepartureDate.After(end) {
			out = append(out, r)
		}
	}
	return out
}

func buildTrend(graph []forecast.GraphPoint) *PriceTrend {
	if len(graph) < 30 {
		return nil
	}
	now := time.Now().UTC()
	var current, future []float64
	for _, p := range graph {
		daysOut := int(p.Date.Sub(now).Hours() / 24)
		if daysOut >= 0 && daysOut <= 15 {
			current = append(current, p.Typical)
		}
		if daysOut >= 16 && daysOut <= 30 {
			future = append(future, p.Typical)
		}
	}
	if len(current) == 0 || len(future) == 0 {
		return nil
	}

	currentAvg := mean(current)
	futureAvg := mean(future)
	changePercent := 0.0
	if currentAvg > 0 {
		changePercent = 100 * (futureAvg - currentAvg) / currentAvg
	}

	trend := "stable"
	switch {
	case changePercent > 3:
		trend = "increasing"
	case changePercent < -3:
		trend = "decreasing"
	}

	return &PriceTrend{
		Trend:           trend,
		ChangePercent:   changePercent,
		CurrentAvgPrice: currentAvg,
		FutureAvgPrice:  futureAvg,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
