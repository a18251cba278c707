// Package season implements the season classifier (C4): composes the
// aggregator's three per-period scores into a single season_score, splits
// the months present into Low/Normal/High terciles, and derives each
// season's price range and best deal from the underlying flight rows (§4.4).
package season

import (
	"math"
	"sort"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
)

// BestDeal is the cheapest fare within a season.
type BestDeal struct {
	DepartureDate time.Time
	Price         float64
	AirlineName   string
}

// Season is one tercile-classified calendar bucket.
type Season struct {
	Label      db.SeasonLabel
	Months     []string // YYYY-MM, ascending
	PriceMin   float64
	PriceMax   float64
	BestDeal   *BestDeal
	Score      float64 // not set by Classify; per-month season_score values are in ScoreByMon
	ScoreByMon map[string]float64
}

// Classify composes season scores for every period with flight data and
// buckets them into Low/Normal/High terciles (§4.4 steps 1-2). rowsByPeriod
// must contain an entry (possibly empty) for each period in periods; periods
// absent from rowsByPeriod, or present with zero rows, are excluded from
// classification entirely (step "edge cases").
func Classify(periods []string, rowsByPeriod map[string][]db.FlightPrice, pricePct, holiday, weather map[string]float64) []Season {
	var withData []string
	for _, p := range periods {
		if len(rowsByPeriod[p]) > 0 {
			withData = append(withData, p)
		}
	}
	if len(withData) == 0 {
		return nil
	}

	scoreByMonth := make(map[string]float64, len(withData))
	for _, p := range withData {
		scoreByMonth[p] = 0.60*pricePct[p] + 0.30*holiday[p] + 0.10*weather[p]
	}

	sortedScores := make([]float64, 0, len(scoreByMonth))
	for _, s := range scoreByMonth {
		sortedScores = append(sortedScores, s)
	}
	sort.Float64s(sortedScores)

	t33 := percentile(sortedScores, 33)
	t67 := percentile(sortedScores, 67)

	buckets := map[db.SeasonLabel][]string{
		db.SeasonLow:    nil,
		db.SeasonNormal: nil,
		db.SeasonHigh:   nil,
	}
	for _, p := range withData {
		score := scoreByMonth[p]
		label := db.SeasonNormal
		switch {
		case score <= t33:
			label = db.SeasonLow
		case score >= t67:
			label = db.SeasonHigh
		}
		buckets[label] = append(buckets[label], p)
	}

	var seasons []Season
	for _, label := range []db.SeasonLabel{db.SeasonLow, db.SeasonNormal, db.SeasonHigh} {
		months := buckets[label]
		if months == nil {
			continue
		}
		sort.Strings(months)
		seasons = append(seasons, buildSeason(label, months, rowsByPeriod, scoreByMonth))
	}
	return seasons
}

// percentile implements "index = ceil(p/100 * n) - 1, clamped to 0" over an
// already-sorted slice (§4.4 step 2).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	index := int(math.Ceil(p / 100 * float64(n)))
	index--
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	return sorted[index]
}

func buildSeason(label db.SeasonLabel, months []string, rowsByPeriod map[string][]db.FlightPrice, scoreByMonth map[string]float64) Season {
	var rows []db.FlightPrice
	for _, m := range months {
		rows = append(rows, rowsByPeriod[m]...)
	}

	s := Season{
		Label:      label,
		Months:     months,
		ScoreByMon: scoreByMonth,
	}

	if len(rows) == 0 {
		// Same-month refilter already failed (rowsByPeriod is per-month), so
		// report the missing-data sentinel rather than a synthetic average.
		s.PriceMin, s.PriceMax = 0, 0
		return s
	}

	minPrice, maxPrice := rows[0].Price, rows[0].Price
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Price < minPrice {
			minPrice = r.Price
		}
		if r.Price > maxPrice {
			maxPrice = r.Price
		}
		if r.Price < best.Price {
			best = r
		}
	}
	s.PriceMin = minPrice
	s.PriceMax = maxPrice
	s.BestDeal = &BestDeal{
		DepartureDate: best.DepartureDate,
		Price:         best.Price,
		AirlineName:   best.AirlineName,
	}
	return s
}

// LabelForMonth returns the season label assigned to a YYYY-MM period, or
// db.SeasonLabel("") if that month received no classification.
func LabelForMonth(seasons []Season, period string) db.SeasonLabel {
	for _, s := range seasons {
		for _, m := range s.Months {
			if m == period {
				return s.Label
			}
		}
	}
	return ""
}

// CheapestSeason returns the season whose BestDeal has the lowest price,
// used by the analysis orchestrator to choose the system recommendation
// (§4.5 step 6). Returns nil if no season has a best deal.
func CheapestSeason(seasons []Season) *Season {
	var cheapest *Season
	for i := range seasons {
		if seasons[i].BestDeal == nil {
			continue
		}
		if cheapest == nil || seasons[i].BestDeal.Price < cheapest.BestDeal.Price {
			cheapest = &seasons[i]
		}
	}
	return cheapest
}
