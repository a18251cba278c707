package season

import (
	"testing"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(price float64, date string, airline string) db.FlightPrice {
	d, _ := time.Parse("2006-01-02", date)
	return db.FlightPrice{Price: price, DepartureDate: d, AirlineName: airline}
}

func TestClassifySplitsIntoTerciles(t *testing.T) {
	periods := []string{"2026-01", "2026-02", "2026-03", "2026-04", "2026-05", "2026-06"}
	rowsByPeriod := map[string][]db.FlightPrice{
		"2026-01": {row(5000, "2026-01-10", "Thai Air")},
		"2026-02": {row(4500, "2026-02-10", "Thai Air")},
		"2026-03": {row(6000, "2026-03-10", "Thai Air")},
		"2026-04": {row(3000, "2026-04-10", "Thai Air")},
		"2026-05": {row(7000, "2026-05-10", "Thai Air")},
		"2026-06": {row(2000, "2026-06-10", "Thai Air")},
	}
	pricePct := map[string]float64{"2026-01": 50, "2026-02": 40, "2026-03": 60, "2026-04": 20, "2026-05": 90, "2026-06": 10}
	holiday := map[string]float64{"2026-01": 50, "2026-02": 40, "2026-03": 60, "2026-04": 20, "2026-05": 90, "2026-06": 10}
	weather := map[string]float64{"2026-01": 50, "2026-02": 40, "2026-03": 60, "2026-04": 20, "2026-05": 90, "2026-06": 10}

	seasons := Classify(periods, rowsByPeriod, pricePct, holiday, weather)
	require.NotEmpty(t, seasons)

	total := 0
	for _, s := range seasons {
		total += len(s.Months)
	}
	assert.Equal(t, 6, total)
}

func TestClassifyExcludesPeriodsWithoutRows(t *testing.T) {
	periods := []string{"2026-01", "2026-02"}
	rowsByPeriod := map[string][]db.FlightPrice{
		"2026-01": {row(5000, "2026-01-10", "Thai Air")},
		"2026-02": {},
	}
	scores := map[string]float64{"2026-01": 50, "2026-02": 50}

	seasons := Classify(periods, rowsByPeriod, scores, scores, scores)
	for _, s := range seasons {
		assert.NotContains(t, s.Months, "2026-02")
	}
}

func TestClassifyReturnsNilWhenNoDataAnywhere(t *testing.T) {
	seasons := Classify([]string{"2026-01"}, map[string][]db.FlightPrice{}, nil, nil, nil)
	assert.Nil(t, seasons)
}

func TestBuildSeasonFindsMinMaxAndBestDeal(t *testing.T) {
	months := []string{"2026-01"}
	rowsByPeriod := map[string][]db.FlightPrice{
		"2026-01": {
			row(5000, "2026-01-05", "Thai Air"),
			row(3000, "2026-01-10", "Bangkok Air"),
			row(7000, "2026-01-20", "Nok Air"),
		},
	}
	s := buildSeason(db.SeasonLow, months, rowsByPeriod, map[string]float64{"2026-01": 10})

	assert.Equal(t, 3000.0, s.PriceMin)
	assert.Equal(t, 7000.0, s.PriceMax)
	require.NotNil(t, s.BestDeal)
	assert.Equal(t, 3000.0, s.BestDeal.Price)
	assert.Equal(t, "Bangkok Air", s.BestDeal.AirlineName)
}

func TestLabelForMonth(t *testing.T) {
	seasons := []Season{
		{Label: db.SeasonLow, Months: []string{"2026-01"}},
		{Label: db.SeasonHigh, Months: []string{"2026-06"}},
	}
	assert.Equal(t, db.SeasonLow, LabelForMonth(seasons, "2026-01"))
	assert.Equal(t, db.SeasonHigh, LabelForMonth(seasons, "2026-06"))
	assert.Equal(t, db.SeasonLabel(""), LabelForMonth(seasons, "2026-12"))
}

func TestCheapestSeason(t *testing.T) {
	seasons := []Season{
		{Label: db.SeasonLow, BestDeal: &BestDeal{Price: 5000}},
		{Label: db.SeasonHigh, BestDeal: &BestDeal{Price: 3000}},
		{Label: db.SeasonNormal, BestDeal: nil},
	}
	cheapest := CheapestSeason(seasons)
	require.NotNil(t, cheapest)
	assert.Equal(t, db.SeasonHigh, cheapest.Label)
}

func TestCheapestSeasonNilWhenNoneHaveDeals(t *testing.T) {
	seasons := []Season{{Label: db.SeasonLow}}
	assert.Nil(t, CheapestSeason(seasons))
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	assert.Equal(t, 20.0, percentile(sorted, 33))
	assert.Equal(t, 40.0, percentile(sorted, 67))
	assert.Equal(t, 0.0, percentile(nil, 50))
}
