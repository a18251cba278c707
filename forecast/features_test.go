package forecast

import (
	"testing"
	"time"

	"github.com/gilby125/thai-flight-analytics/db"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestHolidayMultiplier(t *testing.T) {
	tests := []struct {
		name string
		day  string
		want float64
	}{
		{"Songkran", "2026-04-13", 1.5},
		{"Christmas-New Year", "2026-12-25", 1.5},
		{"New Year window", "2026-01-05", 1.4},
		{"Chinese New Year window", "2026-02-10", 1.3},
		{"May school window", "2026-05-10", 1.2},
		{"October school window", "2026-10-20", 1.2},
		{"ordinary day", "2026-06-15", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HolidayMultiplier(date(tt.day), nil))
		})
	}
}

func TestHolidayMultiplierNearListedHoliday(t *testing.T) {
	holidays := []time.Time{date("2026-06-15")}
	assert.Equal(t, 1.2, HolidayMultiplier(date("2026-06-17"), holidays))
	assert.Equal(t, 1.0, HolidayMultiplier(date("2026-06-25"), holidays))
}

func TestBuildFeaturesClampsDaysUntilToZero(t *testing.T) {
	today := date("2026-06-15")
	past := date("2026-06-10")
	f := BuildFeatures(past, today, nil)
	assert.Equal(t, 0.0, f[featDaysUntilDeparture])
}

func TestBuildFeaturesMarksHoliday(t *testing.T) {
	today := date("2026-06-01")
	holidayDate := date("2026-06-15")
	f := BuildFeatures(holidayDate, today, []time.Time{holidayDate})
	assert.Equal(t, 1.0, f[featIsHoliday])
}

func TestRowsToTrainingPreservesCount(t *testing.T) {
	today := date("2026-06-01")
	rows := []db.FlightPrice{
		{DepartureDate: date("2026-06-10"), Price: 3000},
		{DepartureDate: date("2026-06-20"), Price: 3500},
	}
	training := rowsToTraining(rows, today, nil)
	assert.Len(t, training, len(rows))
	assert.Equal(t, 3000.0, training[0].price)
}
