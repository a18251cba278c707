package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekend(t *testing.T) {
	sat := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsWeekend(sat))
	assert.False(t, IsWeekend(mon))
}

func TestIsLongWeekend(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"Friday holiday", time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), true},
		{"Monday holiday", time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), true},
		{"Wednesday holiday adjacent to nothing", time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLongWeekend(tt.day))
		})
	}
}

func TestClassifyHoliday(t *testing.T) {
	tests := []struct {
		name string
		want HolidayCategory
	}{
		{"Songkran Festival", CategoryMajorFestival},
		{"Chinese New Year", CategoryMajorFestival},
		{"Makha Bucha Day", CategoryImportant},
		{"HM the King's Birthday (Father's Day)", CategoryImportant},
		{"Substitution for Special Day", CategorySpecialDay},
		{"Chakri Memorial Day", CategoryRegular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyHoliday(tt.name))
		})
	}
}

func TestHolidayCategoryPoints(t *testing.T) {
	assert.Equal(t, 20.0, HolidayCategoryPoints(CategoryMajorFestival))
	assert.Equal(t, 10.0, HolidayCategoryPoints(CategoryImportant))
	assert.Equal(t, 5.0, HolidayCategoryPoints(CategorySpecialDay))
	assert.Equal(t, 8.0, HolidayCategoryPoints(CategoryRegular))
}

func TestMonthNameAndIndex(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "December", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))

	assert.Equal(t, 1, MonthIndex("January"))
	assert.Equal(t, 1, MonthIndex("january"))
	assert.Equal(t, 4, MonthIndex("Apr"))
	assert.Equal(t, 0, MonthIndex(""))
	assert.Equal(t, 0, MonthIndex("not a month"))
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a := SeededRand("route-1:2026-03-01")
	b := SeededRand("route-1:2026-03-01")
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a, 0.0)
	assert.Less(t, a, 1.0)
}

func TestSeededRandNDiffersFromBase(t *testing.T) {
	base := SeededRand("seed")
	salted := SeededRandN("seed", 1)
	assert.NotEqual(t, base, salted)
}

func TestIsPeakMonth(t *testing.T) {
	assert.True(t, IsPeakMonth(12))
	assert.True(t, IsPeakMonth(1))
	assert.True(t, IsPeakMonth(4))
	assert.False(t, IsPeakMonth(6))
}

func TestYearOf(t *testing.T) {
	assert.Equal(t, 2026, YearOf("2026-03"))
	assert.Equal(t, 0, YearOf("bad"))
	assert.Equal(t, 0, YearOf(""))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "42", FormatInt(42))
	assert.Equal(t, "-7", FormatInt(-7))
	assert.Equal(t, "0", FormatInt(0))
}
