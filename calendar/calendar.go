// Package calendar implements the calendar utilities shared by ingestion,
// the score aggregator, and the forecasting engine (long-weekend detection,
// month-name mapping (English month names only; Thai names are not
// recognized), holiday-category classification, and the
// deterministic seeded PRNG used for reproducible fallback scores).
package calendar

import (
	"strings"
	"time"

	"github.com/rickar/cal/v2"
)

var workCalendar = cal.NewCalendar()

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	return !workCalendar.IsWorkday(d)
}

// IsLongWeekend reports whether a holiday on d extends a weekend: d itself
// is Friday or Monday, or either adjacent day is Saturday/Sunday.
func IsLongWeekend(d time.Time) bool {
	switch d.Weekday() {
	case time.Friday, time.Monday:
		return true
	}
	return IsWeekend(d.AddDate(0, 0, -1)) || IsWeekend(d.AddDate(0, 0, 1))
}

// HolidayCategory classifies a holiday name into the §4.3 buckets used for
// holiday_score. Matching is substring-based against known Thai holiday
// names and markers.
type HolidayCategory int

const (
	CategoryRegular HolidayCategory = iota
	CategorySpecialDay
	CategoryImportant
	CategoryMajorFestival
)

var majorFestivalMarkers = []string{"songkran", "chinese new year", "new year", "christmas"}
var importantMarkers = []string{"makha", "visakha", "asanha", "royal birthday", "mother", "father"}

// ClassifyHoliday returns the scoring category for a holiday name, matched
// case-insensitively against known markers (§4.3).
func ClassifyHoliday(name string) HolidayCategory {
	lower := strings.ToLower(name)
	for _, marker := range majorFestivalMarkers {
		if strings.Contains(lower, marker) {
			return CategoryMajorFestival
		}
	}
	for _, marker := range importantMarkers {
		if strings.Contains(lower, marker) {
			return CategoryImportant
		}
	}
	if strings.Contains(lower, "special day") {
		return CategorySpecialDay
	}
	return CategoryRegular
}

// HolidayCategoryPoints is the score delta each category contributes (§4.3).
func HolidayCategoryPoints(c HolidayCategory) float64 {
	switch c {
	case CategoryMajorFestival:
		return 20
	case CategoryImportant:
		return 10
	case CategorySpecialDay:
		return 5
	default:
		return 8
	}
}

var thaiMonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English month name for a 1-12 index; out-of-range
// indices return "".
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return thaiMonthNames[month-1]
}

// MonthIndex resolves a month name (or substring of one) to its 1-12 index.
// It tries an exact case-insensitive match first, then substring containment
// in either direction. Returns 0 if unresolved.
func MonthIndex(name string) int {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return 0
	}
	for i, full := range thaiMonthNames {
		if strings.ToLower(full) == lower {
			return i + 1
		}
	}
	for i, full := range thaiMonthNames {
		fullLower := strings.ToLower(full)
		if strings.Contains(fullLower, lower) || strings.Contains(lower, fullLower) {
			return i + 1
		}
	}
	return 0
}

// SeededRand implements the 32-bit rolling-hash PRNG of §4.8: a pure
// function of the seed string, reproducible across runs and processes.
func SeededRand(seed string) float64 {
	var h int32
	for _, c := range seed {
		h = (h << 5) - h + int32(c)
	}
	if h < 0 {
		h = -h
	}
	return float64(h%1000000) / 1000000.0
}

// SeededRandN derives a second, independent-looking value from the same
// seed by salting it; used where two fabricated quantities must both be
// deterministic but distinct (e.g. jitter direction and magnitude).
func SeededRandN(seed string, salt int) float64 {
	return SeededRand(seed + ":" + itoa(salt))
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

// IsPeakMonth reports whether month (1-12) falls in December, January, or
// April, the fixed peak-season bump in §4.3.
func IsPeakMonth(month int) bool {
	return month == 12 || month == 1 || month == 4
}

// YearOf extracts the calendar year from a "YYYY-MM" period string, or 0 if
// it cannot be parsed.
func YearOf(period string) int {
	if len(period) < 4 {
		return 0
	}
	year := 0
	for _, c := range period[:4] {
		if c < '0' || c > '9' {
			return 0
		}
		year = year*10 + int(c-'0')
	}
	return year
}

// FormatInt renders n in base 10, used to compose seed strings without
// pulling in strconv for a single call site.
func FormatInt(n int) string {
	return itoa(n)
}
