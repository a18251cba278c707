package forecast

import (
	"math"
	"time"

	"github.com/gilby125/thai-flight-analytics/calendar"
	"github.com/gilby125/thai-flight-analytics/db"
)

// Features is the fixed-order input vector the model trains and predicts on
// (§4.6): [dayOfWeek, month, daysUntilDeparture, isWeekend, isHolidaySeason,
// isHoliday, holidayMultiplier].
type Features [7]float64

const (
	featDayOfWeek = iota
	featMonth
	featDaysUntilDeparture
	featIsWeekend
	featIsHolidaySeason
	featIsHoliday
	featHolidayMultiplier
)

// BuildFeatures computes the feature vector for a candidate departure date,
// relative to today and a set of known holiday dates.
func BuildFeatures(date, today time.Time, holidays []time.Time) Features {
	daysUntil := math.Floor(date.Sub(today).Hours() / 24)
	if daysUntil < 0 {
		daysUntil = 0
	}

	isHoliday := 0.0
	for _, h := range holidays {
		if sameDay(h, date) {
			isHoliday = 1
			break
		}
	}

	f := Features{}
	f[featDayOfWeek] = float64(int(date.Weekday()))
	f[featMonth] = float64(int(date.Month()) - 1)
	f[featDaysUntilDeparture] = daysUntil
	f[featIsWeekend] = boolToFloat(calendar.IsWeekend(date))
	f[featIsHolidaySeason] = boolToFloat(calendar.IsPeakMonth(int(date.Month())))
	f[featIsHoliday] = isHoliday
	f[featHolidayMultiplier] = HolidayMultiplier(date, holidays)
	return f
}

// HolidayMultiplier implements the §4.6 window rules: 1.5 in Songkran or
// Christmas-New Year windows, 1.4 in the New Year window, 1.3 around Chinese
// New Year, 1.2 in the May/October school windows or within 3 days of any
// listed holiday, else 1.0. Windows are approximated by fixed calendar
// ranges since the precise lunar dates live in the holiday calendar, not
// this package.
func HolidayMultiplier(date time.Time, holidays []time.Time) float64 {
	month := int(date.Month())
	day := date.Day()

	if month == 4 && day >= 12 && day <= 15 {
		return 1.5
	}
	if (month == 12 && day >= 24) || (month == 1 && day <= 2) {
		return 1.5
	}
	if month == 1 && day >= 3 && day <= 7 {
		return 1.4
	}
	if isChineseNewYearWindow(date) {
		return 1.3
	}
	if (month == 5 && day <= 15) || (month == 10 && day >= 15) {
		return 1.2
	}
	for _, h := range holidays {
		diff := math.Abs(date.Sub(h).Hours() / 24)
		if diff <= 3 {
			return 1.2
		}
	}
	return 1.0
}

// isChineseNewYearWindow approximates the lunar Chinese New Year window as
// the last week of January through the second week of February, which
// covers the holiday's observed range across years.
func isChineseNewYearWindow(date time.Time) bool {
	month := int(date.Month())
	day := date.Day()
	return (month == 1 && day >= 21) || (month == 2 && day <= 15)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// trainingRow pairs a feature vector with its observed price.
type trainingRow struct {
	features Features
	price    float64
}

// rowsToTraining converts stored flight prices into training rows, one per
// row, using each row's departure date as the "date" and treating the row's
// own ingestion context as "today" via the supplied reference.
func rowsToTraining(rows []db.FlightPrice, today time.Time, holidays []time.Time) []trainingRow {
	out := make([]trainingRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, trainingRow{
			features: BuildFeatures(r.DepartureDate, today, holidays),
			price:    r.Price,
		})
	}
	return out
}
