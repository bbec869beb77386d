package domain

import "time"

// DateLayout is the calendar-date format used on the wire and in exports.
const DateLayout = "2006-01-02"

// MonthLayout is the "YYYY-MM" format of month keys.
const MonthLayout = "2006-01"

// DayStart returns midnight of the calendar day containing t, in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// AddDays moves a day start by n calendar days. AddDate keeps midnight across
// DST changes where Add(24h) would not.
func AddDays(dayStart time.Time, n int, loc *time.Location) time.Time {
	next := dayStart.In(loc).AddDate(0, 0, n)
	return time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, loc)
}

// DayBounds returns the inclusive [from, to] instant range of the calendar
// day containing t.
func DayBounds(t time.Time, loc *time.Location) (from, to time.Time) {
	from = DayStart(t, loc)
	return from, AddDays(from, 1, loc).Add(-time.Nanosecond)
}

// MonthStart returns midnight of the first day of the given month, in loc.
func MonthStart(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// DaysIn returns the number of days of the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthKey formats the month containing t as "YYYY-MM".
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(MonthLayout)
}
