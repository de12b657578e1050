// Package datemath provides day-granularity date arithmetic for the loan
// schedule. All money-relevant date math runs over canonical dates (midnight
// UTC) so day differences are always exact whole days, independent of the
// time-of-day a request happens to arrive.
package datemath

import "time"

// Layout is the canonical persisted form of a date.
const Layout = "2006.01.02"

// Canonical truncates t to midnight UTC.
func Canonical(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FirstDayOfNextMonth returns the first calendar day of the month after now.
func FirstDayOfNextMonth(now time.Time) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds n months, clamping the day-of-month to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29, not Mar 2).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.UTC().Date()
	last := daysInMonth(y, m+time.Month(n))
	if d > last {
		d = last
	}
	return time.Date(y, m+time.Month(n), d, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns b minus a in whole days. Both operands are
// canonicalized first, so the result is exact.
func DaysBetween(a, b time.Time) int {
	return int(Canonical(b).Sub(Canonical(a)) / (24 * time.Hour))
}
