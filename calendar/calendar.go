// Package calendar implements South African working-day arithmetic used to
// measure licence application processing time against the 90-working-day SLA.
package calendar

import "time"

// IsWorkingDay reports whether the date is a working day in South Africa:
// not a Saturday, not a Sunday and not a public holiday.
func IsWorkingDay(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !IsPublicHoliday(t)
}

// WorkingDaysBetween counts the working days in the inclusive range
// [start, end]. The start date counts when it is itself a working day.
// A start after the end yields zero. The walk is day by day; the holiday set
// is too irregular for calendar shortcuts.
func WorkingDaysBetween(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return 0
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// DateAtWorkingDayCount walks forward from start until the running inclusive
// working-day count reaches target, returning the date on which it does. Used
// to project the calendar date on which a pending application crosses the
// 90-working-day SLA.
func DateAtWorkingDayCount(start time.Time, target int) time.Time {
	d := truncateToDay(start)
	count := 0
	for {
		if IsWorkingDay(d) {
			count++
			if count >= target {
				return d
			}
		}
		d = d.AddDate(0, 0, 1)
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
