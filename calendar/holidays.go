package calendar

import "time"

// fixedHolidays are the South African public holidays that fall on the same
// month and day every year. No observed-holiday shifting is applied when one
// of these lands on a weekend; that matches how the 90-working-day SLA is
// measured, it is not an oversight.
var fixedHolidays = []struct {
	Month time.Month
	Day   int
	Name  string
}{
	{time.January, 1, "New Year's Day"},
	{time.March, 21, "Human Rights Day"},
	{time.April, 27, "Freedom Day"},
	{time.May, 1, "Workers' Day"},
	{time.June, 16, "Youth Day"},
	{time.August, 9, "National Women's Day"},
	{time.September, 24, "Heritage Day"},
	{time.December, 16, "Day of Reconciliation"},
	{time.December, 25, "Christmas Day"},
	{time.December, 26, "Day of Goodwill"},
}

// easterSunday computes Gregorian Easter Sunday for a year using the
// anonymous/Meeus algorithm. Integer arithmetic only.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// goodFriday is two days before Easter Sunday
func goodFriday(year int) time.Time {
	return easterSunday(year).AddDate(0, 0, -2)
}

// familyDay is the Monday after Easter Sunday
func familyDay(year int) time.Time {
	return easterSunday(year).AddDate(0, 0, 1)
}

// IsPublicHoliday reports whether the date falls on a South African public
// holiday: one of the ten fixed holidays, Good Friday or Family Day.
func IsPublicHoliday(t time.Time) bool {
	for _, h := range fixedHolidays {
		if t.Month() == h.Month && t.Day() == h.Day {
			return true
		}
	}
	gf := goodFriday(t.Year())
	if t.Month() == gf.Month() && t.Day() == gf.Day() {
		return true
	}
	fd := familyDay(t.Year())
	if t.Month() == fd.Month() && t.Day() == fd.Day() {
		return true
	}
	return false
}
