package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsWorkingDayWeekendsAlwaysFalse(t *testing.T) {
	// walk a full year of Saturdays and Sundays
	d := date(2024, time.January, 6) // a Saturday
	for i := 0; i < 52; i++ {
		assert.False(t, IsWorkingDay(d), "saturday %v", d)
		assert.False(t, IsWorkingDay(d.AddDate(0, 0, 1)), "sunday %v", d.AddDate(0, 0, 1))
		d = d.AddDate(0, 0, 7)
	}
}

func TestIsWorkingDayPublicHolidays(t *testing.T) {
	holidays := []time.Time{
		date(2024, time.January, 1),   // New Year's Day
		date(2024, time.March, 21),    // Human Rights Day
		date(2024, time.April, 27),    // Freedom Day
		date(2024, time.May, 1),       // Workers' Day
		date(2025, time.June, 16),     // Youth Day
		date(2025, time.August, 9),    // National Women's Day
		date(2025, time.September, 24),// Heritage Day
		date(2025, time.December, 16), // Day of Reconciliation
		date(2025, time.December, 25), // Christmas Day
		date(2025, time.December, 26), // Day of Goodwill
	}
	for _, h := range holidays {
		assert.False(t, IsWorkingDay(h), "expected %v to be a holiday", h)
	}

	// an unremarkable midweek day
	assert.True(t, IsWorkingDay(date(2024, time.February, 7)))
}

func TestWorkingDaysBetweenSingleDay(t *testing.T) {
	wed := date(2024, time.February, 7)
	assert.Equal(t, 1, WorkingDaysBetween(wed, wed))

	sat := date(2024, time.February, 10)
	assert.Equal(t, 0, WorkingDaysBetween(sat, sat))

	// single-day range on a holiday counts zero
	heritage := date(2024, time.September, 24)
	assert.Equal(t, 0, WorkingDaysBetween(heritage, heritage))
}

func TestWorkingDaysBetweenStartAfterEnd(t *testing.T) {
	assert.Equal(t, 0, WorkingDaysBetween(date(2024, time.March, 10), date(2024, time.March, 1)))
	assert.Equal(t, 0, WorkingDaysBetween(date(2025, time.January, 2), date(2024, time.December, 31)))
}

func TestWorkingDaysBetweenFullWeek(t *testing.T) {
	// Mon 2024-02-05 through Sun 2024-02-11: five working days, no holidays
	assert.Equal(t, 5, WorkingDaysBetween(date(2024, time.February, 5), date(2024, time.February, 11)))
}

func TestWorkingDaysBetweenSpansEaster(t *testing.T) {
	// Thu 2024-03-28 through Tue 2024-04-02 contains Good Friday (03-29),
	// the weekend, and Family Day (04-01): only Thu and Tue count.
	assert.Equal(t, 2, WorkingDaysBetween(date(2024, time.March, 28), date(2024, time.April, 2)))
}

func TestDateAtWorkingDayCount(t *testing.T) {
	// starting Mon 2024-02-05, the 5th working day is Fri 2024-02-09
	got := DateAtWorkingDayCount(date(2024, time.February, 5), 5)
	assert.Equal(t, date(2024, time.February, 9), got)

	// starting on a Saturday, the 1st working day is the following Monday
	got = DateAtWorkingDayCount(date(2024, time.February, 10), 1)
	assert.Equal(t, date(2024, time.February, 12), got)
}
