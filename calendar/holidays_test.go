package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// published Easter Sunday dates, 2020 through 2030
var easterDates = map[int]time.Time{
	2020: date(2020, time.April, 12),
	2021: date(2021, time.April, 4),
	2022: date(2022, time.April, 17),
	2023: date(2023, time.April, 9),
	2024: date(2024, time.March, 31),
	2025: date(2025, time.April, 20),
	2026: date(2026, time.April, 5),
	2027: date(2027, time.March, 28),
	2028: date(2028, time.April, 16),
	2029: date(2029, time.April, 1),
	2030: date(2030, time.April, 21),
}

func TestEasterSunday(t *testing.T) {
	for year, want := range easterDates {
		assert.Equal(t, want, easterSunday(year), "easter %d", year)
	}
}

func TestGoodFridayAndFamilyDayOffsets(t *testing.T) {
	for year, easter := range easterDates {
		assert.Equal(t, easter.AddDate(0, 0, -2), goodFriday(year), "good friday %d", year)
		assert.Equal(t, easter.AddDate(0, 0, 1), familyDay(year), "family day %d", year)
	}

	// 2024 spot check against the published calendar
	assert.Equal(t, date(2024, time.March, 29), goodFriday(2024))
	assert.Equal(t, date(2024, time.April, 1), familyDay(2024))
}

func TestFloatingHolidaysAreNotWorkingDays(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		assert.False(t, IsWorkingDay(goodFriday(year)), "good friday %d", year)
		assert.False(t, IsWorkingDay(familyDay(year)), "family day %d", year)
	}
}

func TestNoObservedHolidayShifting(t *testing.T) {
	// Human Rights Day 2026 falls on a Saturday; the following Monday is an
	// ordinary working day because no observed-holiday shifting is applied.
	assert.Equal(t, time.Saturday, date(2026, time.March, 21).Weekday())
	assert.True(t, IsWorkingDay(date(2026, time.March, 23)))
}
