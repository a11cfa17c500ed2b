package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthString(t *testing.T) {
	t.Run("valid selectors", func(t *testing.T) {
		month, err := ParseMonthString("2025-06")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), month)

		month, err = ParseMonthString("2000-01")
		require.NoError(t, err)
		assert.Equal(t, 2000, month.Year())

		month, err = ParseMonthString("2100-12")
		require.NoError(t, err)
		assert.Equal(t, time.December, month.Month())
	})

	t.Run("rejected selectors", func(t *testing.T) {
		invalid := []string{
			"",
			"1999-12",
			"2101-01",
			"2025-13",
			"2025-00",
			"2025-6",
			"202506",
			"2025/06",
			"garbage",
			"2025-06-15",
		}
		for _, selector := range invalid {
			_, err := ParseMonthString(selector)
			assert.ErrorIs(t, err, ErrInvalidMonthString, "selector %q", selector)
		}
	})
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-02-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-02-28", end.Format("2006-01-02"))

	// leap year
	start, end = MonthBounds(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-29", end.Format("2006-01-02"))
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
}

func TestWeekRange(t *testing.T) {
	// 2025-06-18 is a Wednesday
	wednesday := time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)

	monday, sunday := WeekRange(wednesday, 0)
	assert.Equal(t, "2025-06-16", monday.Format("2006-01-02"))
	assert.Equal(t, "2025-06-22", sunday.Format("2006-01-02"))
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, time.Sunday, sunday.Weekday())

	monday, sunday = WeekRange(wednesday, -1)
	assert.Equal(t, "2025-06-09", monday.Format("2006-01-02"))
	assert.Equal(t, "2025-06-15", sunday.Format("2006-01-02"))

	// A Sunday belongs to the week that started the previous Monday
	sundayRef := time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC)
	monday, _ = WeekRange(sundayRef, 0)
	assert.Equal(t, "2025-06-16", monday.Format("2006-01-02"))

	// A Monday starts its own week
	mondayRef := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	monday, sunday = WeekRange(mondayRef, 0)
	assert.Equal(t, "2025-06-16", monday.Format("2006-01-02"))
	assert.Equal(t, "2025-06-22", sunday.Format("2006-01-02"))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2025, 6, 18, 23, 59, 59, 999, time.FixedZone("X", 3600))
	day := DateOnly(ts)
	assert.Equal(t, time.UTC, day.Location())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 18, day.Day())
}
