package services

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/validation"
)

// ErrInvalidMonthString reports a month selector that is not a well-formed
// YYYY-MM within the supported year range.
var ErrInvalidMonthString = errors.New("invalid month format, expected YYYY-MM")

// ParseMonthString parses a YYYY-MM selector into the first day of that
// month in UTC. Malformed or out-of-range selectors are rejected, never
// silently corrected.
func ParseMonthString(selector string) (time.Time, error) {
	if !validation.IsValidMonthString(selector) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthString, selector)
	}
	month, err := time.Parse("2006-01", selector)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonthString, selector)
	}
	return month.UTC(), nil
}

// MonthBounds returns the first and last day of the month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// YearBounds returns January 1 and December 31 of the year containing t.
func YearBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), 12, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// WeekRange returns the Monday and Sunday of the week `offset` weeks away
// from the week containing reference. Weeks start on Monday.
func WeekRange(reference time.Time, offset int) (time.Time, time.Time) {
	day := DateOnly(reference)
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	sinceMonday := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -sinceMonday+offset*7)
	sunday := monday.AddDate(0, 0, 6)
	return monday, sunday
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOnly strips the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
