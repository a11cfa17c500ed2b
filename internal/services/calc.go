package services

import (
	"expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// DefaultTrendThresholdPercent is the band around zero change inside
	// which a period-over-period comparison counts as stable.
	DefaultTrendThresholdPercent = 5.0

	// DefaultMonthsCount and MaxMonthsCount bound the monthly trend window.
	DefaultMonthsCount = 6
	MaxMonthsCount     = 12

	// MaxWeeksBack bounds how far back the weekly view can be paged.
	MaxWeeksBack = 52

	// WeeksPerMonth is the fixed approximation used to derive a weekly
	// budget from a monthly one. It is never recomputed per calendar.
	WeeksPerMonth = 4.3
)

var oneHundred = decimal.NewFromInt(100)

// Percentage returns value as a percentage of total, rounded to one decimal.
// A total of zero or less yields 0 rather than a division error.
func Percentage(value, total decimal.Decimal) float64 {
	if total.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := value.Div(total).Mul(oneHundred).Round(1).Float64()
	return pct
}

// Trend classifies the movement from previous to current as up, down or
// stable. A non-positive previous value has no meaningful percent change:
// any positive current counts as up, anything else as stable. Otherwise the
// percent change is compared against ±threshold.
func Trend(current, previous decimal.Decimal, threshold float64) string {
	if previous.LessThanOrEqual(decimal.Zero) {
		if current.GreaterThan(decimal.Zero) {
			return models.TrendUp
		}
		return models.TrendStable
	}

	changePercent, _ := current.Sub(previous).Div(previous).Mul(oneHundred).Float64()
	switch {
	case changePercent > threshold:
		return models.TrendUp
	case changePercent < -threshold:
		return models.TrendDown
	default:
		return models.TrendStable
	}
}

// Change returns the absolute difference rounded to two decimals and the
// percent change rounded to one. Growing from nothing reports 100%, two
// non-positive values report 0%.
func Change(current, previous decimal.Decimal) (decimal.Decimal, float64) {
	amount := current.Sub(previous).Round(2)

	if previous.LessThanOrEqual(decimal.Zero) {
		if current.GreaterThan(decimal.Zero) {
			return amount, 100.0
		}
		return amount, 0.0
	}

	percent, _ := current.Sub(previous).Div(previous).Mul(oneHundred).Round(1).Float64()
	return amount, percent
}

// ClampWeekOffset constrains a weekly paging offset to [-MaxWeeksBack, 0].
// Future weeks are not a thing, so positive offsets collapse to 0.
func ClampWeekOffset(offset int) int {
	if offset > 0 {
		return 0
	}
	if offset < -MaxWeeksBack {
		return -MaxWeeksBack
	}
	return offset
}

// ClampMonthsCount constrains a trend window to [1, MaxMonthsCount].
// Anything below 1 falls back to the default rather than the minimum.
func ClampMonthsCount(months int) int {
	if months < 1 {
		return DefaultMonthsCount
	}
	if months > MaxMonthsCount {
		return MaxMonthsCount
	}
	return months
}

// DecimalOrDefault parses s as a decimal, substituting fallback for empty
// or unparseable input.
func DecimalOrDefault(s string, fallback decimal.Decimal) decimal.Decimal {
	if s == "" {
		return fallback
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return d
}
