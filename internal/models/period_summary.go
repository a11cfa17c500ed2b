package models

import "github.com/shopspring/decimal"

// PeriodSummary compares spend against budget for one calendar-aligned
// window. Values are recomputed on every request and never cached.
type PeriodSummary struct {
	Period             string          `json:"period"`
	Expense            decimal.Decimal `json:"expense"`
	Budget             decimal.Decimal `json:"budget"`
	PercentageConsumed float64         `json:"percentage_consumed"`
	Status             BudgetStatus    `json:"status"`
}

// BudgetAlerts holds the per-period summaries for the four standard windows.
type BudgetAlerts struct {
	Day   PeriodSummary `json:"day"`
	Week  PeriodSummary `json:"week"`
	Month PeriodSummary `json:"month"`
	Year  PeriodSummary `json:"year"`
}
