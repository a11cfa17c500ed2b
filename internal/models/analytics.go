package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trend directions for period-over-period comparisons.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// DashboardPeriod describes the reference window the dashboard summary was
// computed over.
type DashboardPeriod struct {
	CurrentMonth string `json:"current_month"`
	MonthName    string `json:"month_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DaysInMonth  int    `json:"days_in_month"`
	DaysPassed   int    `json:"days_passed"`
}

// DashboardSpending aggregates spend over the standard windows.
type DashboardSpending struct {
	TotalThisMonth   decimal.Decimal `json:"total_this_month"`
	TotalThisWeek    decimal.Decimal `json:"total_this_week"`
	TotalToday       decimal.Decimal `json:"total_today"`
	TransactionCount int64           `json:"transaction_count"`
	DailyAverage     decimal.Decimal `json:"daily_average"`
}

// DashboardBudget reports the current month's budget position. Pointer
// fields are nil when no budget is configured for the month.
type DashboardBudget struct {
	Amount             *decimal.Decimal `json:"amount"`
	Spent              decimal.Decimal  `json:"spent"`
	Remaining          *decimal.Decimal `json:"remaining"`
	UtilizationPercent *float64         `json:"utilization_percent"`
	DailyRecommended   *decimal.Decimal `json:"daily_recommended"`
	Status             BudgetStatus     `json:"status"`
}

// DashboardCategory is one entry of the compact category breakdown.
type DashboardCategory struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	ColorCode  string          `json:"color_code"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int64           `json:"count"`
	Percentage float64         `json:"percentage"`
}

// ExpenseListItem is the compact expense representation used by top-N and
// recent lists. Category is nil for uncategorized expenses.
type ExpenseListItem struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category *string         `json:"category"`
	Date     string          `json:"date"`
}

// DashboardComparison compares the current month against the previous one.
type DashboardComparison struct {
	LastMonthTotal decimal.Decimal `json:"last_month_total"`
	ChangeAmount   decimal.Decimal `json:"change_amount"`
	ChangePercent  float64         `json:"change_percent"`
	Trend          string          `json:"trend"`
}

// DashboardSummary is the full dashboard payload.
type DashboardSummary struct {
	Period         DashboardPeriod     `json:"period"`
	Spending       DashboardSpending   `json:"spending"`
	Budget         DashboardBudget     `json:"budget"`
	TopCategory    *DashboardCategory  `json:"top_category"`
	Categories     []DashboardCategory `json:"categories"`
	TopExpenses    []ExpenseListItem   `json:"top_expenses"`
	RecentExpenses []ExpenseListItem   `json:"recent_expenses"`
	Comparison     DashboardComparison `json:"comparison"`
}

// CategoryBreakdownItem is one slice of the per-category breakdown chart.
// ID is nil for the uncategorized bucket.
type CategoryBreakdownItem struct {
	ID         *uuid.UUID      `json:"id"`
	Name       string          `json:"name"`
	Value      decimal.Decimal `json:"value"`
	Color      string          `json:"color"`
	Count      int64           `json:"count"`
	Percentage float64         `json:"percentage"`
	Average    decimal.Decimal `json:"average"`
	Largest    decimal.Decimal `json:"largest"`
}

// CategoryBreakdownMeta describes the window and caps applied.
type CategoryBreakdownMeta struct {
	Period          string `json:"period"`
	PeriodLabel     string `json:"period_label"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	TotalCategories int    `json:"total_categories"`
	MaxCategories   int    `json:"max_categories"`
}

// CategoryBreakdownSummary carries the totals across the returned slices.
type CategoryBreakdownSummary struct {
	Total                 decimal.Decimal `json:"total"`
	TransactionCount      int64           `json:"transaction_count"`
	AveragePerTransaction decimal.Decimal `json:"average_per_transaction"`
}

// CategoryBreakdown is the full category breakdown payload.
type CategoryBreakdown struct {
	Data    []CategoryBreakdownItem  `json:"data"`
	Meta    CategoryBreakdownMeta    `json:"meta"`
	Summary CategoryBreakdownSummary `json:"summary"`
}

// WeeklyDay is one Monday-aligned daily bucket.
type WeeklyDay struct {
	Date      string          `json:"date"`
	Day       string          `json:"day"`
	DayFull   string          `json:"day_full"`
	DayNumber string          `json:"day_number"`
	Total     decimal.Decimal `json:"total"`
	Count     int64           `json:"count"`
	IsToday   bool            `json:"is_today"`
}

// WeeklyMeta describes the requested week.
type WeeklyMeta struct {
	WeekOffset    int    `json:"week_offset"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	WeekLabel     string `json:"week_label"`
	IsCurrentWeek bool   `json:"is_current_week"`
}

// WeeklySummary carries the week-level aggregates. HighestSpendingDay is nil
// when the week had no spend at all.
type WeeklySummary struct {
	Total                 decimal.Decimal `json:"total"`
	DailyAverage          decimal.Decimal `json:"daily_average"`
	TransactionCount      int64           `json:"transaction_count"`
	DaysWithSpending      int             `json:"days_with_spending"`
	HighestSpendingDay    *string         `json:"highest_spending_day"`
	HighestSpendingAmount decimal.Decimal `json:"highest_spending_amount"`
}

// WeeklySpending is the full weekly payload, always exactly seven days,
// Monday through Sunday.
type WeeklySpending struct {
	Days    []WeeklyDay   `json:"data"`
	Meta    WeeklyMeta    `json:"meta"`
	Summary WeeklySummary `json:"summary"`
}

// MonthlyTrendPoint is one monthly bucket of the trend series.
type MonthlyTrendPoint struct {
	Month             string          `json:"month"`
	MonthShort        string          `json:"month_short"`
	MonthName         string          `json:"month_name"`
	Total             decimal.Decimal `json:"total"`
	Count             int64           `json:"count"`
	AveragePerExpense decimal.Decimal `json:"average_per_expense"`
	LargestExpense    decimal.Decimal `json:"largest_expense"`
	SmallestExpense   decimal.Decimal `json:"smallest_expense"`
}

// MonthlyTrendMeta describes the clamped request bounds.
type MonthlyTrendMeta struct {
	MonthsRequested int     `json:"months_requested"`
	MonthsReturned  int     `json:"months_returned"`
	MaxMonths       int     `json:"max_months_allowed"`
	StartMonth      *string `json:"start_month"`
	EndMonth        *string `json:"end_month"`
}

// MonthlyTrendSummary carries series-level aggregates and the trend of the
// last two buckets.
type MonthlyTrendSummary struct {
	GrandTotal     decimal.Decimal `json:"grand_total"`
	MonthlyAverage decimal.Decimal `json:"monthly_average"`
	Trend          string          `json:"trend"`
	ChangeAmount   decimal.Decimal `json:"change_amount"`
	ChangePercent  float64         `json:"change_percent"`
	HighestMonth   *string         `json:"highest_month"`
	HighestAmount  decimal.Decimal `json:"highest_amount"`
	LowestMonth    *string         `json:"lowest_month"`
	LowestAmount   decimal.Decimal `json:"lowest_amount"`
}

// MonthlyTrend is the full monthly trend payload.
type MonthlyTrend struct {
	Points  []MonthlyTrendPoint `json:"data"`
	Meta    MonthlyTrendMeta    `json:"meta"`
	Summary MonthlyTrendSummary `json:"summary"`
}
