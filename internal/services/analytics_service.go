package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	dashboardCategoryLimit = 5
	dashboardExpenseLimit  = 5
	breakdownCategoryLimit = 10

	// trendLookbackDaysPerMonth sizes the trend query window: 31 days per
	// requested month comfortably covers N calendar months without a
	// month-arithmetic round trip.
	trendLookbackDaysPerMonth = 31
)

type analyticsService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
	now         func() time.Time
}

// NewAnalyticsService creates the period aggregation service. All methods
// are read-only over repository snapshots; for the same snapshot and clock
// they return identical results.
func NewAnalyticsService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) AnalyticsServiceInterface {
	return &analyticsService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		now:         time.Now,
	}
}

func (s *analyticsService) GetDashboardSummary(userID uuid.UUID) (*models.DashboardSummary, error) {
	today := DateOnly(s.now())
	monthStart, monthEnd := MonthBounds(today)
	weekStart, _ := WeekRange(today, 0)
	prevMonthStart, prevMonthEnd := MonthBounds(monthStart.AddDate(0, 0, -1))

	monthExpenses, err := s.expenseRepo.GetByDateRange(userID, monthStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load current month expenses: %w", err)
	}
	weekExpenses, err := s.expenseRepo.GetByDateRange(userID, weekStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load current week expenses: %w", err)
	}
	prevMonthExpenses, err := s.expenseRepo.GetByDateRange(userID, prevMonthStart, prevMonthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous month expenses: %w", err)
	}

	monthTotal := sumAmounts(monthExpenses)
	weekTotal := sumAmounts(weekExpenses)
	todayTotal := sumAmountsOn(monthExpenses, today)
	prevMonthTotal := sumAmounts(prevMonthExpenses)

	daysInMonth := DaysInMonth(today)
	daysPassed := today.Day()

	dailyAverage := decimal.Zero
	if daysPassed > 0 {
		dailyAverage = monthTotal.Div(decimal.NewFromInt(int64(daysPassed))).Round(2)
	}

	budget, err := s.buildDashboardBudget(userID, today, monthTotal, daysInMonth, daysPassed)
	if err != nil {
		return nil, err
	}

	categories := dashboardCategories(monthExpenses, monthTotal)
	var topCategory *models.DashboardCategory
	if len(categories) > 0 {
		topCategory = &categories[0]
	}
	if len(categories) > dashboardCategoryLimit {
		categories = categories[:dashboardCategoryLimit]
	}

	changeAmount, changePercent := Change(monthTotal, prevMonthTotal)

	summary := &models.DashboardSummary{
		Period: models.DashboardPeriod{
			CurrentMonth: today.Format("2006-01"),
			MonthName:    today.Format("January 2006"),
			StartDate:    monthStart.Format("2006-01-02"),
			EndDate:      monthEnd.Format("2006-01-02"),
			DaysInMonth:  daysInMonth,
			DaysPassed:   daysPassed,
		},
		Spending: models.DashboardSpending{
			TotalThisMonth:   monthTotal.Round(2),
			TotalThisWeek:    weekTotal.Round(2),
			TotalToday:       todayTotal.Round(2),
			TransactionCount: int64(len(monthExpenses)),
			DailyAverage:     dailyAverage,
		},
		Budget:         budget,
		TopCategory:    topCategory,
		Categories:     categories,
		TopExpenses:    topExpenseItems(monthExpenses, dashboardExpenseLimit),
		RecentExpenses: recentExpenseItems(monthExpenses, dashboardExpenseLimit),
		Comparison: models.DashboardComparison{
			LastMonthTotal: prevMonthTotal.Round(2),
			ChangeAmount:   changeAmount,
			ChangePercent:  changePercent,
			Trend:          Trend(monthTotal, prevMonthTotal, DefaultTrendThresholdPercent),
		},
	}

	slog.Debug("dashboard summary generated",
		"user_id", userID,
		"month", summary.Period.CurrentMonth,
		"transaction_count", summary.Spending.TransactionCount)

	return summary, nil
}

func (s *analyticsService) buildDashboardBudget(
	userID uuid.UUID,
	today time.Time,
	spent decimal.Decimal,
	daysInMonth, daysPassed int,
) (models.DashboardBudget, error) {
	budget, err := s.budgetRepo.GetByMonth(userID, today)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return models.DashboardBudget{
				Spent:  spent.Round(2),
				Status: models.BudgetStatusNoBudgetSet,
			}, nil
		}
		return models.DashboardBudget{}, fmt.Errorf("failed to load monthly budget: %w", err)
	}

	amount := budget.Amount.Round(2)
	remaining := amount.Sub(spent).Round(2)
	utilization := Percentage(spent, amount)

	daysRemaining := daysInMonth - daysPassed + 1
	dailyRecommended := decimal.Zero
	if daysRemaining > 0 && remaining.GreaterThan(decimal.Zero) {
		dailyRecommended = remaining.Div(decimal.NewFromInt(int64(daysRemaining))).Round(2)
	}

	return models.DashboardBudget{
		Amount:             &amount,
		Spent:              spent.Round(2),
		Remaining:          &remaining,
		UtilizationPercent: &utilization,
		DailyRecommended:   &dailyRecommended,
		Status:             models.ClassifyBudgetStatus(spent, amount, utilization, true),
	}, nil
}

func (s *analyticsService) GetCategoryBreakdown(userID uuid.UUID, monthSelector string) (*models.CategoryBreakdown, error) {
	today := DateOnly(s.now())

	month := today
	if monthSelector != "" {
		parsed, err := ParseMonthString(monthSelector)
		if err != nil {
			return nil, err
		}
		month = parsed
	}

	start, end := MonthBounds(month)
	// The current month is reported to date, not through its future days.
	if start.Equal(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)) {
		end = today
	}

	expenses, err := s.expenseRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for breakdown: %w", err)
	}

	total := sumAmounts(expenses)
	items := breakdownItems(expenses, total)
	totalCategories := len(items)
	if len(items) > breakdownCategoryLimit {
		items = items[:breakdownCategoryLimit]
	}

	averagePerTransaction := decimal.Zero
	if len(expenses) > 0 {
		averagePerTransaction = total.Div(decimal.NewFromInt(int64(len(expenses)))).Round(2)
	}

	return &models.CategoryBreakdown{
		Data: items,
		Meta: models.CategoryBreakdownMeta{
			Period:          month.Format("2006-01"),
			PeriodLabel:     month.Format("January 2006"),
			StartDate:       start.Format("2006-01-02"),
			EndDate:         end.Format("2006-01-02"),
			TotalCategories: totalCategories,
			MaxCategories:   breakdownCategoryLimit,
		},
		Summary: models.CategoryBreakdownSummary{
			Total:                 total.Round(2),
			TransactionCount:      int64(len(expenses)),
			AveragePerTransaction: averagePerTransaction,
		},
	}, nil
}

func (s *analyticsService) GetWeeklySpending(userID uuid.UUID, weekOffset int) (*models.WeeklySpending, error) {
	offset := ClampWeekOffset(weekOffset)
	today := DateOnly(s.now())
	monday, sunday := WeekRange(today, offset)

	expenses, err := s.expenseRepo.GetByDateRange(userID, monday, sunday)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly expenses: %w", err)
	}

	days := make([]models.WeeklyDay, 0, 7)
	weekTotal := decimal.Zero
	daysWithSpending := 0
	highestIdx := -1

	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		dayTotal := sumAmountsOn(expenses, date)
		dayCount := countOn(expenses, date)

		days = append(days, models.WeeklyDay{
			Date:      date.Format("2006-01-02"),
			Day:       date.Format("Mon"),
			DayFull:   date.Format("Monday"),
			DayNumber: date.Format("2"),
			Total:     dayTotal.Round(2),
			Count:     dayCount,
			IsToday:   date.Equal(today),
		})

		weekTotal = weekTotal.Add(dayTotal)
		if dayTotal.GreaterThan(decimal.Zero) {
			daysWithSpending++
		}
		// Strict comparison keeps the first day on ties.
		if dayTotal.GreaterThan(decimal.Zero) && (highestIdx < 0 || dayTotal.GreaterThan(days[highestIdx].Total)) {
			highestIdx = i
		}
	}

	summary := models.WeeklySummary{
		Total:            weekTotal.Round(2),
		DailyAverage:     weekTotal.Div(decimal.NewFromInt(7)).Round(2),
		TransactionCount: int64(len(expenses)),
		DaysWithSpending: daysWithSpending,
	}
	if highestIdx >= 0 {
		dayName := days[highestIdx].DayFull
		summary.HighestSpendingDay = &dayName
		summary.HighestSpendingAmount = days[highestIdx].Total
	}

	return &models.WeeklySpending{
		Days: days,
		Meta: models.WeeklyMeta{
			WeekOffset:    offset,
			StartDate:     monday.Format("2006-01-02"),
			EndDate:       sunday.Format("2006-01-02"),
			WeekLabel:     fmt.Sprintf("%s - %s", monday.Format("Jan 2"), sunday.Format("Jan 2, 2006")),
			IsCurrentWeek: offset == 0,
		},
		Summary: summary,
	}, nil
}

func (s *analyticsService) GetMonthlyTrend(userID uuid.UUID, months int) (*models.MonthlyTrend, error) {
	requested := months
	clamped := ClampMonthsCount(months)
	today := DateOnly(s.now())

	historyStart := today.AddDate(0, 0, -clamped*trendLookbackDaysPerMonth)
	expenses, err := s.expenseRepo.GetByDateRange(userID, historyStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense history: %w", err)
	}

	points := monthlyBuckets(expenses)
	if len(points) > clamped {
		points = points[len(points)-clamped:]
	}

	meta := models.MonthlyTrendMeta{
		MonthsRequested: requested,
		MonthsReturned:  len(points),
		MaxMonths:       MaxMonthsCount,
	}

	summary := models.MonthlyTrendSummary{Trend: models.TrendStable}

	if len(points) > 0 {
		meta.StartMonth = &points[0].Month
		meta.EndMonth = &points[len(points)-1].Month

		grand := decimal.Zero
		highestIdx, lowestIdx := 0, 0
		for i, p := range points {
			grand = grand.Add(p.Total)
			if p.Total.GreaterThan(points[highestIdx].Total) {
				highestIdx = i
			}
			if p.Total.LessThan(points[lowestIdx].Total) {
				lowestIdx = i
			}
		}

		summary.GrandTotal = grand.Round(2)
		summary.MonthlyAverage = grand.Div(decimal.NewFromInt(int64(len(points)))).Round(2)
		summary.HighestMonth = &points[highestIdx].Month
		summary.HighestAmount = points[highestIdx].Total
		summary.LowestMonth = &points[lowestIdx].Month
		summary.LowestAmount = points[lowestIdx].Total

		if len(points) >= 2 {
			current := points[len(points)-1].Total
			previous := points[len(points)-2].Total
			summary.ChangeAmount, summary.ChangePercent = Change(current, previous)
			summary.Trend = Trend(current, previous, DefaultTrendThresholdPercent)
		}
	}

	return &models.MonthlyTrend{
		Points:  points,
		Meta:    meta,
		Summary: summary,
	}, nil
}

// aggregation helpers

func sumAmounts(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

func sumAmountsOn(expenses []models.Expense, date time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if DateOnly(e.Date).Equal(date) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

func countOn(expenses []models.Expense, date time.Time) int64 {
	var count int64
	for _, e := range expenses {
		if DateOnly(e.Date).Equal(date) {
			count++
		}
	}
	return count
}

type categoryAggregate struct {
	id      *uuid.UUID
	name    string
	color   string
	total   decimal.Decimal
	count   int64
	largest decimal.Decimal
}

func aggregateByCategory(expenses []models.Expense) []categoryAggregate {
	byKey := make(map[string]*categoryAggregate)
	order := make([]string, 0)

	for _, e := range expenses {
		key := models.UncategorizedLabel
		name := models.UncategorizedLabel
		color := models.UncategorizedColor
		var id *uuid.UUID
		if e.Category != nil {
			key = e.Category.ID.String()
			name = e.Category.Name
			color = e.Category.ColorCode
			categoryID := e.Category.ID
			id = &categoryID
		}

		agg, ok := byKey[key]
		if !ok {
			agg = &categoryAggregate{id: id, name: name, color: color, total: decimal.Zero, largest: decimal.Zero}
			byKey[key] = agg
			order = append(order, key)
		}
		agg.total = agg.total.Add(e.Amount)
		agg.count++
		if e.Amount.GreaterThan(agg.largest) {
			agg.largest = e.Amount
		}
	}

	aggregates := make([]categoryAggregate, 0, len(order))
	for _, key := range order {
		aggregates = append(aggregates, *byKey[key])
	}
	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].total.GreaterThan(aggregates[j].total)
	})
	return aggregates
}

func dashboardCategories(expenses []models.Expense, total decimal.Decimal) []models.DashboardCategory {
	aggregates := aggregateByCategory(expenses)
	categories := make([]models.DashboardCategory, 0, len(aggregates))
	for _, agg := range aggregates {
		category := models.DashboardCategory{
			Name:       agg.name,
			ColorCode:  agg.color,
			Amount:     agg.total.Round(2),
			Count:      agg.count,
			Percentage: Percentage(agg.total, total),
		}
		if agg.id != nil {
			category.ID = *agg.id
		}
		categories = append(categories, category)
	}
	return categories
}

func breakdownItems(expenses []models.Expense, total decimal.Decimal) []models.CategoryBreakdownItem {
	aggregates := aggregateByCategory(expenses)
	items := make([]models.CategoryBreakdownItem, 0, len(aggregates))
	for _, agg := range aggregates {
		average := decimal.Zero
		if agg.count > 0 {
			average = agg.total.Div(decimal.NewFromInt(agg.count)).Round(2)
		}
		items = append(items, models.CategoryBreakdownItem{
			ID:         agg.id,
			Name:       agg.name,
			Value:      agg.total.Round(2),
			Color:      agg.color,
			Count:      agg.count,
			Percentage: Percentage(agg.total, total),
			Average:    average,
			Largest:    agg.largest.Round(2),
		})
	}
	return items
}

func topExpenseItems(expenses []models.Expense, limit int) []models.ExpenseListItem {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return expenseItems(sorted)
}

// recentExpenseItems relies on the repository's date-descending ordering.
func recentExpenseItems(expenses []models.Expense, limit int) []models.ExpenseListItem {
	if len(expenses) > limit {
		expenses = expenses[:limit]
	}
	return expenseItems(expenses)
}

func expenseItems(expenses []models.Expense) []models.ExpenseListItem {
	items := make([]models.ExpenseListItem, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, models.ExpenseListItem{
			ID:       e.ID,
			Title:    e.Title,
			Amount:   e.Amount.Round(2),
			Category: e.CategoryName(),
			Date:     DateOnly(e.Date).Format("2006-01-02"),
		})
	}
	return items
}

func monthlyBuckets(expenses []models.Expense) []models.MonthlyTrendPoint {
	type bucket struct {
		month    time.Time
		total    decimal.Decimal
		count    int64
		largest  decimal.Decimal
		smallest decimal.Decimal
	}

	byMonth := make(map[string]*bucket)
	for _, e := range expenses {
		monthStart := time.Date(e.Date.Year(), e.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		key := monthStart.Format("2006-01")
		b, ok := byMonth[key]
		if !ok {
			b = &bucket{month: monthStart, total: decimal.Zero, largest: e.Amount, smallest: e.Amount}
			byMonth[key] = b
		}
		b.total = b.total.Add(e.Amount)
		b.count++
		if e.Amount.GreaterThan(b.largest) {
			b.largest = e.Amount
		}
		if e.Amount.LessThan(b.smallest) {
			b.smallest = e.Amount
		}
	}

	buckets := make([]*bucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].month.Before(buckets[j].month)
	})

	points := make([]models.MonthlyTrendPoint, 0, len(buckets))
	for _, b := range buckets {
		average := decimal.Zero
		if b.count > 0 {
			average = b.total.Div(decimal.NewFromInt(b.count)).Round(2)
		}
		points = append(points, models.MonthlyTrendPoint{
			Month:             b.month.Format("2006-01"),
			MonthShort:        b.month.Format("Jan"),
			MonthName:         b.month.Format("January 2006"),
			Total:             b.total.Round(2),
			Count:             b.count,
			AveragePerExpense: average,
			LargestExpense:    b.largest.Round(2),
			SmallestExpense:   b.smallest.Round(2),
		})
	}
	return points
}
