package services

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetAlertService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
	now         func() time.Time
}

// NewBudgetAlertService creates the budget reconciliation service. The
// daily and weekly budgets are derived from the monthly figure; the yearly
// budget is the sum of the year's monthly budget rows, never a projection.
func NewBudgetAlertService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) BudgetAlertServiceInterface {
	return &budgetAlertService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		now:         time.Now,
	}
}

func (s *budgetAlertService) GetBudgetAlerts(userID uuid.UUID) (*models.BudgetAlerts, error) {
	today := DateOnly(s.now())
	weekStart, _ := WeekRange(today, 0)
	monthStart, _ := MonthBounds(today)
	yearStart, _ := YearBounds(today)

	yearExpenses, err := s.expenseRepo.GetByDateRange(userID, yearStart, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for budget alerts: %w", err)
	}

	daySpend := decimal.Zero
	weekSpend := decimal.Zero
	monthSpend := decimal.Zero
	yearSpend := decimal.Zero
	for _, e := range yearExpenses {
		date := DateOnly(e.Date)
		yearSpend = yearSpend.Add(e.Amount)
		if !date.Before(monthStart) {
			monthSpend = monthSpend.Add(e.Amount)
		}
		if !date.Before(weekStart) {
			weekSpend = weekSpend.Add(e.Amount)
		}
		if date.Equal(today) {
			daySpend = daySpend.Add(e.Amount)
		}
	}

	monthlyBudget, hasMonthly, err := s.monthlyBudget(userID, today)
	if err != nil {
		return nil, err
	}
	yearlyBudget, hasYearly, err := s.yearlyBudget(userID, today.Year())
	if err != nil {
		return nil, err
	}

	dailyBudget := decimal.Zero
	weeklyBudget := decimal.Zero
	if hasMonthly {
		if days := DaysInMonth(today); days > 0 {
			dailyBudget = monthlyBudget.Div(decimal.NewFromInt(int64(days))).Round(2)
		}
		weeklyBudget = monthlyBudget.Div(decimal.NewFromFloat(WeeksPerMonth)).Round(2)
	}

	return &models.BudgetAlerts{
		Day:   buildPeriodSummary("day", daySpend, dailyBudget, hasMonthly),
		Week:  buildPeriodSummary("week", weekSpend, weeklyBudget, hasMonthly),
		Month: buildPeriodSummary("month", monthSpend, monthlyBudget, hasMonthly),
		Year:  buildPeriodSummary("year", yearSpend, yearlyBudget, hasYearly),
	}, nil
}

func (s *budgetAlertService) monthlyBudget(userID uuid.UUID, month time.Time) (decimal.Decimal, bool, error) {
	budget, err := s.budgetRepo.GetByMonth(userID, month)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("failed to load monthly budget: %w", err)
	}
	return budget.Amount, true, nil
}

func (s *budgetAlertService) yearlyBudget(userID uuid.UUID, year int) (decimal.Decimal, bool, error) {
	budgets, err := s.budgetRepo.GetByYear(userID, year)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("failed to load yearly budgets: %w", err)
	}
	if len(budgets) == 0 {
		return decimal.Zero, false, nil
	}
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Amount)
	}
	return total, true, nil
}

func buildPeriodSummary(period string, spend, budget decimal.Decimal, hasBudget bool) models.PeriodSummary {
	utilization := Percentage(spend, budget)
	return models.PeriodSummary{
		Period:             period,
		Expense:            spend.Round(2),
		Budget:             budget.Round(2),
		PercentageConsumed: utilization,
		Status:             models.ClassifyBudgetStatus(spend, budget, utilization, hasBudget),
	}
}
