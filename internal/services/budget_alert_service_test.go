package services

import (
	"errors"
	"testing"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetAlertServiceSuite defines the test suite for BudgetAlertServiceInterface
type BudgetAlertServiceSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	expenseRepo *repository_mocks.MockExpenseRepositoryInterface
	budgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	service     *budgetAlertService
	testUserID  uuid.UUID
	today       time.Time
	yearStart   time.Time
}

// SetupTest runs before each test in the suite
func (s *BudgetAlertServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.budgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)

	s.service = NewBudgetAlertService(s.expenseRepo, s.budgetRepo).(*budgetAlertService)
	// Wednesday 2025-06-18: week runs 06-16 through 06-22.
	s.today = time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.today }

	s.testUserID = uuid.New()
	s.yearStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

// TearDownTest runs after each test in the suite
func (s *BudgetAlertServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetAlertServiceSuite runs the test suite
func TestBudgetAlertServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetAlertServiceSuite))
}

func (s *BudgetAlertServiceSuite) monthBudget(month time.Month, amount int64) models.Budget {
	return models.Budget{
		ID:     uuid.New(),
		UserID: s.testUserID,
		Month:  time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(amount),
	}
}

func (s *BudgetAlertServiceSuite) TestGetBudgetAlerts_DerivedBudgets() {
	june := s.monthBudget(time.June, 900)
	expenses := []models.Expense{
		expenseOn(s.testUserID, "Coffee", 10, s.today),
		expenseOn(s.testUserID, "Groceries", 50, s.today.AddDate(0, 0, -1)),
		expenseOn(s.testUserID, "Cinema", 40, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)),
		expenseOn(s.testUserID, "Flight", 300, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)),
	}

	s.expenseRepo.EXPECT().GetByDateRange(s.testUserID, s.yearStart, s.today).Return(expenses, nil)
	s.budgetRepo.EXPECT().GetByMonth(s.testUserID, s.today).Return(&june, nil)
	s.budgetRepo.EXPECT().GetByYear(s.testUserID, 2025).Return([]models.Budget{
		s.monthBudget(time.February, 800),
		june,
	}, nil)

	alerts, err := s.service.GetBudgetAlerts(s.testUserID)
	s.Require().NoError(err)

	// Daily budget is the monthly figure spread over the month's days.
	s.Equal("30", alerts.Day.Budget.String())
	s.Equal("10", alerts.Day.Expense.String())
	s.Equal(models.BudgetStatusWithinBudget, alerts.Day.Status)

	// Weekly budget uses the fixed 4.3 weeks-per-month divisor.
	s.Equal("209.3", alerts.Week.Budget.String())
	s.Equal("60", alerts.Week.Expense.String())

	s.Equal("900", alerts.Month.Budget.String())
	s.Equal("100", alerts.Month.Expense.String())
	s.Equal(11.1, alerts.Month.PercentageConsumed)

	// Yearly budget is the sum of the year's rows, not a twelve-month projection.
	s.Equal("1700", alerts.Year.Budget.String())
	s.Equal("400", alerts.Year.Expense.String())
	s.Equal(models.BudgetStatusWithinBudget, alerts.Year.Status)
}

func (s *BudgetAlertServiceSuite) TestGetBudgetAlerts_NoBudgets() {
	expenses := []models.Expense{
		expenseOn(s.testUserID, "Coffee", 25, s.today),
	}
	s.expenseRepo.EXPECT().GetByDateRange(s.testUserID, s.yearStart, s.today).Return(expenses, nil)
	s.budgetRepo.EXPECT().GetByMonth(s.testUserID, s.today).Return(nil, repositories.ErrBudgetNotFound)
	s.budgetRepo.EXPECT().GetByYear(s.testUserID, 2025).Return([]models.Budget{}, nil)

	alerts, err := s.service.GetBudgetAlerts(s.testUserID)
	s.Require().NoError(err)

	for _, period := range []models.PeriodSummary{alerts.Day, alerts.Week, alerts.Month, alerts.Year} {
		s.Equal(models.BudgetStatusNoBudgetSet, period.Status, "period %s", period.Period)
		s.Equal("0", period.Budget.String())
		s.Equal(0.0, period.PercentageConsumed)
	}
	s.Equal("25", alerts.Day.Expense.String())
	s.Equal("25", alerts.Year.Expense.String())
}

func (s *BudgetAlertServiceSuite) TestGetBudgetAlerts_OverAndWarning() {
	june := s.monthBudget(time.June, 100)
	expenses := []models.Expense{
		// day spend 50 against a 3.33 daily budget: over budget
		expenseOn(s.testUserID, "Gadget", 50, s.today),
		expenseOn(s.testUserID, "Groceries", 35, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	}
	s.expenseRepo.EXPECT().GetByDateRange(s.testUserID, s.yearStart, s.today).Return(expenses, nil)
	s.budgetRepo.EXPECT().GetByMonth(s.testUserID, s.today).Return(&june, nil)
	s.budgetRepo.EXPECT().GetByYear(s.testUserID, 2025).Return([]models.Budget{june}, nil)

	alerts, err := s.service.GetBudgetAlerts(s.testUserID)
	s.Require().NoError(err)

	s.Equal(models.BudgetStatusOverBudget, alerts.Day.Status)
	// month spend 85 of 100 crosses the 80% warning threshold
	s.Equal(models.BudgetStatusWarning, alerts.Month.Status)
	s.Equal(85.0, alerts.Month.PercentageConsumed)
	s.Equal(models.BudgetStatusWarning, alerts.Year.Status)
}

func (s *BudgetAlertServiceSuite) TestGetBudgetAlerts_SpendEqualToBudgetIsWarning() {
	june := s.monthBudget(time.June, 100)
	expenses := []models.Expense{
		expenseOn(s.testUserID, "Groceries", 100, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	}
	s.expenseRepo.EXPECT().GetByDateRange(s.testUserID, s.yearStart, s.today).Return(expenses, nil)
	s.budgetRepo.EXPECT().GetByMonth(s.testUserID, s.today).Return(&june, nil)
	s.budgetRepo.EXPECT().GetByYear(s.testUserID, 2025).Return([]models.Budget{june}, nil)

	alerts, err := s.service.GetBudgetAlerts(s.testUserID)
	s.Require().NoError(err)

	// spending exactly the budget is not over budget; 100% utilization is warning
	s.Equal(models.BudgetStatusWarning, alerts.Month.Status)
	s.Equal(100.0, alerts.Month.PercentageConsumed)
}

func (s *BudgetAlertServiceSuite) TestGetBudgetAlerts_RepositoryError() {
	s.expenseRepo.EXPECT().
		GetByDateRange(s.testUserID, s.yearStart, s.today).
		Return(nil, errors.New("pq: connection refused"))

	_, err := s.service.GetBudgetAlerts(s.testUserID)
	s.Error(err)
}
