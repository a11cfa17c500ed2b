package services

import (
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"

	"github.com/google/uuid"
)

// RecurringDetectionServiceInterface infers recurring billing patterns from
// a user's expense history.
type RecurringDetectionServiceInterface interface {
	// Detect analyzes the gap between the candidate expense and the most
	// recent prior expense with the same title. The verdict is advisory:
	// callers decide what to do with it.
	Detect(userID uuid.UUID, title string, date time.Time) (models.DetectionResult, error)
}

// AnalyticsServiceInterface provides the period aggregation views.
type AnalyticsServiceInterface interface {
	GetDashboardSummary(userID uuid.UUID) (*models.DashboardSummary, error)

	// GetCategoryBreakdown aggregates per category for one calendar month.
	// monthSelector is YYYY-MM; empty means the current month to date.
	GetCategoryBreakdown(userID uuid.UUID, monthSelector string) (*models.CategoryBreakdown, error)

	// GetWeeklySpending returns exactly seven Monday-through-Sunday daily
	// buckets. weekOffset counts weeks back from the current one and is
	// clamped to [-52, 0].
	GetWeeklySpending(userID uuid.UUID, weekOffset int) (*models.WeeklySpending, error)

	// GetMonthlyTrend returns the last `months` monthly buckets, clamped
	// to [1, 12] with a default of 6.
	GetMonthlyTrend(userID uuid.UUID, months int) (*models.MonthlyTrend, error)
}

// BudgetAlertServiceInterface reconciles spend against budgets over the
// four standard windows.
type BudgetAlertServiceInterface interface {
	GetBudgetAlerts(userID uuid.UUID) (*models.BudgetAlerts, error)
}

// RecurringListServiceInterface groups detected recurring expenses by cadence.
type RecurringListServiceInterface interface {
	GetRecurringExpenses(userID uuid.UUID) (*models.RecurringGroups, error)
}

// ExpenseServiceInterface defines expense CRUD business operations
type ExpenseServiceInterface interface {
	CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(userID, expenseID uuid.UUID) (*models.Expense, error)
	ListExpenses(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error)
	UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(userID, expenseID uuid.UUID) error
}

// CategoryServiceInterface defines category CRUD business operations
type CategoryServiceInterface interface {
	CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategory(userID, categoryID uuid.UUID) (*models.Category, error)
	ListCategories(userID uuid.UUID) ([]models.Category, error)
	UpdateCategory(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(userID, categoryID uuid.UUID) error
}

// BudgetServiceInterface defines budget business operations
type BudgetServiceInterface interface {
	UpsertBudget(userID uuid.UUID, req *dto.UpsertBudgetRequest) (*models.Budget, error)
	ListBudgets(userID uuid.UUID) ([]models.Budget, error)
	DeleteBudget(userID, budgetID uuid.UUID) error
}

// DemoDataServiceInterface seeds a realistic expense history for a user
type DemoDataServiceInterface interface {
	GenerateDemoData(userID uuid.UUID, months int) error
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, *models.User, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
