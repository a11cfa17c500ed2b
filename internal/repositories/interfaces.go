package repositories

import (
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense repository
// operations. Every read is user-scoped; the analytics methods return rows
// sorted by date descending with the Category association preloaded, which
// the analytics services rely on as a precondition.
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id, userID uuid.UUID) (*models.Expense, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error)
	Update(expense *models.Expense) error
	Delete(id, userID uuid.UUID) error

	// GetByDateRange returns expenses with date in [startDate, endDate],
	// both bounds inclusive.
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error)

	// GetRecent returns the most recently dated expenses, ties broken by
	// creation time descending.
	GetRecent(userID uuid.UUID, limit int) ([]models.Expense, error)

	// GetRecentByTitle returns the most recent expenses whose title matches
	// case-insensitively, newest first. Used by recurring detection.
	GetRecentByTitle(userID uuid.UUID, title string, limit int) ([]models.Expense, error)

	// GetRecurring returns all expenses flagged as recurring.
	GetRecurring(userID uuid.UUID) ([]models.Expense, error)
}

// BudgetRepositoryInterface defines the contract for budget repository
// operations. The (user, month) uniqueness invariant is enforced here.
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetByID(id, userID uuid.UUID) (*models.Budget, error)
	GetByUserID(userID uuid.UUID) ([]models.Budget, error)
	GetByMonth(userID uuid.UUID, month time.Time) (*models.Budget, error)
	GetByYear(userID uuid.UUID, year int) ([]models.Budget, error)
	Delete(id, userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id, userID uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	GetByName(userID uuid.UUID, name string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id, userID uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateLastLogin(userID uuid.UUID) error
}
