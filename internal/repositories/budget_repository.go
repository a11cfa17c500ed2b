package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget for (user, month) or updates its amount. The
// month is normalized to the first of the month by the model's BeforeSave
// hook; uniqueness rides on the composite index.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
	}).Create(budget).Error
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID, scoped to its owner
func (r *budgetRepository) GetByID(id, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetByUserID retrieves all budgets for a user, newest month first
func (r *budgetRepository) GetByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ?", userID).
		Order("month DESC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByMonth retrieves the single budget for a calendar month
func (r *budgetRepository) GetByMonth(userID uuid.UUID, month time.Time) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("user_id = ? AND month = ?", userID, models.NormalizeMonth(month)).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget for month: %w", err)
	}
	return &budget, nil
}

// GetByYear retrieves all budgets whose month falls in a calendar year
func (r *budgetRepository) GetByYear(userID uuid.UUID, year int) ([]models.Budget, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC)

	var budgets []models.Budget
	if err := r.db.Where("user_id = ? AND month >= ? AND month <= ?", userID, start, end).
		Order("month ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets for year: %w", err)
	}
	return budgets, nil
}

// Delete removes a budget, scoped to its owner
func (r *budgetRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
