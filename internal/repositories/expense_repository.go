package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID, scoped to its owner
func (r *expenseRepository) GetByID(id, userID uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetByUserID retrieves a user's expenses with pagination
func (r *expenseRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, total, nil
}

// Update persists changes to an existing expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]interface{}{
			"category_id":         expense.CategoryID,
			"title":               expense.Title,
			"amount":              expense.Amount,
			"date":                expense.Date,
			"description":         expense.Description,
			"is_recurring":        expense.IsRecurring,
			"recurring_frequency": expense.RecurringFrequency,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense, scoped to its owner
func (r *expenseRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// GetByDateRange retrieves expenses with date in [startDate, endDate]
func (r *expenseRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}
	return expenses, nil
}

// GetRecent retrieves the most recently dated expenses
func (r *expenseRepository) GetRecent(userID uuid.UUID, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}
	return expenses, nil
}

// GetRecentByTitle retrieves the most recent same-title expenses,
// case-insensitively, newest first
func (r *expenseRepository) GetRecentByTitle(userID uuid.UUID, title string, limit int) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.
		Where("user_id = ? AND LOWER(title) = LOWER(?)", userID, title).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by title: %w", err)
	}
	return expenses, nil
}

// GetRecurring retrieves all recurring-flagged expenses for a user
func (r *expenseRepository) GetRecurring(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Preload("Category").
		Where("user_id = ? AND is_recurring = ?", userID, true).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get recurring expenses: %w", err)
	}
	return expenses, nil
}
