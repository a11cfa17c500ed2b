package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidExpense   = errors.New("invalid expense data")
)

type expenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	detector     RecurringDetectionServiceInterface
}

// NewExpenseService creates the expense CRUD service. New expenses run
// through recurring detection before they are persisted.
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	detector RecurringDetectionServiceInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		detector:     detector,
	}
}

func (s *expenseService) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	expense, err := s.buildExpense(userID, req.Title, req.Amount, req.Date, req.CategoryID, req.Description, req.IsRecurring, req.RecurringFrequency)
	if err != nil {
		return nil, err
	}

	s.applyDetection(expense)

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("expense created",
		"user_id", userID,
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"is_recurring", expense.IsRecurring)

	return expense, nil
}

// applyDetection runs the pattern detector and, on a positive verdict,
// overrides whatever recurring flags the caller supplied. Detection
// failures never block the write; the caller's flags stand.
func (s *expenseService) applyDetection(expense *models.Expense) {
	result, err := s.detector.Detect(expense.UserID, expense.Title, expense.Date)
	if err != nil {
		slog.Warn("recurring detection failed, keeping caller flags",
			"user_id", expense.UserID,
			"title", expense.Title,
			"error", err)
		return
	}

	if result.IsRecurring {
		expense.IsRecurring = true
		expense.RecurringFrequency = result.Frequency
	}
}

func (s *expenseService) GetExpense(userID, expenseID uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(expenseID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	expenses, total, err := s.expenseRepo.GetByUserID(userID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, total, nil
}

func (s *expenseService) UpdateExpense(userID, expenseID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	existing, err := s.GetExpense(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updated, err := s.buildExpense(userID, req.Title, req.Amount, req.Date, req.CategoryID, req.Description, req.IsRecurring, req.RecurringFrequency)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.expenseRepo.Update(updated); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return s.GetExpense(userID, expenseID)
}

func (s *expenseService) DeleteExpense(userID, expenseID uuid.UUID) error {
	if err := s.expenseRepo.Delete(expenseID, userID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	slog.Info("expense deleted", "user_id", userID, "expense_id", expenseID)
	return nil
}

func (s *expenseService) buildExpense(
	userID uuid.UUID,
	title, amount, date string,
	categoryID *string,
	description string,
	isRecurring bool,
	frequency string,
) (*models.Expense, error) {
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil || !parsedAmount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive number", ErrInvalidExpense)
	}

	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidExpense)
	}

	expense := &models.Expense{
		UserID:      userID,
		Title:       title,
		Amount:      parsedAmount.Round(2),
		Date:        parsedDate.UTC(),
		Description: description,
		IsRecurring: isRecurring,
	}
	if isRecurring {
		if !models.IsValidFrequency(frequency) {
			return nil, fmt.Errorf("%w: unknown recurring frequency %q", ErrInvalidExpense, frequency)
		}
		expense.RecurringFrequency = frequency
	}

	if categoryID != nil && *categoryID != "" {
		parsedCategoryID, err := uuid.Parse(*categoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed category id", ErrInvalidExpense)
		}
		if _, err := s.categoryRepo.GetByID(parsedCategoryID, userID); err != nil {
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		expense.CategoryID = &parsedCategoryID
	}

	return expense, nil
}
