package services

import (
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
	ErrInvalidBudget  = errors.New("invalid budget data")
)

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetService creates the budget CRUD service. Budgets are keyed on
// (user, month); setting the same month twice replaces the amount.
func NewBudgetService(budgetRepo repositories.BudgetRepositoryInterface) BudgetServiceInterface {
	return &budgetService{budgetRepo: budgetRepo}
}

func (s *budgetService) UpsertBudget(userID uuid.UUID, req *dto.UpsertBudgetRequest) (*models.Budget, error) {
	month, err := ParseMonthString(req.Month)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive number", ErrInvalidBudget)
	}

	budget := &models.Budget{
		UserID: userID,
		Month:  month,
		Amount: amount.Round(2),
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	slog.Info("budget saved",
		"user_id", userID,
		"month", month.Format("2006-01"),
		"amount", budget.Amount.String())

	return budget, nil
}

func (s *budgetService) ListBudgets(userID uuid.UUID) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (s *budgetService) DeleteBudget(userID, budgetID uuid.UUID) error {
	if err := s.budgetRepo.Delete(budgetID, userID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	slog.Info("budget deleted", "user_id", userID, "budget_id", budgetID)
	return nil
}
