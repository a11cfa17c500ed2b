package dto

import (
	"expense-tracker/internal/models"
)

// Budget Request DTOs

// UpsertBudgetRequest represents the request payload for setting a monthly
// budget. Month uses the YYYY-MM selector format; posting the same month
// twice replaces the amount.
type UpsertBudgetRequest struct {
	Month  string `json:"month" validate:"required,month_string"`
	Amount string `json:"amount" validate:"required,positive_amount"`
}

// Budget Response DTOs

// BudgetResponse represents a single budget in API responses
type BudgetResponse struct {
	*models.Budget
}

// BudgetListResponse represents all of a user's monthly budgets
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Total   int             `json:"total"`
}
