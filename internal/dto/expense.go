package dto

import (
	"expense-tracker/internal/models"
)

// Expense Request DTOs

// CreateExpenseRequest represents the request payload for creating an expense.
// Amount travels as a string so the decimal value survives JSON untouched.
type CreateExpenseRequest struct {
	Title              string  `json:"title" validate:"required,min=1,max=200"`
	Amount             string  `json:"amount" validate:"required,positive_amount"`
	Date               string  `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID         *string `json:"category_id" validate:"omitempty,uuid"`
	Description        string  `json:"description" validate:"max=1000"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency string  `json:"recurring_frequency" validate:"omitempty,recurring_frequency"`
}

// UpdateExpenseRequest represents the request payload for updating an expense
type UpdateExpenseRequest struct {
	Title              string  `json:"title" validate:"required,min=1,max=200"`
	Amount             string  `json:"amount" validate:"required,positive_amount"`
	Date               string  `json:"date" validate:"required,datetime=2006-01-02"`
	CategoryID         *string `json:"category_id" validate:"omitempty,uuid"`
	Description        string  `json:"description" validate:"max=1000"`
	IsRecurring        bool    `json:"is_recurring"`
	RecurringFrequency string  `json:"recurring_frequency" validate:"omitempty,recurring_frequency"`
}

// Expense Response DTOs

// ExpenseResponse represents a single expense in API responses
type ExpenseResponse struct {
	*models.Expense
}

// ExpenseListResponse represents a paginated list of expenses
type ExpenseListResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int64            `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}
