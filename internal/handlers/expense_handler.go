package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/dto"
	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense CRUD and the recurring listing
type ExpenseHandler struct {
	expenseService       services.ExpenseServiceInterface
	recurringListService services.RecurringListServiceInterface
	metrics              services.MetricsRecorderInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseService services.ExpenseServiceInterface,
	recurringListService services.RecurringListServiceInterface,
	metrics services.MetricsRecorderInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService:       expenseService,
		recurringListService: recurringListService,
		metrics:              metrics,
	}
}

// CreateExpense records a new expense
//
// Method: POST /api/v1/expenses
// Authentication: Required (JWT)
//
// The write runs through recurring-pattern detection before it is
// persisted: a positive verdict overrides the recurring flags in the
// request body, and a detection failure leaves them untouched.
//
// Success Response: 201 Created with the stored expense
//
// Error Responses:
//   - 400: Validation error (amount, date, frequency, category id)
//   - 401: Unauthorized (missing JWT)
//   - 404: CATEGORY_001 when the category does not belong to the user
//   - 500: Internal server error
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.CreateExpense(userID, &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.metrics.IncrementCounter("expense_write", map[string]string{"operation": "create"})

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.ExpenseResponse{Expense: expense},
		Message: "Expense created successfully",
	})
}

// GetExpense retrieves a single expense by id
//
// Method: GET /api/v1/expenses/:id
// Authentication: Required (JWT)
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	expense, err := h.expenseService.GetExpense(userID, expenseID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ExpenseResponse{Expense: expense},
	})
}

// ListExpenses retrieves the user's expenses, newest first
//
// Method: GET /api/v1/expenses
// Authentication: Required (JWT)
//
// Query parameters:
//   - offset: number of rows to skip (default 0)
//   - limit: page size (default 20, max 100)
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 20)

	expenses, total, err := h.expenseService.ListExpenses(userID, offset, limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ExpenseListResponse{
			Expenses: expenses,
			Total:    total,
			Offset:   offset,
			Limit:    limit,
		},
	})
}

// UpdateExpense replaces an expense's fields
//
// Method: PUT /api/v1/expenses/:id
// Authentication: Required (JWT)
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	h.metrics.IncrementCounter("expense_write", map[string]string{"operation": "update"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.ExpenseResponse{Expense: expense},
		Message: "Expense updated successfully",
	})
}

// DeleteExpense removes an expense
//
// Method: DELETE /api/v1/expenses/:id
// Authentication: Required (JWT)
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		return h.handleServiceError(c, err)
	}

	h.metrics.IncrementCounter("expense_write", map[string]string{"operation": "delete"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Expense deleted successfully",
	})
}

// GetRecurringExpenses lists detected recurring expenses grouped by cadence
//
// Method: GET /api/v1/expenses/recurring
// Authentication: Required (JWT)
//
// Success Response: 200 OK with daily/weekly/monthly/yearly groups; groups
// with no members are present as empty arrays
func (h *ExpenseHandler) GetRecurringExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	groups, err := h.recurringListService.GetRecurringExpenses(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: groups,
	})
}

func (h *ExpenseHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrExpenseNotFound) {
		return SendError(c, apierrors.ExpenseNotFound)
	}
	if errors.Is(err, services.ErrCategoryNotFound) {
		return SendError(c, apierrors.CategoryNotFound)
	}
	if errors.Is(err, services.ErrInvalidExpense) {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
