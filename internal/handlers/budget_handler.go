package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/dto"
	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/models"
	"expense-tracker/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget CRUD and the budget alert view
type BudgetHandler struct {
	budgetService      services.BudgetServiceInterface
	budgetAlertService services.BudgetAlertServiceInterface
	metrics            services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetService services.BudgetServiceInterface,
	budgetAlertService services.BudgetAlertServiceInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetService:      budgetService,
		budgetAlertService: budgetAlertService,
		metrics:            metrics,
	}
}

// UpsertBudget creates or replaces the budget for a month
//
// Method: PUT /api/v1/budgets
// Authentication: Required (JWT)
//
// Setting the same month twice replaces the amount; there is never more
// than one budget row per (user, month).
//
// Error Responses:
//   - 400: VALIDATION_005 for a malformed month, BUDGET_002 for the amount
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.UpsertBudget(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonthString) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		if errors.Is(err, services.ErrInvalidBudget) {
			return SendError(c, apierrors.BudgetInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.BudgetResponse{Budget: budget},
		Message: "Budget saved successfully",
	})
}

// ListBudgets retrieves all budgets for the user
//
// Method: GET /api/v1/budgets
// Authentication: Required (JWT)
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgets, err := h.budgetService.ListBudgets(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.BudgetListResponse{
			Budgets: budgets,
			Total:   len(budgets),
		},
	})
}

// DeleteBudget removes a budget row
//
// Method: DELETE /api/v1/budgets/:id
// Authentication: Required (JWT)
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("invalid budget id format"))
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		if errors.Is(err, services.ErrBudgetNotFound) {
			return SendError(c, apierrors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget deleted successfully",
	})
}

// GetBudgetAlerts reconciles spending against budgets per period
//
// Method: GET /api/v1/budgets/alerts
// Authentication: Required (JWT)
//
// Success Response: 200 OK with day/week/month/year summaries. The daily
// and weekly budgets are derived from the monthly amount; the yearly
// budget is the sum of the year's budget rows. Periods without a budget
// report status no_budget_set and a zero percentage; reconciliation never
// fails on a missing budget.
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *BudgetHandler) GetBudgetAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	alerts, err := h.budgetAlertService.GetBudgetAlerts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("budget_alerts_computed", map[string]string{"status": worstStatus(alerts)})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: alerts,
	})
}

// worstStatus picks the most severe period status for metrics tagging
func worstStatus(alerts *models.BudgetAlerts) string {
	rank := map[models.BudgetStatus]int{
		models.BudgetStatusNoBudgetSet:  0,
		models.BudgetStatusWithinBudget: 1,
		models.BudgetStatusWarning:      2,
		models.BudgetStatusOverBudget:   3,
	}

	worst := models.BudgetStatusNoBudgetSet
	for _, period := range []models.PeriodSummary{alerts.Day, alerts.Week, alerts.Month, alerts.Year} {
		if rank[period.Status] > rank[worst] {
			worst = period.Status
		}
	}
	return string(worst)
}
