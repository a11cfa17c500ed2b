package handlers

import (
	"errors"
	"net/http"
	"time"

	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the dashboard and analytics read endpoints
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	metrics          services.MetricsRecorderInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	analyticsService services.AnalyticsServiceInterface,
	metrics services.MetricsRecorderInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		metrics:          metrics,
	}
}

// GetDashboardSummary returns the current-month dashboard snapshot
//
// Method: GET /api/v1/dashboard/summary
// Authentication: Required (JWT)
//
// Success Response: 200 OK
//   - period: current month bounds and day counters
//   - spending: month/week/today totals and daily average
//   - budget: budget utilization block, status no_budget_set when unset
//   - top_category, categories, top_expenses, recent_expenses
//   - comparison: change versus the previous month with trend direction
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: ANALYTICS_001 when the snapshot cannot be computed
func (h *AnalyticsHandler) GetDashboardSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	start := time.Now()
	summary, err := h.analyticsService.GetDashboardSummary(userID)
	h.recordRequest("dashboard_summary", start, err)
	if err != nil {
		return SendAnalyticsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: summary,
	})
}

// GetCategoryBreakdown returns per-category totals for a month
//
// Method: GET /api/v1/analytics/categories
// Authentication: Required (JWT)
//
// Query parameters:
//   - month: YYYY-MM selector (optional, defaults to the current month).
//     Malformed or out-of-range selectors are rejected, never corrected.
//
// Success Response: 200 OK with top categories, meta and summary blocks
//
// Error Responses:
//   - 400: VALIDATION_005 for a malformed month selector
//   - 401: Unauthorized (missing JWT)
//   - 500: ANALYTICS_001 when the breakdown cannot be computed
func (h *AnalyticsHandler) GetCategoryBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	month := c.QueryParam("month")

	start := time.Now()
	breakdown, err := h.analyticsService.GetCategoryBreakdown(userID, month)
	h.recordRequest("category_breakdown", start, err)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonthString) {
			return SendError(c, apierrors.ValidationInvalidMonth)
		}
		return SendAnalyticsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: breakdown.Data,
		Meta: map[string]interface{}{
			"period":  breakdown.Meta,
			"summary": breakdown.Summary,
		},
	})
}

// GetWeeklySpending returns the Monday-through-Sunday daily buckets
//
// Method: GET /api/v1/analytics/weekly
// Authentication: Required (JWT)
//
// Query parameters:
//   - week_offset: 0 for the current week, negative values for past weeks.
//     Clamped to [-52, 0]; out-of-range values never produce an error.
//
// Success Response: 200 OK with exactly seven day entries plus a summary
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: ANALYTICS_001 when the week cannot be computed
func (h *AnalyticsHandler) GetWeeklySpending(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	weekOffset := getIntParam(c, "week_offset", 0)

	start := time.Now()
	weekly, err := h.analyticsService.GetWeeklySpending(userID, weekOffset)
	h.recordRequest("weekly_spending", start, err)
	if err != nil {
		return SendAnalyticsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: weekly.Days,
		Meta: map[string]interface{}{
			"week":    weekly.Meta,
			"summary": weekly.Summary,
		},
	})
}

// GetMonthlyTrend returns the last months with recorded spending
//
// Method: GET /api/v1/analytics/monthly
// Authentication: Required (JWT)
//
// Query parameters:
//   - months: number of trailing months with data to return. Values below 1
//     fall back to 6, values above 12 are capped at 12; never an error.
//
// Success Response: 200 OK with per-month points, meta and summary blocks
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: ANALYTICS_001 when the trend cannot be computed
func (h *AnalyticsHandler) GetMonthlyTrend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	months := getIntParam(c, "months", services.DefaultMonthsCount)

	start := time.Now()
	trend, err := h.analyticsService.GetMonthlyTrend(userID, months)
	h.recordRequest("monthly_trend", start, err)
	if err != nil {
		return SendAnalyticsError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: trend.Points,
		Meta: map[string]interface{}{
			"period":  trend.Meta,
			"summary": trend.Summary,
		},
	})
}

func (h *AnalyticsHandler) recordRequest(view string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	h.metrics.IncrementCounter("analytics_request", map[string]string{"view": view, "status": status})
	h.metrics.RecordProcessingTime("analytics_request", time.Since(start))
}
