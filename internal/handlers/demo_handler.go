package handlers

import (
	"net/http"

	apierrors "expense-tracker/internal/errors"
	"expense-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// DemoHandler handles development-only seeding endpoints
// These endpoints should only be available in development environments
type DemoHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDemoHandler creates a new demo data handler
func NewDemoHandler(demoDataService services.DemoDataServiceInterface) *DemoHandler {
	return &DemoHandler{demoDataService: demoDataService}
}

// GenerateDemoData seeds the authenticated user's account with realistic
// categories, budgets and an expense history
//
// Method: POST /api/v1/dev/demo-data
// Authentication: Required (JWT)
// Environment: Development only
//
// Query parameters:
//   - months: months of history to generate (default 6, max 12)
//
// Success Response: 200 OK
//
// Error Responses:
//   - 401: Unauthorized (missing JWT)
//   - 500: Internal server error
func (h *DemoHandler) GenerateDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	months := getIntParam(c, "months", services.DefaultMonthsCount)

	if err := h.demoDataService.GenerateDemoData(userID, months); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Demo data generated successfully",
	})
}
