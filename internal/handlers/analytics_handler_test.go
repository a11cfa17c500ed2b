package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-tracker/internal/models"
	"expense-tracker/internal/services"
	"expense-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	echo                 *echo.Echo
	mockAnalyticsService *service_mocks.MockAnalyticsServiceInterface
	mockMetrics          *service_mocks.MockMetricsRecorderInterface
	handler              *AnalyticsHandler
	userID               uuid.UUID
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockAnalyticsService = service_mocks.NewMockAnalyticsServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.handler = NewAnalyticsHandler(s.mockAnalyticsService, s.mockMetrics)
	s.userID = uuid.New()
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

func (s *AnalyticsHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

// ========================================
// GET /api/v1/dashboard/summary Tests
// ========================================

func (s *AnalyticsHandlerTestSuite) TestGetDashboardSummary_Success() {
	c, rec := s.newContext("/api/v1/dashboard/summary")

	s.mockAnalyticsService.EXPECT().
		GetDashboardSummary(s.userID).
		Return(&models.DashboardSummary{
			Spending: models.DashboardSpending{TotalThisMonth: decimal.NewFromInt(250)},
			Budget:   models.DashboardBudget{Status: models.BudgetStatusNoBudgetSet},
		}, nil)

	s.Require().NoError(s.handler.GetDashboardSummary(c))
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["data"])
}

func (s *AnalyticsHandlerTestSuite) TestGetDashboardSummary_MissingUser() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetDashboardSummary(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetDashboardSummary_StoreFailure() {
	c, rec := s.newContext("/api/v1/dashboard/summary")

	s.mockAnalyticsService.EXPECT().
		GetDashboardSummary(s.userID).
		Return(nil, errors.New("pq: connection refused"))

	s.Require().NoError(s.handler.GetDashboardSummary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("ANALYTICS_001", s.errorCode(rec))
	// internal error detail never leaks
	s.NotContains(rec.Body.String(), "connection refused")
}

// ========================================
// GET /api/v1/analytics/categories Tests
// ========================================

func (s *AnalyticsHandlerTestSuite) TestGetCategoryBreakdown_Success() {
	c, rec := s.newContext("/api/v1/analytics/categories?month=2025-04")
	c.QueryParams().Set("month", "2025-04")

	s.mockAnalyticsService.EXPECT().
		GetCategoryBreakdown(s.userID, "2025-04").
		Return(&models.CategoryBreakdown{
			Data: []models.CategoryBreakdownItem{{Name: "Food", Value: decimal.NewFromInt(100)}},
		}, nil)

	s.Require().NoError(s.handler.GetCategoryBreakdown(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetCategoryBreakdown_MalformedMonthRejected() {
	c, rec := s.newContext("/api/v1/analytics/categories?month=2025-13")
	c.QueryParams().Set("month", "2025-13")

	s.mockAnalyticsService.EXPECT().
		GetCategoryBreakdown(s.userID, "2025-13").
		Return(nil, services.ErrInvalidMonthString)

	s.Require().NoError(s.handler.GetCategoryBreakdown(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_005", s.errorCode(rec))
}

// ========================================
// GET /api/v1/analytics/weekly Tests
// ========================================

func (s *AnalyticsHandlerTestSuite) TestGetWeeklySpending_PassesOffsetThrough() {
	c, rec := s.newContext("/api/v1/analytics/weekly?week_offset=-2")
	c.QueryParams().Set("week_offset", "-2")

	s.mockAnalyticsService.EXPECT().
		GetWeeklySpending(s.userID, -2).
		Return(&models.WeeklySpending{Days: make([]models.WeeklyDay, 7)}, nil)

	s.Require().NoError(s.handler.GetWeeklySpending(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetWeeklySpending_GarbageOffsetFallsBackToZero() {
	c, rec := s.newContext("/api/v1/analytics/weekly?week_offset=abc")
	c.QueryParams().Set("week_offset", "abc")

	// Unparseable offsets fall back to the default, never a 400.
	s.mockAnalyticsService.EXPECT().
		GetWeeklySpending(s.userID, 0).
		Return(&models.WeeklySpending{Days: make([]models.WeeklyDay, 7)}, nil)

	s.Require().NoError(s.handler.GetWeeklySpending(c))
	s.Equal(http.StatusOK, rec.Code)
}

// ========================================
// GET /api/v1/analytics/monthly Tests
// ========================================

func (s *AnalyticsHandlerTestSuite) TestGetMonthlyTrend_OutOfRangeMonthsStillSucceeds() {
	c, rec := s.newContext("/api/v1/analytics/monthly?months=99")
	c.QueryParams().Set("months", "99")

	// The service clamps; the handler passes the raw value through.
	s.mockAnalyticsService.EXPECT().
		GetMonthlyTrend(s.userID, 99).
		Return(&models.MonthlyTrend{}, nil)

	s.Require().NoError(s.handler.GetMonthlyTrend(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetMonthlyTrend_DefaultMonths() {
	c, rec := s.newContext("/api/v1/analytics/monthly")

	s.mockAnalyticsService.EXPECT().
		GetMonthlyTrend(s.userID, services.DefaultMonthsCount).
		Return(&models.MonthlyTrend{}, nil)

	s.Require().NoError(s.handler.GetMonthlyTrend(c))
	s.Equal(http.StatusOK, rec.Code)
}
