package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

type BudgetHandlerTestSuite struct {
	suite.Suite
	ctrl                   *gomock.Controller
	echo                   *echo.Echo
	mockBudgetService      *service_mocks.MockBudgetServiceInterface
	mockBudgetAlertService *service_mocks.MockBudgetAlertServiceInterface
	mockMetrics            *service_mocks.MockMetricsRecorderInterface
	handler                *BudgetHandler
	userID                 uuid.UUID
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockBudgetService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.mockBudgetAlertService = service_mocks.NewMockBudgetAlertServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.handler = NewBudgetHandler(s.mockBudgetService, s.mockBudgetAlertService, s.mockMetrics)
	s.userID = uuid.New()
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// ========================================
// PUT /api/v1/budgets Tests
// ========================================

func (s *BudgetHandlerTestSuite) TestUpsertBudget_Success() {
	body := `{"month":"2025-06","amount":"1500.00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.mockBudgetService.EXPECT().
		UpsertBudget(s.userID, gomock.Any()).
		Return(&models.Budget{ID: uuid.New(), UserID: s.userID, Amount: decimal.NewFromInt(1500)}, nil)

	s.Require().NoError(s.handler.UpsertBudget(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestUpsertBudget_MalformedMonthRejected() {
	// Out-of-range month selectors are rejected by validation, never
	// silently corrected.
	for _, month := range []string{"2025-13", "1999-12", "2101-01", "202506"} {
		body := `{"month":"` + month + `","amount":"1500.00"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := s.echo.NewContext(req, rec)
		c.Set("user_id", s.userID)

		s.Error(s.handler.UpsertBudget(c), "month %q", month)
	}
}

// ========================================
// GET /api/v1/budgets/alerts Tests
// ========================================

func (s *BudgetHandlerTestSuite) TestGetBudgetAlerts() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/alerts", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	alerts := &models.BudgetAlerts{
		Day:   models.PeriodSummary{Period: "day", Status: models.BudgetStatusWithinBudget},
		Week:  models.PeriodSummary{Period: "week", Status: models.BudgetStatusWarning},
		Month: models.PeriodSummary{Period: "month", Status: models.BudgetStatusWithinBudget},
		Year:  models.PeriodSummary{Period: "year", Status: models.BudgetStatusNoBudgetSet},
	}
	s.mockBudgetAlertService.EXPECT().GetBudgetAlerts(s.userID).Return(alerts, nil)

	s.Require().NoError(s.handler.GetBudgetAlerts(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.BudgetAlerts `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.BudgetStatusWarning, response.Data.Week.Status)
}

func (s *BudgetHandlerTestSuite) TestGetBudgetAlerts_MissingUser() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/alerts", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.GetBudgetAlerts(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

// ========================================
// DELETE /api/v1/budgets/:id Tests
// ========================================

func (s *BudgetHandlerTestSuite) TestDeleteBudget_NotFound() {
	budgetID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/"+budgetID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(budgetID.String())

	s.mockBudgetService.EXPECT().DeleteBudget(s.userID, budgetID).Return(services.ErrBudgetNotFound)

	s.Require().NoError(s.handler.DeleteBudget(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestWorstStatus(t *testing.T) {
	alerts := &models.BudgetAlerts{
		Day:   models.PeriodSummary{Status: models.BudgetStatusWithinBudget},
		Week:  models.PeriodSummary{Status: models.BudgetStatusOverBudget},
		Month: models.PeriodSummary{Status: models.BudgetStatusWarning},
		Year:  models.PeriodSummary{Status: models.BudgetStatusNoBudgetSet},
	}
	if got := worstStatus(alerts); got != string(models.BudgetStatusOverBudget) {
		t.Errorf("worstStatus = %q, want %q", got, models.BudgetStatusOverBudget)
	}
}
