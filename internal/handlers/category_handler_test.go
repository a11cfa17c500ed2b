package handlers

import (
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
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	echo                *echo.Echo
	mockCategoryService *service_mocks.MockCategoryServiceInterface
	handler             *CategoryHandler
	userID              uuid.UUID
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockCategoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.mockCategoryService)
	s.userID = uuid.New()
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_Success() {
	body := `{"name":"Groceries","color_code":"#33FF57"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.mockCategoryService.EXPECT().
		CreateCategory(s.userID, gomock.Any()).
		Return(&models.Category{ID: uuid.New(), UserID: s.userID, Name: "Groceries", ColorCode: "#33FF57"}, nil)

	s.Require().NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Groceries")
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_DuplicateName() {
	body := `{"name":"Groceries"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.mockCategoryService.EXPECT().
		CreateCategory(s.userID, gomock.Any()).
		Return(nil, services.ErrDuplicateCategory)

	s.Require().NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_BadColorFailsValidation() {
	body := `{"name":"Groceries","color_code":"green"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.Error(s.handler.CreateCategory(c))
}

func (s *CategoryHandlerTestSuite) TestGetCategory_NotFound() {
	categoryID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/"+categoryID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.mockCategoryService.EXPECT().
		GetCategory(s.userID, categoryID).
		Return(nil, services.ErrCategoryNotFound)

	s.Require().NoError(s.handler.GetCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CategoryHandlerTestSuite) TestListCategories() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.mockCategoryService.EXPECT().
		ListCategories(s.userID).
		Return([]models.Category{
			{ID: uuid.New(), UserID: s.userID, Name: "Food"},
			{ID: uuid.New(), UserID: s.userID, Name: "Transport"},
		}, nil)

	s.Require().NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Transport")
}

func (s *CategoryHandlerTestSuite) TestDeleteCategory_NotFound() {
	categoryID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/"+categoryID.String(), nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	c.SetParamNames("id")
	c.SetParamValues(categoryID.String())

	s.mockCategoryService.EXPECT().
		DeleteCategory(s.userID, categoryID).
		Return(services.ErrCategoryNotFound)

	s.Require().NoError(s.handler.DeleteCategory(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
