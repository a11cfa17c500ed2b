package services

import (
	"testing"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryServiceSuite defines the test suite for CategoryServiceInterface
type CategoryServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      CategoryServiceInterface
	testUserID   uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *CategoryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.categoryRepo)
	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *CategoryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestCategoryServiceSuite runs the test suite
func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) TestCreateCategory() {
	s.categoryRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Category) error {
		s.Equal(s.testUserID, c.UserID)
		s.Equal("Food", c.Name)
		s.Equal("#EF4444", c.ColorCode)
		return nil
	})

	category, err := s.service.CreateCategory(s.testUserID, &dto.CreateCategoryRequest{
		Name:      "Food",
		ColorCode: "#EF4444",
	})
	s.Require().NoError(err)
	s.Equal("Food", category.Name)
}

func (s *CategoryServiceSuite) TestCreateCategory_DefaultColor() {
	s.categoryRepo.EXPECT().Create(gomock.Any()).Return(nil)

	category, err := s.service.CreateCategory(s.testUserID, &dto.CreateCategoryRequest{Name: "Misc"})
	s.Require().NoError(err)
	s.Equal(models.DefaultCategoryColor, category.ColorCode)
}

func (s *CategoryServiceSuite) TestCreateCategory_DuplicateName() {
	s.categoryRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrDuplicateCategory)

	_, err := s.service.CreateCategory(s.testUserID, &dto.CreateCategoryRequest{Name: "Food"})
	s.ErrorIs(err, ErrDuplicateCategory)
}

func (s *CategoryServiceSuite) TestGetCategory_NotFound() {
	categoryID := uuid.New()
	s.categoryRepo.EXPECT().GetByID(categoryID, s.testUserID).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.GetCategory(s.testUserID, categoryID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryServiceSuite) TestUpdateCategory_KeepsColorWhenOmitted() {
	categoryID := uuid.New()
	existing := &models.Category{ID: categoryID, UserID: s.testUserID, Name: "Food", ColorCode: "#EF4444"}

	gomock.InOrder(
		s.categoryRepo.EXPECT().GetByID(categoryID, s.testUserID).Return(existing, nil),
		s.categoryRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *models.Category) error {
			s.Equal("Dining", c.Name)
			s.Equal("#EF4444", c.ColorCode)
			return nil
		}),
	)

	category, err := s.service.UpdateCategory(s.testUserID, categoryID, &dto.UpdateCategoryRequest{Name: "Dining"})
	s.Require().NoError(err)
	s.Equal("Dining", category.Name)
}

func (s *CategoryServiceSuite) TestDeleteCategory_NotFound() {
	categoryID := uuid.New()
	s.categoryRepo.EXPECT().Delete(categoryID, s.testUserID).Return(repositories.ErrCategoryNotFound)

	err := s.service.DeleteCategory(s.testUserID, categoryID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryServiceSuite) TestListCategories() {
	s.categoryRepo.EXPECT().GetByUserID(s.testUserID).Return([]models.Category{
		{Name: "Food"}, {Name: "Transport"},
	}, nil)

	categories, err := s.service.ListCategories(s.testUserID)
	s.Require().NoError(err)
	s.Len(categories, 2)
}
