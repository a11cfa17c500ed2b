package repositories

import (
	"testing"

	"expense-tracker/internal/database"
	"expense-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// CategoryRepositorySuite defines the test suite for CategoryRepository
type CategoryRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     CategoryRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestCategoryRepositorySuite runs the test suite
func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreate() {
	category := &models.Category{
		UserID:    s.testUser.ID,
		Name:      "Food",
		ColorCode: "#EF4444",
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicateName() {
	s.NoError(s.repo.Create(&models.Category{
		UserID:    s.testUser.ID,
		Name:      "Food",
		ColorCode: "#EF4444",
	}))

	err := s.repo.Create(&models.Category{
		UserID:    s.testUser.ID,
		Name:      "Food",
		ColorCode: "#10B981",
	})
	s.ErrorIs(err, ErrDuplicateCategory)
}

func (s *CategoryRepositorySuite) TestCreate_SameNameDifferentUsers() {
	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")

	s.NoError(s.repo.Create(&models.Category{
		UserID:    s.testUser.ID,
		Name:      "Food",
		ColorCode: "#EF4444",
	}))
	s.NoError(s.repo.Create(&models.Category{
		UserID:    otherUser.ID,
		Name:      "Food",
		ColorCode: "#10B981",
	}))
}

func (s *CategoryRepositorySuite) TestGetByUserID() {
	database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Food")
	database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Transport")

	otherUser := database.CreateTestUser(s.T(), s.db, "other@example.com")
	database.CreateTestCategory(s.T(), s.db, otherUser.ID, "Theirs")

	categories, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(categories, 2)
}

func (s *CategoryRepositorySuite) TestGetByName() {
	database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Utilities")

	category, err := s.repo.GetByName(s.testUser.ID, "Utilities")
	s.NoError(err)
	s.Equal("Utilities", category.Name)
}

func (s *CategoryRepositorySuite) TestGetByName_NotFound() {
	_, err := s.repo.GetByName(s.testUser.ID, "Missing")
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestUpdate() {
	created := database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Food")

	created.Name = "Dining"
	created.ColorCode = "#F59E0B"
	err := s.repo.Update(created)
	s.NoError(err)

	found, err := s.repo.GetByID(created.ID, s.testUser.ID)
	s.NoError(err)
	s.Equal("Dining", found.Name)
	s.Equal("#F59E0B", found.ColorCode)
}

func (s *CategoryRepositorySuite) TestDelete() {
	created := database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Food")

	err := s.repo.Delete(created.ID, s.testUser.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(created.ID, s.testUser.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New(), s.testUser.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}
