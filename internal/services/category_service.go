package services

import (
	"errors"
	"fmt"
	"log/slog"

	"expense-tracker/internal/dto"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
)

var ErrDuplicateCategory = errors.New("category with this name already exists")

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates the category CRUD service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		UserID:    userID,
		Name:      req.Name,
		ColorCode: req.ColorCode,
	}
	if category.ColorCode == "" {
		category.ColorCode = models.DefaultCategoryColor
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCategory) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	slog.Info("category created", "user_id", userID, "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *categoryService) GetCategory(userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	if req.ColorCode != "" {
		category.ColorCode = req.ColorCode
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCategory) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(userID, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(categoryID, userID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	slog.Info("category deleted", "user_id", userID, "category_id", categoryID)
	return nil
}
