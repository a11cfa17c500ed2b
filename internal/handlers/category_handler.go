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

// CategoryHandler handles category CRUD endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory creates a new spending category
//
// Method: POST /api/v1/categories
// Authentication: Required (JWT)
//
// Error Responses:
//   - 400: Validation error (name, color code)
//   - 401: Unauthorized (missing JWT)
//   - 409: CATEGORY_002 when the name is already taken by this user
//   - 500: Internal server error
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    dto.CategoryResponse{Category: category},
		Message: "Category created successfully",
	})
}

// ListCategories retrieves all categories for the user
//
// Method: GET /api/v1/categories
// Authentication: Required (JWT)
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.categoryService.ListCategories(userID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CategoryListResponse{
			Categories: categories,
			Total:      len(categories),
		},
	})
}

// GetCategory retrieves a single category by id
//
// Method: GET /api/v1/categories/:id
// Authentication: Required (JWT)
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	category, err := h.categoryService.GetCategory(userID, categoryID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.CategoryResponse{Category: category},
	})
}

// UpdateCategory renames or recolors a category
//
// Method: PUT /api/v1/categories/:id
// Authentication: Required (JWT)
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.UpdateCategory(userID, categoryID, &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    dto.CategoryResponse{Category: category},
		Message: "Category updated successfully",
	})
}

// DeleteCategory removes a category; its expenses become uncategorized
//
// Method: DELETE /api/v1/categories/:id
// Authentication: Required (JWT)
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	if err := h.categoryService.DeleteCategory(userID, categoryID); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}

func (h *CategoryHandler) handleServiceError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrCategoryNotFound) {
		return SendError(c, apierrors.CategoryNotFound)
	}
	if errors.Is(err, services.ErrDuplicateCategory) {
		return SendError(c, apierrors.CategoryAlreadyExists)
	}
	return SendSystemError(c, err)
}
