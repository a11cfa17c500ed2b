package dto

import (
	"expense-tracker/internal/models"
)

// Category Request DTOs

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ColorCode string `json:"color_code" validate:"omitempty,hex_color"`
}

// UpdateCategoryRequest represents the request payload for updating a category
type UpdateCategoryRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	ColorCode string `json:"color_code" validate:"omitempty,hex_color"`
}

// Category Response DTOs

// CategoryResponse represents a single category in API responses
type CategoryResponse struct {
	*models.Category
}

// CategoryListResponse represents all of a user's categories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}
