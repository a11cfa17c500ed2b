package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultCategoryColor is assigned when a category is created without a color
	DefaultCategoryColor = "#000000"

	// UncategorizedLabel is used in analytics output for expenses with no category
	UncategorizedLabel = "Uncategorized"

	// UncategorizedColor is the chart color for the uncategorized bucket
	UncategorizedColor = "#6B7280"
)

var (
	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	ErrInvalidColorCode = errors.New("color code must be a hex value like #3B82F6")
)

// Category is a user-defined expense category
type Category struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name        string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	ColorCode   string         `gorm:"type:varchar(20);not null;default:'#000000'" json:"color_code"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.ColorCode == "" {
		c.ColorCode = DefaultCategoryColor
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}

	if len(c.Name) > 100 {
		return errors.New("category name must be at most 100 characters")
	}

	if c.ColorCode != "" && !hexColorRegex.MatchString(c.ColorCode) {
		return ErrInvalidColorCode
	}

	return nil
}
