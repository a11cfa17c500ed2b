package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")
	ErrMissingBudgetMonth  = errors.New("budget month is required")
)

// Budget is a monthly spending limit. Month is always normalized to the first
// day of the month; at most one budget exists per (user, month).
type Budget struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_user_month" json:"user_id"`
	Month     time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budgets_user_month" json:"month"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// NormalizeMonth truncates a date to the first day of its month, dropping any
// time component.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeSave(tx *gorm.DB) error {
	if !b.Month.IsZero() {
		b.Month = NormalizeMonth(b.Month)
	}
	return nil
}

func (b *Budget) Validate() error {
	if b.Month.IsZero() {
		return ErrMissingBudgetMonth
	}

	if !b.Amount.IsPositive() {
		return ErrInvalidBudgetAmount
	}

	return nil
}
