package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recurring frequencies an expense can be flagged with. An empty frequency
// means the expense is a one-off.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

var (
	ErrInvalidFrequency   = errors.New("invalid recurring frequency")
	ErrInvalidAmount      = errors.New("expense amount must be positive")
	ErrMissingDate        = errors.New("expense date is required")
	ErrFrequencyWithoutFlag = errors.New("recurring frequency requires is_recurring")
)

// AllFrequencies returns the valid recurring frequencies
func AllFrequencies() []string {
	return []string{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}
}

// IsValidFrequency checks a frequency string against the known set
func IsValidFrequency(frequency string) bool {
	for _, f := range AllFrequencies() {
		if frequency == f {
			return true
		}
	}
	return false
}

// Expense is a single spend record owned by a user. Date carries no time
// component; all period math truncates to calendar days.
type Expense struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Title              string          `gorm:"type:varchar(255);not null;index" json:"title"`
	Amount             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date               time.Time       `gorm:"type:date;not null;index" json:"date"`
	Description        string          `gorm:"type:text" json:"description,omitempty"`
	IsRecurring        bool            `gorm:"not null;default:false" json:"is_recurring"`
	RecurringFrequency string          `gorm:"type:varchar(20)" json:"recurring_frequency,omitempty"`
	CreatedAt          time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt          gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`

	// Associations
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return nil
}

// Validate checks expense invariants before persistence
func (e *Expense) Validate() error {
	if e.Title == "" {
		return errors.New("expense title is required")
	}

	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if e.Date.IsZero() {
		return ErrMissingDate
	}

	if e.RecurringFrequency != "" {
		if !IsValidFrequency(e.RecurringFrequency) {
			return ErrInvalidFrequency
		}
		if !e.IsRecurring {
			return ErrFrequencyWithoutFlag
		}
	}

	return nil
}

// CategoryName resolves the category name for serialization, nil when the
// expense is uncategorized or the association was not preloaded.
func (e *Expense) CategoryName() *string {
	if e.Category == nil {
		return nil
	}
	name := e.Category.Name
	return &name
}
