package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "mid-month date",
			input: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "already first of month",
			input: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "drops time component",
			input: time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
			want:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMonth(tt.input))
		})
	}
}

func TestBudget_Validate(t *testing.T) {
	month := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	b := Budget{Month: month, Amount: decimal.NewFromFloat(2000)}
	assert.NoError(t, b.Validate())

	b = Budget{Amount: decimal.NewFromFloat(2000)}
	assert.ErrorIs(t, b.Validate(), ErrMissingBudgetMonth)

	b = Budget{Month: month, Amount: decimal.Zero}
	assert.ErrorIs(t, b.Validate(), ErrInvalidBudgetAmount)

	b = Budget{Month: month, Amount: decimal.NewFromFloat(-100)}
	assert.ErrorIs(t, b.Validate(), ErrInvalidBudgetAmount)
}
