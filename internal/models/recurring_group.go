package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpenseItem is one recurring series, collapsed to a single entry
// per title. Amount is the largest observed amount, a stand-in for the
// current charge of variable bills; ID points at the most recent occurrence.
type RecurringExpenseItem struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryName *string         `json:"category_name"`
	Occurrences  int64           `json:"occurrences"`
}

// RecurringGroups buckets recurring series by cadence, each bucket sorted by
// occurrence count descending.
type RecurringGroups struct {
	Daily   []RecurringExpenseItem `json:"daily"`
	Weekly  []RecurringExpenseItem `json:"weekly"`
	Monthly []RecurringExpenseItem `json:"monthly"`
	Yearly  []RecurringExpenseItem `json:"yearly"`
}
