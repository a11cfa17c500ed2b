package services

import (
	"fmt"
	"sort"
	"strings"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
)

type recurringListService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
}

// NewRecurringListService creates the service that presents detected
// recurring expenses grouped by cadence.
func NewRecurringListService(expenseRepo repositories.ExpenseRepositoryInterface) RecurringListServiceInterface {
	return &recurringListService{expenseRepo: expenseRepo}
}

// GetRecurringExpenses collapses each recurring series to one entry per
// title. The representative amount is the largest observed occurrence,
// which tracks the current charge of variable bills; the id points at the
// most recent occurrence.
func (s *recurringListService) GetRecurringExpenses(userID uuid.UUID) (*models.RecurringGroups, error) {
	expenses, err := s.expenseRepo.GetRecurring(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring expenses: %w", err)
	}

	type series struct {
		item      models.RecurringExpenseItem
		frequency string
	}

	byTitle := make(map[string]*series)
	order := make([]string, 0)

	// The repository returns rows newest first, so the first sighting of a
	// title carries the most recent id and category.
	for _, e := range expenses {
		key := e.RecurringFrequency + "|" + strings.ToLower(e.Title)
		entry, ok := byTitle[key]
		if !ok {
			entry = &series{
				item: models.RecurringExpenseItem{
					ID:           e.ID,
					Title:        e.Title,
					Amount:       e.Amount,
					CategoryName: e.CategoryName(),
				},
				frequency: e.RecurringFrequency,
			}
			byTitle[key] = entry
			order = append(order, key)
		}
		entry.item.Occurrences++
		if e.Amount.GreaterThan(entry.item.Amount) {
			entry.item.Amount = e.Amount
		}
	}

	groups := &models.RecurringGroups{
		Daily:   []models.RecurringExpenseItem{},
		Weekly:  []models.RecurringExpenseItem{},
		Monthly: []models.RecurringExpenseItem{},
		Yearly:  []models.RecurringExpenseItem{},
	}

	for _, key := range order {
		entry := byTitle[key]
		entry.item.Amount = entry.item.Amount.Round(2)
		switch entry.frequency {
		case models.FrequencyDaily:
			groups.Daily = append(groups.Daily, entry.item)
		case models.FrequencyWeekly:
			groups.Weekly = append(groups.Weekly, entry.item)
		case models.FrequencyMonthly:
			groups.Monthly = append(groups.Monthly, entry.item)
		case models.FrequencyYearly:
			groups.Yearly = append(groups.Yearly, entry.item)
		}
	}

	for _, group := range [][]models.RecurringExpenseItem{groups.Daily, groups.Weekly, groups.Monthly, groups.Yearly} {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Occurrences > group[j].Occurrences
		})
	}

	return groups, nil
}
