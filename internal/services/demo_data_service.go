package services

import (
	"fmt"
	"log/slog"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// demoCategory seeds a category plus the merchants that bill against it.
type demoCategory struct {
	name      string
	colorCode string
	merchants []string
	minAmount float64
	maxAmount float64
}

// recurringSeries seeds a fixed-cadence bill so the recurring views have
// material to work with out of the box.
type recurringSeries struct {
	title     string
	category  string
	frequency string
	amount    float64
	// jitter spreads the billing day inside the detection tolerance
	jitterDays int
}

type demoDataService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	budgetRepo   repositories.BudgetRepositoryInterface
	faker        *gofakeit.Faker
	now          func() time.Time
}

// NewDemoDataService creates the demo seeding service
func NewDemoDataService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) DemoDataServiceInterface {
	return &demoDataService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		faker:        gofakeit.New(0),
		now:          time.Now,
	}
}

func demoCategories() []demoCategory {
	return []demoCategory{
		{"Food & Dining", "#EF4444", []string{"Grocery Store", "Lunch", "Dinner Out", "Coffee Shop", "Bakery"}, 4, 90},
		{"Transport", "#3B82F6", []string{"Fuel", "Bus Ticket", "Train Ticket", "Taxi Ride", "Parking"}, 2, 70},
		{"Entertainment", "#8B5CF6", []string{"Cinema", "Concert Tickets", "Board Game", "Streaming Rental"}, 8, 120},
		{"Shopping", "#F59E0B", []string{"Clothing", "Electronics", "Books", "Home Goods"}, 10, 250},
		{"Health", "#10B981", []string{"Pharmacy", "Doctor Visit", "Supplements"}, 5, 150},
		{"Utilities", "#6366F1", []string{"Electricity Bill", "Water Bill", "Internet"}, 20, 180},
	}
}

func recurringDemoSeries() []recurringSeries {
	return []recurringSeries{
		{"Netflix", "Entertainment", models.FrequencyMonthly, 15.99, 1},
		{"Spotify", "Entertainment", models.FrequencyMonthly, 9.99, 1},
		{"Gym Membership", "Health", models.FrequencyMonthly, 39.00, 2},
		{"Rent", "Utilities", models.FrequencyMonthly, 1200.00, 0},
		{"Piano Lesson", "Entertainment", models.FrequencyWeekly, 45.00, 1},
		{"Car Insurance", "Transport", models.FrequencyYearly, 780.00, 0},
	}
}

// GenerateDemoData seeds categories, monthly budgets and an expense
// history covering the requested number of months back from today. The
// recurring series are spaced inside the detection gap bands, so a fresh
// demo account immediately exercises the pattern detector.
func (s *demoDataService) GenerateDemoData(userID uuid.UUID, months int) error {
	months = ClampMonthsCount(months)
	today := DateOnly(s.now())
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	categories, err := s.seedCategories(userID)
	if err != nil {
		return err
	}
	if err := s.seedBudgets(userID, start, months); err != nil {
		return err
	}
	if err := s.seedDailySpending(userID, categories, start, today); err != nil {
		return err
	}
	if err := s.seedRecurringSeries(userID, categories, start, today); err != nil {
		return err
	}

	slog.Info("demo data generated", "user_id", userID, "months", months)
	return nil
}

func (s *demoDataService) seedCategories(userID uuid.UUID) (map[string]*models.Category, error) {
	byName := make(map[string]*models.Category)
	for _, dc := range demoCategories() {
		category := &models.Category{
			UserID:    userID,
			Name:      dc.name,
			ColorCode: dc.colorCode,
		}
		if err := s.categoryRepo.Create(category); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", dc.name, err)
		}
		byName[dc.name] = category
	}
	return byName, nil
}

func (s *demoDataService) seedBudgets(userID uuid.UUID, start time.Time, months int) error {
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i, 0)
		budget := &models.Budget{
			UserID: userID,
			Month:  month,
			Amount: decimal.NewFromFloat(s.faker.Float64Range(1800, 2600)).Round(2),
		}
		if err := s.budgetRepo.Upsert(budget); err != nil {
			return fmt.Errorf("failed to seed budget for %s: %w", month.Format("2006-01"), err)
		}
	}
	return nil
}

func (s *demoDataService) seedDailySpending(userID uuid.UUID, categories map[string]*models.Category, start, end time.Time) error {
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		// Not every day has spending; weekends trend busier.
		purchases := s.faker.Number(0, 2)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			purchases = s.faker.Number(1, 4)
		}

		for i := 0; i < purchases; i++ {
			dc := demoCategories()[s.faker.Number(0, len(demoCategories())-1)]
			category := categories[dc.name]
			expense := &models.Expense{
				UserID:     userID,
				CategoryID: &category.ID,
				Title:      dc.merchants[s.faker.Number(0, len(dc.merchants)-1)],
				Amount:     decimal.NewFromFloat(s.faker.Float64Range(dc.minAmount, dc.maxAmount)).Round(2),
				Date:       day,
			}
			if err := s.expenseRepo.Create(expense); err != nil {
				return fmt.Errorf("failed to seed expense: %w", err)
			}
		}
	}
	return nil
}

func (s *demoDataService) seedRecurringSeries(userID uuid.UUID, categories map[string]*models.Category, start, end time.Time) error {
	for _, series := range recurringDemoSeries() {
		category := categories[series.category]

		for occurrence := start; !occurrence.After(end); {
			date := occurrence
			if series.jitterDays > 0 {
				date = date.AddDate(0, 0, s.faker.Number(-series.jitterDays, series.jitterDays))
			}
			if date.Before(start) || date.After(end) {
				date = occurrence
			}

			expense := &models.Expense{
				UserID:             userID,
				CategoryID:         &category.ID,
				Title:              series.title,
				Amount:             decimal.NewFromFloat(series.amount),
				Date:               date,
				IsRecurring:        true,
				RecurringFrequency: series.frequency,
			}
			if err := s.expenseRepo.Create(expense); err != nil {
				return fmt.Errorf("failed to seed recurring expense %q: %w", series.title, err)
			}

			switch series.frequency {
			case models.FrequencyDaily:
				occurrence = occurrence.AddDate(0, 0, 1)
			case models.FrequencyWeekly:
				occurrence = occurrence.AddDate(0, 0, 7)
			case models.FrequencyMonthly:
				occurrence = occurrence.AddDate(0, 1, 0)
			case models.FrequencyYearly:
				occurrence = occurrence.AddDate(1, 0, 0)
			default:
				return fmt.Errorf("unknown demo frequency %q", series.frequency)
			}
		}
	}
	return nil
}
