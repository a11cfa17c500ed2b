package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	"github.com/google/uuid"
)

// Gap bands, in whole days, that map an observed spacing onto a billing
// cadence. The bands are deliberately tolerant and non-overlapping.
const (
	dailyGapDays = 1

	weeklyGapMinDays = 6
	weeklyGapMaxDays = 8

	monthlyGapMinDays = 26
	monthlyGapMaxDays = 34

	yearlyGapMinDays = 362
	yearlyGapMaxDays = 369
)

type recurringDetectionService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	keywords    []string
	lookback    int
	metrics     MetricsRecorderInterface
}

// NewRecurringDetectionService creates the recurring-pattern detector.
// Keywords and lookback depth come from configuration so deployments can
// tune them without a rebuild.
func NewRecurringDetectionService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	cfg config.DetectionConfig,
	metrics MetricsRecorderInterface,
) RecurringDetectionServiceInterface {
	keywords := make([]string, 0, len(cfg.RecurringKeywords))
	for _, kw := range cfg.RecurringKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	lookback := cfg.HistoryLookback
	if lookback <= 0 {
		lookback = 3
	}

	return &recurringDetectionService{
		expenseRepo: expenseRepo,
		keywords:    keywords,
		lookback:    lookback,
		metrics:     metrics,
	}
}

// Detect decides whether a candidate expense continues a recurring pattern.
// Only the gap to the single most recent same-title expense matters; no
// multi-step gap filling over skipped periods is attempted. The keyword
// signal is observational and never gates the verdict, and the amount is
// ignored entirely so variable-amount bills still match.
func (s *recurringDetectionService) Detect(userID uuid.UUID, title string, date time.Time) (models.DetectionResult, error) {
	keywordMatch := s.matchesKeyword(title)

	history, err := s.expenseRepo.GetRecentByTitle(userID, title, s.lookback)
	if err != nil {
		return models.DetectionResult{}, fmt.Errorf("failed to load expense history: %w", err)
	}

	if len(history) == 0 {
		return models.NotRecurring(keywordMatch, -1), nil
	}

	previous := history[0]
	daysDiff := absDays(DateOnly(date), DateOnly(previous.Date))

	frequency := classifyGap(daysDiff)
	if frequency == "" {
		slog.Debug("no recurring pattern detected",
			"user_id", userID,
			"title", title,
			"days_diff", daysDiff,
			"keyword_match", keywordMatch)
		return models.NotRecurring(keywordMatch, daysDiff), nil
	}

	slog.Info("recurring pattern detected",
		"user_id", userID,
		"title", title,
		"frequency", frequency,
		"days_diff", daysDiff,
		"keyword_match", keywordMatch)

	s.metrics.IncrementCounter("recurring_detections", map[string]string{
		"frequency":     frequency,
		"keyword_match": fmt.Sprintf("%t", keywordMatch),
	})

	return models.DetectionResult{
		IsRecurring:       true,
		Frequency:         frequency,
		KeywordMatch:      keywordMatch,
		DaysSincePrevious: daysDiff,
	}, nil
}

func (s *recurringDetectionService) matchesKeyword(title string) bool {
	lowered := strings.ToLower(title)
	for _, kw := range s.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func classifyGap(days int) string {
	switch {
	case days == dailyGapDays:
		return models.FrequencyDaily
	case days >= weeklyGapMinDays && days <= weeklyGapMaxDays:
		return models.FrequencyWeekly
	case days >= monthlyGapMinDays && days <= monthlyGapMaxDays:
		return models.FrequencyMonthly
	case days >= yearlyGapMinDays && days <= yearlyGapMaxDays:
		return models.FrequencyYearly
	default:
		return ""
	}
}

func absDays(a, b time.Time) int {
	days := int(a.Sub(b).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}
