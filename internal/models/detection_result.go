package models

// DetectionResult is the verdict of recurring-pattern analysis for one
// candidate expense. It is computed per write and never persisted itself;
// a positive verdict is copied onto the expense before it is saved.
type DetectionResult struct {
	IsRecurring bool   `json:"is_recurring"`
	Frequency   string `json:"frequency,omitempty"`

	// KeywordMatch records whether the title matched the configured
	// recurring-service keyword list. The signal is observational only and
	// never gates the verdict.
	KeywordMatch bool `json:"keyword_match"`

	// DaysSincePrevious is the gap to the most recent same-title expense,
	// -1 when there was no history.
	DaysSincePrevious int `json:"days_since_previous"`
}

// NotRecurring is the zero verdict used when history is empty or no gap band
// matched.
func NotRecurring(keywordMatch bool, daysSince int) DetectionResult {
	return DetectionResult{
		IsRecurring:       false,
		KeywordMatch:      keywordMatch,
		DaysSincePrevious: daysSince,
	}
}
