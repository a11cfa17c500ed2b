package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Invalid Credentials",
			code:     AuthInvalidCredentials,
			expected: "Invalid email or password",
		},
		{
			name:     "Validation Invalid Month",
			code:     ValidationInvalidMonth,
			expected: "Invalid month format. Use YYYY-MM (e.g., 2025-12)",
		},
		{
			name:     "Expense Not Found",
			code:     ExpenseNotFound,
			expected: "Expense not found",
		},
		{
			name:     "Budget Not Found",
			code:     BudgetNotFound,
			expected: "No budget set for this month",
		},
		{
			name:     "Analytics Unavailable",
			code:     AnalyticsUnavailable,
			expected: "Unable to load analytics data",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the fallback message
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("BOGUS_999")))
}

// TestIsValidErrorCode tests error code registration checks
func (s *CodesTestSuite) TestIsValidErrorCode() {
	s.True(IsValidErrorCode(ExpenseNotFound))
	s.True(IsValidErrorCode(AnalyticsUnavailable))
	s.False(IsValidErrorCode(ErrorCode("BOGUS_999")))
	s.False(IsValidErrorCode(ErrorCode("")))
}
