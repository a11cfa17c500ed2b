package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"expense-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("month_string", validateMonthString)
	_ = v.RegisterValidation("recurring_frequency", validateRecurringFrequency)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("hex_color", validateHexColor)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Custom validation functions

var monthStringRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Bounds for the month selector; anything outside is rejected, never
// silently corrected.
const (
	MinSelectorYear = 2000
	MaxSelectorYear = 2100
)

// validateMonthString checks the YYYY-MM month selector format and range
func validateMonthString(fl validator.FieldLevel) bool {
	return IsValidMonthString(fl.Field().String())
}

// IsValidMonthString reports whether a month selector is well formed and in
// the supported year range.
func IsValidMonthString(month string) bool {
	if !monthStringRegex.MatchString(month) {
		return false
	}

	year, err := strconv.Atoi(month[:4])
	if err != nil {
		return false
	}

	return year >= MinSelectorYear && year <= MaxSelectorYear
}

// validateRecurringFrequency checks a frequency against the known set;
// empty is allowed for one-off expenses
func validateRecurringFrequency(fl validator.FieldLevel) bool {
	frequency := fl.Field().String()
	if frequency == "" {
		return true
	}
	return models.IsValidFrequency(frequency)
}

// validatePositiveAmount checks that a string-encoded amount parses as a
// strictly positive decimal with at most two fraction digits
func validatePositiveAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if !amount.IsPositive() {
		return false
	}
	return amount.Exponent() >= -2
}

// validateHexColor checks chart color codes like #3B82F6
func validateHexColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if color == "" {
		return true
	}
	matched, _ := regexp.MatchString(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`, color)
	return matched
}
