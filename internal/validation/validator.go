package validation

import (
	"strings"
	"time"

	"day-planner/internal/domain"
)

// Default title length bounds, used when no configuration is supplied.
const (
	defaultTitleMinLength = 1
	defaultTitleMaxLength = 255
)

// Validator provides common validation utilities
type Validator struct {
	titleMinLength int
	titleMaxLength int
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return &Validator{
		titleMinLength: defaultTitleMinLength,
		titleMaxLength: defaultTitleMaxLength,
	}
}

// NewValidatorWithLimits creates a new validator instance with explicit title limits
func NewValidatorWithLimits(titleMin, titleMax int) *Validator {
	return &Validator{
		titleMinLength: titleMin,
		titleMaxLength: titleMax,
	}
}

// TitleLimits returns the configured title length bounds.
func (v *Validator) TitleLimits() (min, max int) {
	return v.titleMinLength, v.titleMaxLength
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTitleLength checks if a task title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	return v.IsValidStringLength(title, v.titleMinLength, v.titleMaxLength)
}

// IsValidDate checks if a string is a well-formed planner date
func (v *Validator) IsValidDate(date string) bool {
	_, err := time.Parse(domain.DateLayout, date)
	return err == nil
}

// IsMember checks if a value belongs to a fixed set of allowed values
func (v *Validator) IsMember(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
