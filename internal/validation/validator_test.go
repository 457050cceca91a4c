package validation

import (
	"testing"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Plain string", "hello", true},
		{"Empty string", "", false},
		{"Whitespace only", "   \t ", false},
		{"Padded string", "  hi  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.IsNonEmptyString(tt.input); got != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	v := NewValidator()

	if !v.IsValidStringLength("abc", 1, 5) {
		t.Errorf("IsValidStringLength(abc, 1, 5) should be true")
	}
	if v.IsValidStringLength("", 1, 5) {
		t.Errorf("IsValidStringLength(empty, 1, 5) should be false")
	}
	if v.IsValidStringLength("abcdef", 1, 5) {
		t.Errorf("IsValidStringLength(abcdef, 1, 5) should be false")
	}
	// Trailing whitespace does not count towards length
	if !v.IsValidStringLength("abc  ", 1, 3) {
		t.Errorf("IsValidStringLength should trim before measuring")
	}
}

func TestValidator_IsValidDate(t *testing.T) {
	v := NewValidator()

	if !v.IsValidDate("2024-06-01") {
		t.Errorf("IsValidDate(2024-06-01) should be true")
	}
	if v.IsValidDate("2024-6-1") {
		t.Errorf("IsValidDate(2024-6-1) should be false")
	}
	if v.IsValidDate("tomorrow") {
		t.Errorf("IsValidDate(tomorrow) should be false")
	}
}

func TestValidator_IsMember(t *testing.T) {
	v := NewValidator()
	allowed := []string{"low", "medium", "high"}

	if !v.IsMember("medium", allowed) {
		t.Errorf("IsMember(medium) should be true")
	}
	if v.IsMember("urgent", allowed) {
		t.Errorf("IsMember(urgent) should be false")
	}
	if v.IsMember("low", nil) {
		t.Errorf("IsMember with empty set should be false")
	}
}

func TestNewValidatorWithLimits(t *testing.T) {
	v := NewValidatorWithLimits(3, 10)

	if v.IsValidTitleLength("ab") {
		t.Errorf("IsValidTitleLength(ab) should be false with min 3")
	}
	if !v.IsValidTitleLength("abcd") {
		t.Errorf("IsValidTitleLength(abcd) should be true")
	}
	if v.IsValidTitleLength("abcdefghijk") {
		t.Errorf("IsValidTitleLength over max should be false")
	}
}
