package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	ve := NewValidationError()
	if ve.Error() != "validation error" {
		t.Errorf("empty ValidationError.Error() = %q", ve.Error())
	}

	ve.AddRequiredError("title")
	if !strings.Contains(ve.Error(), "title is required") {
		t.Errorf("single error message = %q", ve.Error())
	}

	ve.AddInvalidValueError("priority", "urgent", "must be low, medium or high")
	if !strings.Contains(ve.Error(), "multiple validation errors") {
		t.Errorf("multiple error message = %q", ve.Error())
	}
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Errorf("new ValidationError should have no errors")
	}

	ve.AddRequiredError("date")
	if !ve.HasErrors() {
		t.Errorf("ValidationError should report errors after adding one")
	}
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	ve.AddInvalidFormatError("date", "junk", "2006-01-02")
	ve.AddInvalidLengthError("title", "x", 1, 255)

	titleErrors := ve.GetFieldErrors("title")
	if len(titleErrors) != 2 {
		t.Errorf("GetFieldErrors(title) = %d errors, want 2", len(titleErrors))
	}

	if len(ve.GetFieldErrors("assignee")) != 0 {
		t.Errorf("GetFieldErrors(assignee) should be empty")
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError()) {
		t.Errorf("IsValidationError should recognize ValidationError")
	}
	if IsValidationError(nil) {
		t.Errorf("IsValidationError(nil) should be false")
	}

	// A wrapped ValidationError must still classify, since callers wrap
	// validator output with operation context.
	ve := NewValidationError()
	ve.AddRequiredError("title")
	wrapped := fmt.Errorf("invalid task: %w", ve)
	if !IsValidationError(wrapped) {
		t.Errorf("IsValidationError should recognize a wrapped ValidationError")
	}
	if IsValidationError(errors.New("plain")) {
		t.Errorf("IsValidationError should reject plain errors")
	}
}

func TestAsValidationError(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidLengthError("title", "x", 1, 10)
	wrapped := fmt.Errorf("invalid task: %w", ve)

	got, ok := AsValidationError(wrapped)
	if !ok {
		t.Fatalf("AsValidationError should unwrap a wrapped ValidationError")
	}
	if got != ve {
		t.Errorf("AsValidationError returned a different ValidationError")
	}

	if _, ok := AsValidationError(errors.New("plain")); ok {
		t.Errorf("AsValidationError should reject plain errors")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if ve.GetUserFriendlyMessage() != "Input validation failed" {
		t.Errorf("empty message = %q", ve.GetUserFriendlyMessage())
	}

	ve.AddRequiredError("title")
	if ve.GetUserFriendlyMessage() != "title is required" {
		t.Errorf("single message = %q", ve.GetUserFriendlyMessage())
	}

	ve.AddRequiredError("date")
	msg := ve.GetUserFriendlyMessage()
	if !strings.Contains(msg, "- title is required") || !strings.Contains(msg, "- date is required") {
		t.Errorf("multiple message = %q", msg)
	}
}
