package cli

import (
	"errors"
	"testing"

	apperrors "day-planner/internal/errors"
	"day-planner/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add task",
			err:       apperrors.NewValidationError("title must not be empty", nil),
			expected:  "failed to add task: title must not be empty",
		},
		{
			name:      "Not found error",
			operation: "toggle task",
			err:       apperrors.NewNotFoundError("task", "task-1"),
			expected:  "failed to toggle task: task not found: task-1",
		},
		{
			name:      "Gateway error",
			operation: "add task",
			err:       apperrors.NewGatewayError("insert", errors.New("timeout")),
			expected:  "failed to add task: The task could not be saved. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "list tasks",
			err:       errors.New("regular error"),
			expected:  "failed to list tasks: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_Handle_WrappedValidationError(t *testing.T) {
	eh := NewErrorHandler()

	// Store mutations wrap validator output in an AppError; the handler
	// must still surface the field-level message.
	ve := validation.NewValidationError()
	ve.AddInvalidLengthError("title", "x", 1, 10)
	wrapped := apperrors.NewValidationError("invalid task", ve)

	result := eh.Handle("add task", wrapped)
	want := "failed to add task: " + ve.GetUserFriendlyMessage()
	if result.Error() != want {
		t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), want)
	}

	if !eh.IsValidationError(wrapped) {
		t.Error("expected wrapped validation error to classify as validation")
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	ve := validation.NewValidationError()
	ve.AddRequiredError("title")

	result := eh.HandleSimple(ve)
	if result.Error() != ve.GetUserFriendlyMessage() {
		t.Errorf("HandleSimple() = %v, want %v", result.Error(), ve.GetUserFriendlyMessage())
	}

	plain := errors.New("plain")
	if eh.HandleSimple(plain) != plain {
		t.Error("HandleSimple() should return plain errors unchanged")
	}
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	if !eh.IsValidationError(apperrors.NewValidationError("bad", nil)) {
		t.Error("expected validation error to be classified as such")
	}
	if !eh.IsNotFoundError(apperrors.NewNotFoundError("task", "x")) {
		t.Error("expected not found error to be classified as such")
	}
	if !eh.IsGatewayError(apperrors.NewGatewayError("insert", nil)) {
		t.Error("expected gateway error to be classified as such")
	}
	if eh.IsNotFoundError(errors.New("plain")) {
		t.Error("plain errors should not classify as not found")
	}

	if code := eh.GetErrorCode(apperrors.NewNotFoundError("task", "x")); code != "NOT_FOUND" {
		t.Errorf("GetErrorCode() = %v, want NOT_FOUND", code)
	}
}
