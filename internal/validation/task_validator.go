package validation

import (
	"day-planner/internal/domain"
	"day-planner/internal/timeslot"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
	registry  *timeslot.Registry
	roster    domain.Roster
}

// NewTaskValidator creates a new task validator bound to a slot registry and roster
func NewTaskValidator(registry *timeslot.Registry, roster domain.Roster) *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
		registry:  registry,
		roster:    roster,
	}
}

// NewTaskValidatorWithLimits creates a task validator with explicit title
// length bounds, used when the limits come from configuration.
func NewTaskValidatorWithLimits(registry *timeslot.Registry, roster domain.Roster, titleMin, titleMax int) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithLimits(titleMin, titleMax),
		registry:  registry,
		roster:    roster,
	}
}

// ValidateTitle validates a task title for creation or edit
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}

	if !tv.validator.IsValidTitleLength(trimmed) {
		min, max := tv.validator.TitleLimits()
		validationError.AddInvalidLengthError("title", trimmed, min, max)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateSlot validates that a slot label is selected and belongs to the registry
func (tv *TaskValidator) ValidateSlot(slot string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(slot) {
		validationError.AddRequiredError("time_slot")
		return validationError
	}

	if !tv.registry.Contains(slot) {
		validationError.AddInvalidValueError("time_slot", slot, "not a registered time slot")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePriority validates a task priority value
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if !priority.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", string(priority), "must be low, medium or high")
		return validationError
	}
	return nil
}

// ValidateAssignee validates that an assignee belongs to the roster
func (tv *TaskValidator) ValidateAssignee(assignee string) error {
	if !tv.roster.Contains(assignee) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("assignee", assignee, "not a roster member")
		return validationError
	}
	return nil
}

// ValidateDate validates a planner date string
func (tv *TaskValidator) ValidateDate(date string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(date) {
		validationError.AddRequiredError("date")
		return validationError
	}

	if !tv.validator.IsValidDate(date) {
		validationError.AddInvalidFormatError("date", date, domain.DateLayout)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a gateway-assigned task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// ValidateNewTask validates all fields for task creation
func (tv *TaskValidator) ValidateNewTask(slot, title string, priority domain.Priority, assignee, date string) error {
	validationError := NewValidationError()

	collect := func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	collect(tv.ValidateSlot(slot))
	collect(tv.ValidateTitle(title))
	collect(tv.ValidatePriority(priority))
	collect(tv.ValidateAssignee(assignee))
	collect(tv.ValidateDate(date))

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
