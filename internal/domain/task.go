package domain

import "time"

// DateLayout is the day-granularity date format used throughout the planner.
const DateLayout = "2006-01-02"

// Priority is the relative importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether the priority is one of the known values.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// String returns the priority as its wire representation.
func (p Priority) String() string {
	return string(p)
}

// Task represents a time-slotted task in the domain model.
// This is a pure domain model without persistence-specific concerns.
type Task struct {
	ID        string    // assigned by the gateway on creation; empty before first save
	Title     string
	Completed bool
	Priority  Priority
	Assignee  string
	CreatedAt time.Time // set once, immutable thereafter
	TimeSlot  string    // member of the slot registry
	Date      string    // DateLayout formatted
}

// NewTask creates an unsaved Task with defaults applied.
func NewTask(title, timeSlot, date string) Task {
	return Task{
		Title:     title,
		Priority:  PriorityMedium,
		Assignee:  Unassigned,
		CreatedAt: time.Now(),
		TimeSlot:  timeSlot,
		Date:      date,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.TimeSlot != "" && t.Date != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}
