package domain

import (
	"day-planner/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and gateway Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to a gateway TaskRecord.
func (m *TaskMapper) ToRecord(task Task) sqlite.TaskRecord {
	return sqlite.TaskRecord{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		Assignee:  task.Assignee,
		CreatedAt: task.CreatedAt,
		TimeSlot:  task.TimeSlot,
		Date:      task.Date,
	}
}

// FromRecord converts a gateway TaskRecord to a domain Task.
func (m *TaskMapper) FromRecord(rec sqlite.TaskRecord) Task {
	return Task{
		ID:        rec.ID,
		Title:     rec.Title,
		Completed: rec.Completed,
		Priority:  Priority(rec.Priority),
		Assignee:  rec.Assignee,
		CreatedAt: rec.CreatedAt,
		TimeSlot:  rec.TimeSlot,
		Date:      rec.Date,
	}
}

// FromRecordSlice converts a slice of gateway TaskRecords to domain Tasks.
func (m *TaskMapper) FromRecordSlice(records []*sqlite.TaskRecord) []Task {
	tasks := make([]Task, len(records))
	for i, rec := range records {
		tasks[i] = m.FromRecord(*rec)
	}
	return tasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
