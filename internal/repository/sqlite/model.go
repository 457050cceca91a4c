package sqlite

import "time"

// TaskRecord is the persisted form of a planner task. The ID is assigned by
// the gateway on creation.
type TaskRecord struct {
	ID        string
	Title     string
	Completed bool
	Priority  string
	Assignee  string
	CreatedAt time.Time
	TimeSlot  string
	Date      string // YYYY-MM-DD
}

// UserRecord is a planner account used by the auth provider.
type UserRecord struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordSalt string
	PasswordHash string
	CreatedAt    time.Time
}

// Fields is a partial set of task columns for an update, keyed by column
// name. Unknown columns are rejected by the gateway.
type Fields map[string]interface{}
