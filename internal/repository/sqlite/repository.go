package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"day-planner/internal/errors"
	"day-planner/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Gateway defines the interface for the persistent document store the
// planner core depends on. IDs are assigned by the gateway on create.
type Gateway interface {
	// Task operations
	FetchByDate(ctx context.Context, date string) ([]*TaskRecord, error)
	Create(ctx context.Context, rec *TaskRecord) error
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error

	// User operations
	CreateUser(ctx context.Context, user *UserRecord) error
	GetUserByEmail(ctx context.Context, email string) (*UserRecord, error)

	// Preference operations
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error

	// Utility
	Close() error
}

// allowedTaskFields whitelists the columns a partial update may touch.
var allowedTaskFields = map[string]bool{
	"title":     true,
	"completed": true,
	"priority":  true,
	"assignee":  true,
	"time_slot": true,
}

// SQLiteGateway implements the Gateway interface
type SQLiteGateway struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite gateway instance with unbounded per-call
// timeouts; callers bound operations through their own contexts.
func New(dbPath string) (*SQLiteGateway, error) {
	return NewWithTimeouts(dbPath, 0, 0)
}

// NewWithTimeouts creates a SQLite gateway whose reads and writes are
// additionally bounded by the given timeouts. A zero timeout leaves the
// caller's context deadline as the only bound.
func NewWithTimeouts(dbPath string, queryTimeout, writeTimeout time.Duration) (*SQLiteGateway, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewGatewayError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewGatewayError("run migrations", err)
	}

	return &SQLiteGateway{
		db:           db,
		queryTimeout: queryTimeout,
		writeTimeout: writeTimeout,
	}, nil
}

func (g *SQLiteGateway) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.queryTimeout)
}

func (g *SQLiteGateway) writeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.writeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.writeTimeout)
}

// Close closes the database connection
func (g *SQLiteGateway) Close() error {
	return g.db.Close()
}

// FetchByDate retrieves all task records for a calendar date, in insertion order
func (g *SQLiteGateway) FetchByDate(ctx context.Context, date string) ([]*TaskRecord, error) {
	query := `
	SELECT id, title, completed, priority, assignee, created_at, time_slot, date
	FROM tasks
	WHERE date = ?
	ORDER BY created_at ASC, id ASC`

	ctx, cancel := g.readCtx(ctx)
	defer cancel()
	return QueryMultiple(ctx, g.db, query, ScanTaskRecords, "tasks", date)
}

// Create persists a new task record and assigns its ID
func (g *SQLiteGateway) Create(ctx context.Context, rec *TaskRecord) error {
	query := `
	INSERT INTO tasks (id, title, completed, priority, assignee, created_at, time_slot, date)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	ctx, cancel := g.writeCtx(ctx)
	defer cancel()

	id := uuid.NewString()
	_, err := g.db.ExecContext(ctx, query,
		id,
		rec.Title,
		boolToInt(rec.Completed),
		rec.Priority,
		rec.Assignee,
		FormatTimeForDB(rec.CreatedAt),
		rec.TimeSlot,
		rec.Date,
	)
	if err != nil {
		return HandleGatewayError("create task", err)
	}

	rec.ID = id
	return nil
}

// Update applies a partial field update to a task record
func (g *SQLiteGateway) Update(ctx context.Context, id string, fields Fields) error {
	if len(fields) == 0 {
		return errors.NewInvalidInputError("fields", fields, "no fields to update")
	}

	setClauses := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)

	for column, value := range fields {
		if !allowedTaskFields[column] {
			return errors.NewInvalidInputError("fields", column, "unknown task column")
		}
		if b, ok := value.(bool); ok {
			value = boolToInt(b)
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(setClauses, ", ") + " WHERE id = ?"
	ctx, cancel := g.writeCtx(ctx)
	defer cancel()
	return ExecuteWithRowsAffected(ctx, g.db, query, "task", id, args...)
}

// Delete removes a task record by ID
func (g *SQLiteGateway) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	ctx, cancel := g.writeCtx(ctx)
	defer cancel()
	return ExecuteWithRowsAffected(ctx, g.db, query, "task", id, id)
}

// CreateUser persists a new user record and assigns its ID
func (g *SQLiteGateway) CreateUser(ctx context.Context, user *UserRecord) error {
	query := `
	INSERT INTO users (id, email, display_name, password_salt, password_hash, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	ctx, cancel := g.writeCtx(ctx)
	defer cancel()

	id := uuid.NewString()
	_, err := g.db.ExecContext(ctx, query,
		id,
		user.Email,
		user.DisplayName,
		user.PasswordSalt,
		user.PasswordHash,
		FormatTimeForDB(user.CreatedAt),
	)
	if err != nil {
		return HandleGatewayError("create user", err)
	}

	user.ID = id
	return nil
}

// GetUserByEmail retrieves a user record by email address
func (g *SQLiteGateway) GetUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	query := `
	SELECT id, email, display_name, password_salt, password_hash, created_at
	FROM users
	WHERE email = ?`

	ctx, cancel := g.readCtx(ctx)
	defer cancel()
	return QuerySingle(ctx, g.db, query, ScanUserRecord, "user", email, email)
}

// GetPreference retrieves a stored preference value by key
func (g *SQLiteGateway) GetPreference(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM preferences WHERE key = ?`

	ctx, cancel := g.readCtx(ctx)
	defer cancel()

	var value string
	err := g.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", errors.NewNotFoundError("preference", key)
	}
	if err != nil {
		return "", HandleGatewayError("get preference", err)
	}
	return value, nil
}

// SetPreference stores a preference value, replacing any previous one
func (g *SQLiteGateway) SetPreference(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO preferences (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	ctx, cancel := g.writeCtx(ctx)
	defer cancel()

	_, err := g.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return HandleGatewayError("set preference", err)
	}
	return nil
}
