package migrations

import (
	"database/sql"
)

func init() {
	RegisterGoMigration(1, Up_000001_create_planner_schema, Down_000001_create_planner_schema)
}

// Up_000001_create_planner_schema creates the tasks, users and preferences tables.
func Up_000001_create_planner_schema(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium',
			assignee TEXT NOT NULL DEFAULT 'Unassigned',
			created_at TEXT NOT NULL,
			time_slot TEXT NOT NULL,
			date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date)`,
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			password_salt TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Down_000001_create_planner_schema drops the planner tables.
func Down_000001_create_planner_schema(tx *sql.Tx) error {
	statements := []string{
		`DROP INDEX IF EXISTS idx_tasks_date`,
		`DROP TABLE IF EXISTS tasks`,
		`DROP TABLE IF EXISTS users`,
		`DROP TABLE IF EXISTS preferences`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
