package storage

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		estimated_minutes INTEGER NOT NULL,
		priority TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		flexible INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		completed_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS subtasks (
		id TEXT PRIMARY KEY,
		task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		done INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		started_at TEXT NOT NULL,
		completed_at TEXT,
		actual_minutes INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS daily_stats (
		date TEXT PRIMARY KEY,
		tasks_planned INTEGER NOT NULL DEFAULT 0,
		tasks_completed INTEGER NOT NULL DEFAULT 0,
		pomodoros_completed INTEGER NOT NULL DEFAULT 0,
		energy_level INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS streaks (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		current INTEGER NOT NULL DEFAULT 0,
		longest INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
}

func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
