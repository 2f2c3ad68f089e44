package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sandeepkv93/insightd/internal/model"
)

const (
	sqliteTimeLayout = time.RFC3339Nano
	sqliteDayLayout  = "2006-01-02"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in model.Task) error {
	if err := in.Validate(); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, estimated_minutes, priority, category, flexible, status, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Description, in.EstimatedMinutes, in.Priority, in.Category,
		boolInt(in.IsFlexible), in.Status, mustTime(in.CreatedAt), nullTime(in.CompletedAt),
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := insertSubtasks(ctx, tx, in.ID, in.Subtasks); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, estimated_minutes, priority, category, flexible, status, created_at, completed_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	subtasks, err := r.loadSubtasks(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	task.Subtasks = subtasks
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in model.Task) error {
	if err := in.Validate(); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, estimated_minutes = ?, priority = ?, category = ?, flexible = ?, status = ?, completed_at = ?
		WHERE id = ?`,
		in.Title, in.Description, in.EstimatedMinutes, in.Priority, in.Category,
		boolInt(in.IsFlexible), in.Status, nullTime(in.CompletedAt), in.ID,
	)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := checkRowsAffected(res); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, in.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := insertSubtasks(ctx, tx, in.ID, in.Subtasks); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]model.Task, error) {
	query := `SELECT id, title, description, estimated_minutes, priority, category, flexible, status, created_at, completed_at FROM tasks`
	args := make([]any, 0, 3)
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)
	return r.queryTasks(ctx, query, args...)
}

func (r *SQLiteRepository) TasksInRange(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	fromDay, toDay := dayBounds(from, to)
	return r.queryTasks(ctx, `
		SELECT id, title, description, estimated_minutes, priority, category, flexible, status, created_at, completed_at
		FROM tasks
		WHERE (substr(created_at, 1, 10) BETWEEN ? AND ?)
		   OR (completed_at IS NOT NULL AND substr(completed_at, 1, 10) BETWEEN ? AND ?)
		ORDER BY created_at ASC`,
		fromDay, toDay, fromDay, toDay)
}

func (r *SQLiteRepository) queryTasks(ctx context.Context, query string, args ...any) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		subtasks, subErr := r.loadSubtasks(ctx, out[i].ID)
		if subErr != nil {
			return nil, subErr
		}
		out[i].Subtasks = subtasks
	}
	return out, nil
}

func (r *SQLiteRepository) AppendSession(ctx context.Context, in model.Session) error {
	if err := in.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, type, started_at, completed_at, actual_minutes)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Type, mustTime(in.StartedAt), nullTime(in.CompletedAt), in.ActualMinutes,
	)
	return err
}

func (r *SQLiteRepository) SessionsInRange(ctx context.Context, from, to time.Time) ([]model.Session, error) {
	fromDay, toDay := dayBounds(from, to)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, started_at, completed_at, actual_minutes
		FROM sessions
		WHERE substr(started_at, 1, 10) BETWEEN ? AND ?
		ORDER BY started_at ASC`, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Session, 0)
	for rows.Next() {
		item, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) UpsertDailyStats(ctx context.Context, in model.DailyStats) error {
	if err := in.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_stats (date, tasks_planned, tasks_completed, pomodoros_completed, energy_level)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			tasks_planned = excluded.tasks_planned,
			tasks_completed = excluded.tasks_completed,
			pomodoros_completed = excluded.pomodoros_completed,
			energy_level = excluded.energy_level`,
		model.DateOf(in.Date).Format(sqliteDayLayout),
		in.TasksPlanned, in.TasksCompleted, in.PomodorosCompleted, in.EnergyLevel,
	)
	return err
}

func (r *SQLiteRepository) DailyStatsInRange(ctx context.Context, from, to time.Time) ([]model.DailyStats, error) {
	fromDay, toDay := dayBounds(from, to)
	rows, err := r.db.QueryContext(ctx, `
		SELECT date, tasks_planned, tasks_completed, pomodoros_completed, energy_level
		FROM daily_stats
		WHERE date BETWEEN ? AND ?
		ORDER BY date ASC`, fromDay, toDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DailyStats, 0)
	for rows.Next() {
		item, scanErr := scanDailyStats(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) SetStreak(ctx context.Context, in model.Streak) error {
	if in.Current < 0 || in.Longest < 0 {
		return errors.New("storage: streak counters must not be negative")
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO streaks (id, current, longest) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET current = excluded.current, longest = excluded.longest`,
		in.Current, in.Longest,
	)
	return err
}

func (r *SQLiteRepository) Streak(ctx context.Context) (model.Streak, error) {
	row := r.db.QueryRowContext(ctx, `SELECT current, longest FROM streaks WHERE id = 1`)
	var out model.Streak
	if err := row.Scan(&out.Current, &out.Longest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Streak{}, nil
		}
		return model.Streak{}, err
	}
	return out, nil
}

func (r *SQLiteRepository) loadSubtasks(ctx context.Context, taskID string) ([]model.Subtask, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, duration_minutes, done
		FROM subtasks WHERE task_id = ? ORDER BY position ASC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Subtask
	for rows.Next() {
		var sub model.Subtask
		var done int
		if err := rows.Scan(&sub.ID, &sub.Title, &sub.DurationMinutes, &done); err != nil {
			return nil, err
		}
		sub.Done = done == 1
		out = append(out, sub)
	}
	return out, rows.Err()
}

func insertSubtasks(ctx context.Context, tx *sql.Tx, taskID string, subtasks []model.Subtask) error {
	for i, sub := range subtasks {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO subtasks (id, task_id, title, duration_minutes, done, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			sub.ID, taskID, sub.Title, sub.DurationMinutes, boolInt(sub.Done), i,
		); err != nil {
			return err
		}
	}
	return nil
}

func dayBounds(from, to time.Time) (string, string) {
	return model.DateOf(from).Format(sqliteDayLayout), model.DateOf(to).Format(sqliteDayLayout)
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(sqliteTimeLayout, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var flexible int
	var created string
	var completed sql.NullString
	if err := s.Scan(&out.ID, &out.Title, &out.Description, &out.EstimatedMinutes, &out.Priority, &out.Category, &flexible, &out.Status, &created, &completed); err != nil {
		return model.Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Task{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return model.Task{}, err
	}
	out.IsFlexible = flexible == 1
	out.CreatedAt = createdAt
	out.CompletedAt = completedAt
	return out, nil
}

func scanSession(s scanner) (model.Session, error) {
	var out model.Session
	var started string
	var completed sql.NullString
	if err := s.Scan(&out.ID, &out.Type, &started, &completed, &out.ActualMinutes); err != nil {
		return model.Session{}, err
	}
	startedAt, err := parseRequiredTime(started)
	if err != nil {
		return model.Session{}, err
	}
	completedAt, err := parseNullableTime(completed)
	if err != nil {
		return model.Session{}, err
	}
	out.StartedAt = startedAt
	out.CompletedAt = completedAt
	return out, nil
}

func scanDailyStats(s scanner) (model.DailyStats, error) {
	var out model.DailyStats
	var date string
	if err := s.Scan(&date, &out.TasksPlanned, &out.TasksCompleted, &out.PomodorosCompleted, &out.EnergyLevel); err != nil {
		return model.DailyStats{}, err
	}
	day, err := time.Parse(sqliteDayLayout, date)
	if err != nil {
		return model.DailyStats{}, err
	}
	out.Date = day.UTC()
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
