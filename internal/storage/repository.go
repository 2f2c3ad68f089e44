package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/insightd/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

type TaskListFilter struct {
	Status model.TaskStatus
	Limit  int
	Offset int
}

// Repository is the history store the insight engine reads from and the
// surrounding application writes into. Range arguments are inclusive
// calendar days.
type Repository interface {
	CreateTask(ctx context.Context, in model.Task) error
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, in model.Task) error
	DeleteTask(ctx context.Context, id string) error
	ListTasks(ctx context.Context, filter TaskListFilter) ([]model.Task, error)
	TasksInRange(ctx context.Context, from, to time.Time) ([]model.Task, error)

	AppendSession(ctx context.Context, in model.Session) error
	SessionsInRange(ctx context.Context, from, to time.Time) ([]model.Session, error)

	UpsertDailyStats(ctx context.Context, in model.DailyStats) error
	DailyStatsInRange(ctx context.Context, from, to time.Time) ([]model.DailyStats, error)

	SetStreak(ctx context.Context, in model.Streak) error
	Streak(ctx context.Context) (model.Streak, error)

	Close() error
}
