package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidSessionType  = errors.New("model: invalid session type")
	ErrInvalidEnergySample = errors.New("model: energy sample must be between 1 and 5")
)

type SessionType string

const (
	SessionFocus SessionType = "focus"
	SessionBreak SessionType = "break"
)

func (s SessionType) IsValid() bool {
	switch s {
	case SessionFocus, SessionBreak:
		return true
	default:
		return false
	}
}

// Session is one timer run as recorded by the timer subsystem.
type Session struct {
	ID            string      `json:"id"`
	Type          SessionType `json:"type"`
	StartedAt     time.Time   `json:"startedAt"`
	CompletedAt   *time.Time  `json:"completedAt,omitempty"`
	ActualMinutes int         `json:"actualMinutes"`
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("model: session id is required")
	}
	if !s.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSessionType, s.Type)
	}
	if s.StartedAt.IsZero() {
		return errors.New("model: session started_at is required")
	}
	if s.ActualMinutes < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, s.ActualMinutes)
	}
	return nil
}

// DailyStats is one day of aggregate counters. EnergyLevel is 0 when the
// user recorded no sample that day, otherwise 1..5.
type DailyStats struct {
	Date               time.Time `json:"date"`
	TasksPlanned       int       `json:"tasksPlanned"`
	TasksCompleted     int       `json:"tasksCompleted"`
	PomodorosCompleted int       `json:"pomodorosCompleted"`
	EnergyLevel        int       `json:"energyLevel,omitempty"`
}

func (d DailyStats) Validate() error {
	if d.Date.IsZero() {
		return errors.New("model: daily stats date is required")
	}
	if d.TasksPlanned < 0 || d.TasksCompleted < 0 || d.PomodorosCompleted < 0 {
		return errors.New("model: daily stats counters must not be negative")
	}
	if d.EnergyLevel < 0 || d.EnergyLevel > 5 {
		return fmt.Errorf("%w: %d", ErrInvalidEnergySample, d.EnergyLevel)
	}
	return nil
}

// CompletionRate is the day's completion percentage, 0 when nothing was
// planned.
func (d DailyStats) CompletionRate() float64 {
	if d.TasksPlanned <= 0 {
		return 0
	}
	return float64(d.TasksCompleted) / float64(d.TasksPlanned) * 100
}

type Streak struct {
	Current int `json:"currentStreak"`
	Longest int `json:"longestStreak"`
}
