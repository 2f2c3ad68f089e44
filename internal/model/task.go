package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidEnergy   = errors.New("model: invalid energy level")
	ErrInvalidDuration = errors.New("model: estimated duration must be positive")
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusPostponed  TaskStatus = "postponed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusPostponed:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

func (e EnergyLevel) IsValid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	default:
		return false
	}
}

type Subtask struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Done            bool   `json:"done"`
}

type Task struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Priority         Priority   `json:"priority"`
	Category         string     `json:"category"`
	IsFlexible       bool       `json:"isFlexible"`
	Subtasks         []Subtask  `json:"subtasks,omitempty"`
	Status           TaskStatus `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.EstimatedMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, t.EstimatedMinutes)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if t.Status == TaskStatusCompleted && t.CompletedAt == nil {
		return errors.New("model: completed_at is required when task status is completed")
	}
	if t.Status != TaskStatusCompleted && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task status is not completed")
	}
	for _, sub := range t.Subtasks {
		if sub.DurationMinutes < 0 {
			return fmt.Errorf("%w: subtask %q", ErrInvalidDuration, sub.Title)
		}
	}
	return nil
}
