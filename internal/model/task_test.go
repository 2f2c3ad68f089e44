package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:               "task-1",
		Title:            "Write report generator",
		EstimatedMinutes: 60,
		Priority:         PriorityHigh,
		Category:         "work",
		Status:           TaskStatusPending,
		CreatedAt:        now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateCompletedRequiresCompletedAt(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:               "task-1",
		Title:            "Done task",
		EstimatedMinutes: 30,
		Priority:         PriorityMedium,
		Category:         "work",
		Status:           TaskStatusCompleted,
		CreatedAt:        now,
	}
	err := task.Validate()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "model: completed_at is required when task status is completed" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTaskValidateRejectsNonPositiveDuration(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:               "task-1",
		Title:            "Zero duration",
		EstimatedMinutes: 0,
		Priority:         PriorityLow,
		Category:         "work",
		Status:           TaskStatusPending,
		CreatedAt:        now,
	}
	if err := task.Validate(); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("expected ErrInvalidDuration, got: %v", err)
	}
}

func TestTaskValidateInvalidEnums(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:               "task-1",
		Title:            "Bad status",
		EstimatedMinutes: 30,
		Priority:         PriorityLow,
		Category:         "work",
		Status:           TaskStatus("bad"),
		CreatedAt:        now,
	}
	if err := task.Validate(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got: %v", err)
	}

	task.Status = TaskStatusPending
	task.Priority = Priority("urgent")
	if err := task.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got: %v", err)
	}
}

func TestDailyStatsCompletionRate(t *testing.T) {
	stats := DailyStats{Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), TasksPlanned: 4, TasksCompleted: 3}
	if got := stats.CompletionRate(); got != 75 {
		t.Fatalf("expected 75, got %v", got)
	}

	stats.TasksPlanned = 0
	if got := stats.CompletionRate(); got != 0 {
		t.Fatalf("expected 0 when nothing planned, got %v", got)
	}
}

func TestSessionValidate(t *testing.T) {
	session := Session{
		ID:            "s-1",
		Type:          SessionFocus,
		StartedAt:     time.Date(2026, 2, 9, 9, 0, 0, 0, time.UTC),
		ActualMinutes: 25,
	}
	if err := session.Validate(); err != nil {
		t.Fatalf("expected valid session, got error: %v", err)
	}

	session.Type = SessionType("nap")
	if err := session.Validate(); !errors.Is(err, ErrInvalidSessionType) {
		t.Fatalf("expected ErrInvalidSessionType, got: %v", err)
	}
}

func TestDailyStatsValidateEnergyRange(t *testing.T) {
	stats := DailyStats{Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), EnergyLevel: 6}
	if err := stats.Validate(); !errors.Is(err, ErrInvalidEnergySample) {
		t.Fatalf("expected ErrInvalidEnergySample, got: %v", err)
	}
}
