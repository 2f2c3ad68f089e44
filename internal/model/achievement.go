package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidAchievementType = errors.New("model: invalid achievement type")

type AchievementType string

const (
	AchievementTaskCompleted     AchievementType = "task_completed"
	AchievementPomodoroCompleted AchievementType = "pomodoro_completed"
	AchievementStreakMilestone   AchievementType = "streak_milestone"
	AchievementDailyGoal         AchievementType = "daily_goal"
	AchievementFocusTime         AchievementType = "focus_time"
)

func (a AchievementType) IsValid() bool {
	switch a {
	case AchievementTaskCompleted, AchievementPomodoroCompleted, AchievementStreakMilestone, AchievementDailyGoal, AchievementFocusTime:
		return true
	default:
		return false
	}
}

type Achievement struct {
	ID          string          `json:"id"`
	Type        AchievementType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Points      int             `json:"points"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (a Achievement) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return errors.New("model: achievement id is required")
	}
	if !a.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAchievementType, a.Type)
	}
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("model: achievement title is required")
	}
	if a.Points <= 0 {
		return errors.New("model: achievement points must be positive")
	}
	if a.CreatedAt.IsZero() {
		return errors.New("model: achievement created_at is required")
	}
	return nil
}

// PointsToNextMax is the points-to-next value reported at the top tier,
// where no higher tier exists.
const PointsToNextMax = -1

// Level is derived from a cumulative point total, never stored.
type Level struct {
	Level        int    `json:"level"`
	Title        string `json:"title"`
	PointsToNext int    `json:"pointsToNext"`
}
