package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPeriodType = errors.New("model: invalid period type")

type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

func (p PeriodType) IsValid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly:
		return true
	default:
		return false
	}
}

type Summary struct {
	CompletionRate     float64 `json:"completionRate"`
	TotalFocusMinutes  int     `json:"totalFocusMinutes"`
	TasksCompleted     int     `json:"tasksCompleted"`
	PomodorosCompleted int     `json:"pomodorosCompleted"`
	AverageEnergyLevel float64 `json:"averageEnergyLevel"`
}

type ImprovementArea struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Priority     Priority `json:"priority"`
	CurrentScore int      `json:"currentScore"`
	TargetScore  int      `json:"targetScore"`
	Suggestions  []string `json:"suggestions"`
}

type Goal struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	CurrentValue float64 `json:"currentValue"`
	TargetValue  float64 `json:"targetValue"`
	Unit         string  `json:"unit"`
	IsAchievable bool    `json:"isAchievable"`
}

type Insights struct {
	Recommendations []string `json:"recommendations"`
}

// Report is the exported document; its JSON shape is the module's only wire
// format and must stay stable across versions.
type Report struct {
	ID                  string            `json:"id"`
	PeriodType          PeriodType        `json:"periodType"`
	GeneratedAt         time.Time         `json:"generatedAt"`
	PeriodStart         time.Time         `json:"periodStart"`
	PeriodEnd           time.Time         `json:"periodEnd"`
	Summary             Summary           `json:"summary"`
	Achievements        []Achievement     `json:"achievements"`
	ImprovementAreas    []ImprovementArea `json:"improvementAreas"`
	Goals               []Goal            `json:"goals"`
	MotivationalMessage string            `json:"motivationalMessage"`
	Insights            Insights          `json:"insights"`
	ConfidenceLevel     int               `json:"confidenceLevel"`
}

func (r Report) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: report id is required")
	}
	if !r.PeriodType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPeriodType, r.PeriodType)
	}
	if r.PeriodStart.IsZero() || r.PeriodEnd.IsZero() {
		return errors.New("model: report period bounds are required")
	}
	if r.PeriodEnd.Before(r.PeriodStart) {
		return errors.New("model: report period end precedes start")
	}
	if r.ConfidenceLevel < 0 || r.ConfidenceLevel > 100 {
		return fmt.Errorf("model: confidence level out of range: %d", r.ConfidenceLevel)
	}
	return nil
}

// Period returns the report's calendar window.
func (r Report) Period() Period {
	return Period{Type: r.PeriodType, Start: r.PeriodStart, End: r.PeriodEnd}
}
