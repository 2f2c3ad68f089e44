package report

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/insightd/internal/model"
)

const completionRateTarget = 80.0

// nextGoals derives goals for the period after p. Each metric's trend is a
// two-point linear projection against the previous period; with no prior
// data the projection is flat. Goals are always included, flagged
// unachievable when the projection falls short.
func (g *Generator) nextGoals(ctx context.Context, current model.Summary, p model.Period) ([]model.Goal, error) {
	prev := p.Previous()
	prevStats, err := g.History.DailyStatsInRange(ctx, prev.Start, prev.End)
	if err != nil {
		return nil, fmt.Errorf("load previous daily stats: %w", err)
	}
	prevSessions, err := g.History.SessionsInRange(ctx, prev.Start, prev.End)
	if err != nil {
		return nil, fmt.Errorf("load previous sessions: %w", err)
	}
	prevSummary := summarize(prevStats, prevSessions)
	hasPrevious := observedDays(prevStats, prevSessions) > 0

	nextDays := p.Next().Days()

	goals := []model.Goal{
		{
			ID:           g.NewID(),
			Title:        "Hit the completion target",
			Description:  "Finish at least 80% of planned tasks next period.",
			Type:         "completion_rate",
			CurrentValue: current.CompletionRate,
			TargetValue:  completionRateTarget,
			Unit:         "%",
		},
		{
			ID:           g.NewID(),
			Title:        "Build focus time",
			Description:  "Accumulate the period's focus budget of deep-work minutes.",
			Type:         "focus_time",
			CurrentValue: float64(current.TotalFocusMinutes),
			TargetValue:  float64(focusTargetPerDay * nextDays),
			Unit:         "minutes",
		},
		{
			ID:           g.NewID(),
			Title:        "Keep the pomodoro cadence",
			Description:  "Complete a steady number of focus sessions next period.",
			Type:         "pomodoro_count",
			CurrentValue: float64(current.PomodorosCompleted),
			TargetValue:  float64(pomodoroTargetPerDay * nextDays),
			Unit:         "sessions",
		},
	}

	previousValues := []float64{
		prevSummary.CompletionRate,
		float64(prevSummary.TotalFocusMinutes),
		float64(prevSummary.PomodorosCompleted),
	}
	for i := range goals {
		projected := projectTrend(goals[i].CurrentValue, previousValues[i], hasPrevious)
		goals[i].IsAchievable = projected >= goals[i].TargetValue
	}
	return goals, nil
}

// projectTrend extrapolates one step forward from the last two periods,
// clamped at zero. Without history the trend is flat.
func projectTrend(current, previous float64, hasPrevious bool) float64 {
	if !hasPrevious {
		return current
	}
	projected := current + (current - previous)
	if projected < 0 {
		return 0
	}
	return projected
}
