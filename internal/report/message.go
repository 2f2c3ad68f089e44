package report

import (
	"fmt"

	"github.com/sandeepkv93/insightd/internal/model"
)

var motivationPools = map[string][]string{
	"struggling": {
		"Rough stretch. Pick one task tomorrow and win the day small.",
		"Low numbers are a starting line, not a verdict.",
		"One finished task a day rebuilds the rhythm.",
	},
	"steady": {
		"Solid, steady progress. Consistency beats intensity.",
		"You kept showing up. That is the hard part.",
		"A dependable week. Nudge one metric next period.",
	},
	"strong": {
		"Strong period. Your plan and your execution are lining up.",
		"Great output. Protect the habits that produced it.",
		"You are operating near your targets. Keep the cadence.",
	},
	"exceptional": {
		"Exceptional work. This is what a dialed-in period looks like.",
		"Outstanding numbers across the board. Take a victory lap.",
		"You beat your own bar. Set the next one carefully.",
	},
}

func motivationTier(completionRate float64) string {
	switch {
	case completionRate < 40:
		return "struggling"
	case completionRate < 70:
		return "steady"
	case completionRate < 90:
		return "strong"
	default:
		return "exceptional"
	}
}

func (g *Generator) motivationalMessage(summary model.Summary) string {
	pool := motivationPools[motivationTier(summary.CompletionRate)]
	return pool[g.Rand.Intn(len(pool))]
}

// buildInsights derives free-form recommendations from the summary. Output
// is deterministic for a given summary and period.
func buildInsights(summary model.Summary, p model.Period) []string {
	days := p.Days()
	out := make([]string, 0, 4)

	focusBudget := focusTargetPerDay * days
	if summary.TotalFocusMinutes < focusBudget {
		out = append(out, fmt.Sprintf(
			"Focus time was %d of a %d minute budget. Reserve one protected hour a day.",
			summary.TotalFocusMinutes, focusBudget))
	}
	if summary.PomodorosCompleted < pomodoroTargetPerDay*days/2 {
		out = append(out, "Session count is low. Shorter, more frequent pomodoros tend to stick better.")
	}
	if summary.AverageEnergyLevel == 0 {
		out = append(out, "No energy levels were recorded. Daily samples make recommendations sharper.")
	} else if summary.AverageEnergyLevel < 3 {
		out = append(out, "Average energy ran low. Front-load demanding tasks into your best hours.")
	}
	if summary.CompletionRate >= 90 && summary.TasksCompleted > 0 {
		out = append(out, "Completion is excellent. Consider planning slightly more ambitious days.")
	}
	if len(out) == 0 {
		out = append(out, "Metrics look balanced. Keep the current routine.")
	}
	return out
}
