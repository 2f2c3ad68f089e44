package report

import (
	"sort"

	"github.com/sandeepkv93/insightd/internal/model"
)

// Per-day targets used to scale period expectations.
const (
	focusTargetPerDay    = 45
	pomodoroTargetPerDay = 4
)

const (
	completionTargetScore = 80
	focusTargetScore      = 70
	pomodoroTargetScore   = 60
	energyTargetScore     = 70
)

// improvementAreas compares summary metrics against fixed targets and emits
// an area for each shortfall, largest gap first.
func improvementAreas(summary model.Summary, p model.Period) []model.ImprovementArea {
	days := p.Days()
	out := make([]model.ImprovementArea, 0, 4)

	add := func(title, description string, current, target int, suggestions []string) {
		if current >= target {
			return
		}
		out = append(out, model.ImprovementArea{
			Title:        title,
			Description:  description,
			Priority:     gapPriority(target - current),
			CurrentScore: current,
			TargetScore:  target,
			Suggestions:  suggestions,
		})
	}

	add("Task Completion",
		"Completed tasks as a share of what was planned.",
		clampScore(int(summary.CompletionRate+0.5)), completionTargetScore,
		[]string{
			"Plan fewer tasks per day and finish them.",
			"Break large tasks into subtasks under 30 minutes.",
			"Move stalled tasks to postponed instead of carrying them.",
		})

	add("Focus Time",
		"Total focused minutes against the period's focus budget.",
		ratioScore(summary.TotalFocusMinutes, focusTargetPerDay*days), focusTargetScore,
		[]string{
			"Block one fixed focus hour at your best time of day.",
			"Start with a single 25-minute session each morning.",
		})

	add("Pomodoro Cadence",
		"Completed pomodoros against the period's session budget.",
		ratioScore(summary.PomodorosCompleted, pomodoroTargetPerDay*days), pomodoroTargetScore,
		[]string{
			"Aim for four sessions a day rather than marathon blocks.",
			"Keep breaks short so the next session starts easily.",
		})

	add("Energy Balance",
		"Average self-reported energy across the period.",
		ratioScore(int(summary.AverageEnergyLevel*20+0.5), 100), energyTargetScore,
		[]string{
			"Record an energy level each day to surface patterns.",
			"Schedule demanding work in your high-energy hours.",
		})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TargetScore-out[i].CurrentScore > out[j].TargetScore-out[j].CurrentScore
	})
	return out
}

func gapPriority(gap int) model.Priority {
	switch {
	case gap >= 40:
		return model.PriorityHigh
	case gap >= 20:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

func ratioScore(value, target int) int {
	if target <= 0 {
		return 0
	}
	return clampScore(value * 100 / target)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
