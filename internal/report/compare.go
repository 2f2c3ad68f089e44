package report

import "github.com/sandeepkv93/insightd/internal/model"

// Delta is the signed difference between two reports' key metrics.
type Delta struct {
	CompletionRateChange   float64 `json:"completionRateChange"`
	FocusTimeChange        int     `json:"focusTimeChange"`
	TasksCompletedChange   int     `json:"tasksCompletedChange"`
	EnergyLevelChange      float64 `json:"energyLevelChange"`
	AchievementCountChange int     `json:"achievementCountChange"`
	HasImprovement         bool    `json:"hasImprovement"`
}

// Compare diffs current against previous. A nil previous yields all-zero
// deltas with no improvement claimed.
func Compare(current model.Report, previous *model.Report) Delta {
	if previous == nil {
		return Delta{}
	}
	d := Delta{
		CompletionRateChange:   round1(current.Summary.CompletionRate - previous.Summary.CompletionRate),
		FocusTimeChange:        current.Summary.TotalFocusMinutes - previous.Summary.TotalFocusMinutes,
		TasksCompletedChange:   current.Summary.TasksCompleted - previous.Summary.TasksCompleted,
		EnergyLevelChange:      round1(current.Summary.AverageEnergyLevel - previous.Summary.AverageEnergyLevel),
		AchievementCountChange: len(current.Achievements) - len(previous.Achievements),
	}
	d.HasImprovement = d.CompletionRateChange > 0 || d.FocusTimeChange > 0 || d.EnergyLevelChange > 0
	return d
}
