package recommend

import (
	"sort"

	"github.com/sandeepkv93/insightd/internal/model"
)

// Recommendation is an ephemeral, computed ranking entry. It is never
// persisted; callers regenerate the list on each request.
type Recommendation struct {
	Task   model.Task
	Score  int
	Reason string
}

// Recommend ranks pending tasks by how well they fit the given energy level.
func Recommend(tasks []model.Task, energy model.EnergyLevel) []Recommendation {
	return rank(tasks, energy, 0, false)
}

// RecommendAt ranks pending tasks using both the energy level and the hour of
// day. The time-of-day score contributes at half weight, floor-rounded, and
// the combined score is capped at 10.
func RecommendAt(tasks []model.Task, energy model.EnergyLevel, hour int) []Recommendation {
	return rank(tasks, energy, hour, true)
}

func rank(tasks []model.Task, energy model.EnergyLevel, hour int, withHour bool) []Recommendation {
	out := make([]Recommendation, 0, len(tasks))
	for _, task := range tasks {
		if task.Status != model.TaskStatusPending {
			continue
		}

		energyScore, energyReason, energyOK := ScoreForEnergy(task, energy)

		timeScore, timeReason, timeOK := 0, "", false
		if withHour {
			timeScore, timeReason, timeOK = ScoreForTimeOfDay(task, hour)
		}

		if !energyOK && !timeOK {
			continue
		}

		score := energyScore + timeScore/2
		if score > maxScore {
			score = maxScore
		}

		reason := energyReason
		if timeOK {
			if reason != "" {
				reason += " "
			}
			reason += timeReason
		}

		out = append(out, Recommendation{Task: task, Score: score, Reason: reason})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
