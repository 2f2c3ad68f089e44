package recommend

import (
	"strings"

	"github.com/sandeepkv93/insightd/internal/model"
)

// relevanceFloor is the minimum score a single scoring pass must reach
// before a task is considered relevant at all.
const relevanceFloor = 2

const maxScore = 10

var demandingCategories = map[string]bool{
	"work":     true,
	"study":    true,
	"project":  true,
	"deep":     true,
	"learning": true,
}

var steadyCategories = map[string]bool{
	"admin":   true,
	"chores":  true,
	"errands": true,
	"routine": true,
	"email":   true,
}

var recreationalCategories = map[string]bool{
	"leisure": true,
	"hobby":   true,
	"rest":    true,
	"social":  true,
}

var creativeCategories = map[string]bool{
	"creative": true,
	"writing":  true,
	"design":   true,
	"music":    true,
	"hobby":    true,
}

func category(task model.Task) string {
	return strings.ToLower(strings.TrimSpace(task.Category))
}

// ScoreForEnergy rates a task against the user's current energy level.
// It returns ok=false when the task does not clear the relevance floor.
// Rules apply in a fixed order so the reason text is reproducible.
func ScoreForEnergy(task model.Task, energy model.EnergyLevel) (int, string, bool) {
	score := 0
	reasons := make([]string, 0, 4)
	cat := category(task)

	switch energy {
	case model.EnergyHigh:
		if task.Priority == model.PriorityHigh {
			score += 4
			reasons = append(reasons, "high-priority work suits peak energy")
		}
		if task.EstimatedMinutes > 45 {
			score += 3
			reasons = append(reasons, "long task fits a high-energy block")
		}
		if demandingCategories[cat] {
			score += 2
			reasons = append(reasons, "demanding work pays off while energy lasts")
		}
	case model.EnergyMedium:
		if task.EstimatedMinutes >= 20 && task.EstimatedMinutes <= 45 {
			score += 3
			reasons = append(reasons, "medium-length task fits steady energy")
		}
		if steadyCategories[cat] {
			score += 2
			reasons = append(reasons, "routine work keeps a steady pace")
		}
		if task.Priority == model.PriorityMedium {
			score += 2
			reasons = append(reasons, "medium priority matches current pace")
		}
	case model.EnergyLow:
		if task.EstimatedMinutes <= 20 {
			score += 3
			reasons = append(reasons, "short task stays manageable at low energy")
		}
		if task.Priority == model.PriorityLow {
			score += 2
			reasons = append(reasons, "low-pressure task for a low-energy stretch")
		}
		if recreationalCategories[cat] {
			score += 3
			reasons = append(reasons, "restful activity helps recover energy")
		}
		if demandingCategories[cat] {
			score -= 2
			reasons = append(reasons, "demanding work is a poor fit right now")
		}
	}

	if task.IsFlexible {
		score++
		reasons = append(reasons, "flexible timing")
	}

	if score < relevanceFloor {
		return 0, "", false
	}
	if score > maxScore {
		score = maxScore
	}
	return score, strings.Join(reasons, ", "), true
}

// ScoreForTimeOfDay rates a task against the hour of day (0..23), split into
// four bands: morning 6-12, afternoon 12-18, evening 18-22, night 22-6.
func ScoreForTimeOfDay(task model.Task, hour int) (int, string, bool) {
	score := 0
	reasons := make([]string, 0, 3)
	cat := category(task)

	switch {
	case hour >= 6 && hour < 12: // morning
		if demandingCategories[cat] {
			score += 3
			reasons = append(reasons, "morning hours suit demanding work")
		}
		if task.Priority == model.PriorityHigh {
			score += 3
			reasons = append(reasons, "mornings favor top priorities")
		}
		if task.EstimatedMinutes > 45 {
			score += 2
			reasons = append(reasons, "room for a long session before midday")
		}
	case hour >= 12 && hour < 18: // afternoon
		if steadyCategories[cat] {
			score += 2
			reasons = append(reasons, "afternoons work well for routine tasks")
		}
		if task.EstimatedMinutes >= 20 && task.EstimatedMinutes <= 45 {
			score += 2
			reasons = append(reasons, "mid-length task fits the afternoon")
		}
		if task.Priority == model.PriorityMedium {
			score += 2
			reasons = append(reasons, "steady-priority work for the afternoon")
		}
	case hour >= 18 && hour < 22: // evening
		if task.EstimatedMinutes <= 30 {
			score += 2
			reasons = append(reasons, "evening suits a shorter task")
		}
		if recreationalCategories[cat] || steadyCategories[cat] {
			score += 2
			reasons = append(reasons, "winding-down work fits the evening")
		}
		if task.Priority == model.PriorityLow {
			score++
			reasons = append(reasons, "low stakes for the end of the day")
		}
	default: // night, 22-6
		if creativeCategories[cat] {
			score += 3
			reasons = append(reasons, "night hours favor creative work")
		}
		if task.EstimatedMinutes <= 20 {
			score += 2
			reasons = append(reasons, "short task fits a late hour")
		}
		if task.Priority == model.PriorityLow {
			score++
			reasons = append(reasons, "nothing urgent this late")
		}
	}

	if score < relevanceFloor {
		return 0, "", false
	}
	if score > maxScore {
		score = maxScore
	}
	return score, strings.Join(reasons, ", "), true
}
