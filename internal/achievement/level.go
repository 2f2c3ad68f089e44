package achievement

import "github.com/sandeepkv93/insightd/internal/model"

type tier struct {
	level     int
	title     string
	minPoints int
}

// levelTable is the fixed leveling curve. Tiers must stay in ascending
// minPoints order.
var levelTable = []tier{
	{1, "Beginner", 0},
	{2, "Apprentice", 50},
	{3, "Mover", 120},
	{4, "Finisher", 250},
	{5, "Executor", 500},
	{6, "Achiever", 1000},
	{7, "Strategist", 2000},
	{8, "Master", 3500},
	{9, "Grandmaster", 5500},
	{10, "Legend", 8000},
}

// LevelFor maps a cumulative point total to its tier: the greatest tier whose
// minimum does not exceed the total. At the top tier PointsToNext is
// model.PointsToNextMax. Negative totals clamp to zero.
func LevelFor(totalPoints int) model.Level {
	if totalPoints < 0 {
		totalPoints = 0
	}
	current := levelTable[0]
	for _, t := range levelTable {
		if t.minPoints > totalPoints {
			break
		}
		current = t
	}

	out := model.Level{Level: current.level, Title: current.title, PointsToNext: model.PointsToNextMax}
	if current.level < len(levelTable) {
		next := levelTable[current.level] // table index equals level-1
		out.PointsToNext = next.minPoints - totalPoints
	}
	return out
}
