package achievement

type Situation string

const (
	SituationLowCompletion Situation = "low_completion"
	SituationMissedDay     Situation = "missed_day"
	SituationDistracted    Situation = "distracted"
)

var encouragementPools = map[Situation][]string{
	SituationLowCompletion: {
		"A slow day is still a day you showed up.",
		"Pick one small task and finish it. Momentum follows.",
		"Plans slip. Tomorrow's list is a fresh start.",
		"Done is better than perfect. Close one thing out.",
	},
	SituationMissedDay: {
		"One missed day does not undo the streak you built.",
		"Come back today. That is all a streak asks.",
		"Rest days happen. What matters is the return.",
		"The habit is bigger than one gap in the calendar.",
	},
	SituationDistracted: {
		"Close the extra tabs. One task, one timer.",
		"Distraction is a signal. Try a shorter session.",
		"Reset with a five-minute break, then one pomodoro.",
		"Pick the smallest next step and start the clock.",
	},
}

const encouragementFallback = "Keep going. Small steps count."

// Encouragement returns a random line from the fixed pool for the given
// situation. Unknown situations get a neutral fallback, never an error.
func (f *Factory) Encouragement(situation Situation) string {
	pool, ok := encouragementPools[situation]
	if !ok {
		return encouragementFallback
	}
	return pool[f.rand.Intn(len(pool))]
}
