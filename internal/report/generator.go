package report

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/insightd/internal/achievement"
	"github.com/sandeepkv93/insightd/internal/model"
)

// History supplies the activity records a report aggregates. Ranges are
// inclusive calendar-day windows; TasksInRange returns tasks created or
// completed within the window.
type History interface {
	TasksInRange(ctx context.Context, from, to time.Time) ([]model.Task, error)
	SessionsInRange(ctx context.Context, from, to time.Time) ([]model.Session, error)
	DailyStatsInRange(ctx context.Context, from, to time.Time) ([]model.DailyStats, error)
	Streak(ctx context.Context) (model.Streak, error)
}

// Generator builds period reports from history. The injectable fields exist
// for deterministic tests; NewGenerator fills production defaults.
type Generator struct {
	History History
	Factory *achievement.Factory
	NewID   func() string
	Now     func() time.Time
	Rand    achievement.Source
}

func NewGenerator(history History, factory *achievement.Factory) *Generator {
	if factory == nil {
		factory = achievement.NewFactory(nil, nil, nil)
	}
	return &Generator{
		History: history,
		Factory: factory,
		NewID:   uuid.NewString,
		Now:     time.Now,
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateWeekly reports on the week containing "now" (Monday start).
func (g *Generator) GenerateWeekly(ctx context.Context) (model.Report, error) {
	return g.Generate(ctx, model.WeekOf(g.Now()))
}

// GenerateWeeklyFrom reports on the week containing the given anchor day.
func (g *Generator) GenerateWeeklyFrom(ctx context.Context, anchor time.Time) (model.Report, error) {
	if anchor.IsZero() {
		return model.Report{}, fmt.Errorf("%w: zero anchor", model.ErrInvalidPeriod)
	}
	return g.Generate(ctx, model.WeekOf(anchor))
}

// GenerateMonthly reports on the calendar month containing "now".
func (g *Generator) GenerateMonthly(ctx context.Context) (model.Report, error) {
	return g.Generate(ctx, model.MonthOf(g.Now()))
}

// GenerateMonthlyOf reports on an explicit month.
func (g *Generator) GenerateMonthlyOf(ctx context.Context, year int, month time.Month) (model.Report, error) {
	if year < 1 || month < time.January || month > time.December {
		return model.Report{}, fmt.Errorf("%w: year %d month %d", model.ErrInvalidPeriod, year, month)
	}
	return g.Generate(ctx, model.Month(year, month))
}

// Generate builds the report for an arbitrary valid period. An empty history
// yields a zeroed report with confidence 0, never an error.
func (g *Generator) Generate(ctx context.Context, p model.Period) (model.Report, error) {
	if err := p.Validate(); err != nil {
		return model.Report{}, err
	}

	tasks, err := g.History.TasksInRange(ctx, p.Start, p.End)
	if err != nil {
		return model.Report{}, fmt.Errorf("load tasks: %w", err)
	}
	stats, err := g.History.DailyStatsInRange(ctx, p.Start, p.End)
	if err != nil {
		return model.Report{}, fmt.Errorf("load daily stats: %w", err)
	}
	sessions, err := g.History.SessionsInRange(ctx, p.Start, p.End)
	if err != nil {
		return model.Report{}, fmt.Errorf("load sessions: %w", err)
	}
	streak, err := g.History.Streak(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("load streak: %w", err)
	}

	summary := summarize(stats, sessions)
	observed := observedDays(stats, sessions)

	out := model.Report{
		ID:               g.NewID(),
		PeriodType:       p.Type,
		GeneratedAt:      g.Now().UTC(),
		PeriodStart:      p.Start,
		PeriodEnd:        p.End,
		Summary:          summary,
		Achievements:     []model.Achievement{},
		ImprovementAreas: []model.ImprovementArea{},
		Goals:            []model.Goal{},
		Insights:         model.Insights{Recommendations: []string{}},
	}

	if observed == 0 && len(sessions) == 0 && len(tasks) == 0 {
		out.MotivationalMessage = g.motivationalMessage(summary)
		out.Insights.Recommendations = append(out.Insights.Recommendations,
			"No activity was recorded this period. Log a few sessions to unlock trends.")
		return out, nil
	}

	out.ConfidenceLevel = confidenceLevel(observed, p.Days(), completedFocusSessions(sessions))
	out.Achievements = g.periodAchievements(p, tasks, stats, sessions, streak)
	out.ImprovementAreas = improvementAreas(summary, p)

	goals, err := g.nextGoals(ctx, summary, p)
	if err != nil {
		return model.Report{}, err
	}
	out.Goals = goals
	out.MotivationalMessage = g.motivationalMessage(summary)
	out.Insights.Recommendations = buildInsights(summary, p)
	return out, nil
}

func summarize(stats []model.DailyStats, sessions []model.Session) model.Summary {
	planned, completed, pomodoros := 0, 0, 0
	energySum, energyCount := 0, 0
	for _, d := range stats {
		planned += d.TasksPlanned
		completed += d.TasksCompleted
		pomodoros += d.PomodorosCompleted
		if d.EnergyLevel > 0 {
			energySum += d.EnergyLevel
			energyCount++
		}
	}

	focus := 0
	for _, s := range sessions {
		if s.Type == model.SessionFocus && s.CompletedAt != nil {
			focus += s.ActualMinutes
		}
	}

	out := model.Summary{
		TotalFocusMinutes:  focus,
		TasksCompleted:     completed,
		PomodorosCompleted: pomodoros,
	}
	if planned > 0 {
		out.CompletionRate = round1(float64(completed) / float64(planned) * 100)
	}
	if energyCount > 0 {
		out.AverageEnergyLevel = round1(float64(energySum) / float64(energyCount))
	}
	return out
}

func observedDays(stats []model.DailyStats, sessions []model.Session) int {
	days := make(map[time.Time]bool)
	for _, d := range stats {
		days[model.DateOf(d.Date)] = true
	}
	for _, s := range sessions {
		days[model.DateOf(s.StartedAt)] = true
	}
	return len(days)
}

func completedFocusSessions(sessions []model.Session) int {
	n := 0
	for _, s := range sessions {
		if s.Type == model.SessionFocus && s.CompletedAt != nil {
			n++
		}
	}
	return n
}

// confidenceLevel scales with how much of the period has data. It is bounded
// above by the observed-days share, so a single recorded day in a week can
// never claim high confidence regardless of how good that day looked.
func confidenceLevel(observed, periodDays, focusSessions int) int {
	if observed <= 0 || periodDays <= 0 {
		return 0
	}
	base := 100 * float64(observed) / float64(periodDays)

	// Two completed focus sessions per observed day counts as full density.
	density := float64(focusSessions) / (float64(observed) * 2)
	if density > 1 {
		density = 1
	}

	v := int(math.Round(base * (0.6 + 0.4*density)))
	if v > 100 {
		v = 100
	}
	return v
}

// periodAchievements replays the period's history through the factory:
// tasks completed in the window, daily goals met, exact focus-time
// milestones per day, and the streak counter when it sits exactly on a
// milestone.
func (g *Generator) periodAchievements(p model.Period, tasks []model.Task, stats []model.DailyStats, sessions []model.Session, streak model.Streak) []model.Achievement {
	out := make([]model.Achievement, 0)

	completed := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted && t.CompletedAt != nil && p.Contains(*t.CompletedAt) {
			completed = append(completed, t)
		}
	}
	sort.Slice(completed, func(i, j int) bool { return completed[i].CompletedAt.Before(*completed[j].CompletedAt) })
	for _, t := range completed {
		out = append(out, *g.Factory.TaskCompleted(t.Title))
	}

	ordered := make([]model.DailyStats, len(stats))
	copy(ordered, stats)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	for _, d := range ordered {
		if d.TasksPlanned == 0 {
			continue
		}
		if a := g.Factory.DailyGoal(d.CompletionRate()); a != nil {
			out = append(out, *a)
		}
	}

	focusByDay := make(map[time.Time]int)
	for _, s := range sessions {
		if s.Type == model.SessionFocus && s.CompletedAt != nil {
			focusByDay[model.DateOf(s.StartedAt)] += s.ActualMinutes
		}
	}
	days := make([]time.Time, 0, len(focusByDay))
	for day := range focusByDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	for _, day := range days {
		if a := g.Factory.FocusTimeMilestone(focusByDay[day]); a != nil {
			out = append(out, *a)
		}
	}

	if a := g.Factory.StreakMilestone(streak.Current); a != nil {
		out = append(out, *a)
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
