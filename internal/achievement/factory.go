package achievement

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sandeepkv93/insightd/internal/model"
)

// Source supplies the random index used to pick achievement copy. A
// *math/rand.Rand satisfies it; tests inject a seeded one.
type Source interface {
	Intn(n int) int
}

type message struct {
	title       string
	description string
	icon        string
}

type milestone struct {
	msg    message
	points int
}

var taskCompletedPool = []message{
	{"Task Finished", "You closed out a task. Keep the momentum going.", "check"},
	{"One Down", "Another item off the list.", "target"},
	{"Progress Made", "Steady steps add up.", "spark"},
}

const taskCompletedPoints = 10

var pomodoroGenericPool = []message{
	{"Focus Session Done", "Another pomodoro in the bank.", "tomato"},
	{"Deep Work Logged", "You stayed with it for a full session.", "timer"},
}

const pomodoroGenericPoints = 15

var pomodoroMilestones = map[int]milestone{
	1: {message{"First Pomodoro", "The first focus session of the day is the hardest one.", "sunrise"}, 20},
	4: {message{"Four Sessions Strong", "Four pomodoros today. That is real focus.", "fire"}, 30},
	8: {message{"Focus Marathon", "Eight pomodoros in a single day.", "trophy"}, 50},
}

var streakMilestones = map[int]milestone{
	3:  {message{"Three-Day Streak", "Three days in a row.", "flame"}, 30},
	7:  {message{"One Full Week", "A seven-day streak.", "calendar"}, 70},
	14: {message{"Two Weeks Running", "Fourteen consecutive days.", "medal"}, 100},
	21: {message{"Habit Formed", "Twenty-one days straight.", "star"}, 150},
	30: {message{"Thirty-Day Streak", "A full month without missing a day.", "crown"}, 200},
}

var focusMilestones = map[int]milestone{
	60:  {message{"One Focused Hour", "Sixty minutes of focus today.", "hourglass"}, 25},
	120: {message{"Two Hours Deep", "Two hours of focused work today.", "clock"}, 40},
	180: {message{"Three-Hour Block", "Three hours of focus in one day.", "gem"}, 60},
	240: {message{"Four-Hour Flow", "Four hours of deep focus today.", "diamond"}, 80},
}

const (
	dailyGoalThresholdPct = 80.0
	dailyGoalPoints       = 25
	perfectDayPoints      = 30
)

var dailyGoalStandard = message{"Daily Goal Met", "You hit at least 80% of today's plan.", "flag"}
var dailyGoalPerfect = message{"Perfect Day", "Every planned task completed. A flawless day.", "sun"}

// Factory builds achievements from discrete life events. All constructors
// are total: "no achievement" is a nil result, never an error.
type Factory struct {
	rand  Source
	newID func() string
	now   func() time.Time
}

// NewFactory returns a factory with production defaults. Any nil dependency
// is replaced: a time-seeded rand, uuid IDs, wall-clock time.
func NewFactory(src Source, newID func() string, now func() time.Time) *Factory {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &Factory{rand: src, newID: newID, now: now}
}

func (f *Factory) build(kind model.AchievementType, msg message, points int) *model.Achievement {
	return &model.Achievement{
		ID:          f.newID(),
		Type:        kind,
		Title:       msg.title,
		Description: msg.description,
		Icon:        msg.icon,
		Points:      points,
		CreatedAt:   f.now(),
	}
}

func (f *Factory) pick(pool []message) message {
	return pool[f.rand.Intn(len(pool))]
}

// TaskCompleted always yields an achievement.
func (f *Factory) TaskCompleted(title string) *model.Achievement {
	a := f.build(model.AchievementTaskCompleted, f.pick(taskCompletedPool), taskCompletedPoints)
	if title != "" {
		a.Description = a.Description + " (" + title + ")"
	}
	return a
}

// PomodoroCompleted yields the designated milestone achievement at exactly
// 1, 4, or 8 sessions in a day, and a generic one at any other count.
func (f *Factory) PomodoroCompleted(sessionsToday int) *model.Achievement {
	if m, ok := pomodoroMilestones[sessionsToday]; ok {
		return f.build(model.AchievementPomodoroCompleted, m.msg, m.points)
	}
	return f.build(model.AchievementPomodoroCompleted, f.pick(pomodoroGenericPool), pomodoroGenericPoints)
}

// StreakMilestone yields an achievement only when the streak length exactly
// equals one of the fixed milestones.
func (f *Factory) StreakMilestone(days int) *model.Achievement {
	m, ok := streakMilestones[days]
	if !ok {
		return nil
	}
	return f.build(model.AchievementStreakMilestone, m.msg, m.points)
}

// DailyGoal yields nil below 80% completion, the perfect-day variant at
// exactly 100%, and the standard variant in between.
func (f *Factory) DailyGoal(completionPct float64) *model.Achievement {
	if completionPct < dailyGoalThresholdPct {
		return nil
	}
	if completionPct >= 100 {
		return f.build(model.AchievementDailyGoal, dailyGoalPerfect, perfectDayPoints)
	}
	return f.build(model.AchievementDailyGoal, dailyGoalStandard, dailyGoalPoints)
}

// FocusTimeMilestone yields an achievement only at the exact focus-minute
// milestones.
func (f *Factory) FocusTimeMilestone(minutes int) *model.Achievement {
	m, ok := focusMilestones[minutes]
	if !ok {
		return nil
	}
	return f.build(model.AchievementFocusTime, m.msg, m.points)
}
