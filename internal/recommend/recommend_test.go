package recommend

import (
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/insightd/internal/model"
)

func pendingTask(id, title string, minutes int, priority model.Priority, cat string) model.Task {
	return model.Task{
		ID:               id,
		Title:            title,
		EstimatedMinutes: minutes,
		Priority:         priority,
		Category:         cat,
		Status:           model.TaskStatusPending,
		CreatedAt:        time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC),
	}
}

func TestRecommendFiltersNonPendingTasks(t *testing.T) {
	done := pendingTask("t-1", "Done", 60, model.PriorityHigh, "work")
	completedAt := time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC)
	done.Status = model.TaskStatusCompleted
	done.CompletedAt = &completedAt

	inProgress := pendingTask("t-2", "In progress", 60, model.PriorityHigh, "work")
	inProgress.Status = model.TaskStatusInProgress

	postponed := pendingTask("t-3", "Postponed", 60, model.PriorityHigh, "work")
	postponed.Status = model.TaskStatusPostponed

	open := pendingTask("t-4", "Open", 60, model.PriorityHigh, "work")

	got := Recommend([]model.Task{done, inProgress, postponed, open}, model.EnergyHigh)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
	if got[0].Task.ID != "t-4" {
		t.Fatalf("expected t-4, got %s", got[0].Task.ID)
	}
}

func TestRecommendSuppressesBelowRelevanceFloor(t *testing.T) {
	// At medium energy none of the rules match this task, so it must be
	// suppressed rather than emitted with a zero score.
	task := pendingTask("t-1", "Long low-priority work", 60, model.PriorityLow, "work")
	got := Recommend([]model.Task{task}, model.EnergyMedium)
	if len(got) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(got))
	}
}

func TestRecommendStableOrderOnTies(t *testing.T) {
	first := pendingTask("t-1", "First", 25, model.PriorityMedium, "misc")
	second := pendingTask("t-2", "Second", 25, model.PriorityMedium, "misc")
	got := Recommend([]model.Task{first, second}, model.EnergyMedium)
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].Score != got[1].Score {
		t.Fatalf("expected tied scores, got %d and %d", got[0].Score, got[1].Score)
	}
	if got[0].Task.ID != "t-1" || got[1].Task.ID != "t-2" {
		t.Fatalf("expected input order preserved on ties, got %s then %s", got[0].Task.ID, got[1].Task.ID)
	}
}

func TestScoreForEnergyFlexibleBonus(t *testing.T) {
	rigid := pendingTask("t-1", "Rigid", 60, model.PriorityHigh, "misc")
	flexible := rigid
	flexible.IsFlexible = true

	rigidScore, _, ok := ScoreForEnergy(rigid, model.EnergyHigh)
	if !ok {
		t.Fatal("expected rigid task to score")
	}
	flexScore, reason, ok := ScoreForEnergy(flexible, model.EnergyHigh)
	if !ok {
		t.Fatal("expected flexible task to score")
	}
	if flexScore != rigidScore+1 {
		t.Fatalf("expected flexible bonus of 1, got %d vs %d", flexScore, rigidScore)
	}
	if !strings.Contains(reason, "flexible timing") {
		t.Fatalf("expected flexible reason fragment, got %q", reason)
	}
}

func TestScoreForEnergyPenalizesDemandingAtLowEnergy(t *testing.T) {
	demanding := pendingTask("t-1", "Deep work", 15, model.PriorityLow, "study")
	light := pendingTask("t-2", "Stretch", 15, model.PriorityLow, "rest")

	demandingScore, _, _ := ScoreForEnergy(demanding, model.EnergyLow)
	lightScore, _, _ := ScoreForEnergy(light, model.EnergyLow)
	if demandingScore >= lightScore {
		t.Fatalf("expected demanding category to score below light one, got %d vs %d", demandingScore, lightScore)
	}
}

func TestScoreForEnergyCapsAtTen(t *testing.T) {
	task := pendingTask("t-1", "Everything at once", 90, model.PriorityHigh, "work")
	task.IsFlexible = true
	score, _, ok := ScoreForEnergy(task, model.EnergyHigh)
	if !ok {
		t.Fatal("expected task to score")
	}
	if score != 10 {
		t.Fatalf("expected score capped at 10, got %d", score)
	}
}

func TestScoreForTimeOfDayBands(t *testing.T) {
	deep := pendingTask("t-1", "Deep work", 60, model.PriorityHigh, "work")
	creative := pendingTask("t-2", "Sketch", 15, model.PriorityLow, "creative")

	if _, _, ok := ScoreForTimeOfDay(deep, 9); !ok {
		t.Fatal("expected demanding task to score in the morning")
	}
	if _, _, ok := ScoreForTimeOfDay(deep, 23); ok {
		t.Fatal("expected demanding long task to fall below the floor at night")
	}
	nightScore, reason, ok := ScoreForTimeOfDay(creative, 23)
	if !ok {
		t.Fatal("expected creative task to score at night")
	}
	if nightScore < 2 || !strings.Contains(reason, "creative") {
		t.Fatalf("unexpected night scoring: %d %q", nightScore, reason)
	}
	// The night band wraps past midnight.
	if _, _, ok := ScoreForTimeOfDay(creative, 2); !ok {
		t.Fatal("expected night band to cover 2am")
	}
}

func TestRecommendAtBlendsHalvedTimeScore(t *testing.T) {
	task := pendingTask("t-1", "Deep work", 30, model.PriorityHigh, "work")

	energyOnly := Recommend([]model.Task{task}, model.EnergyHigh)
	blended := RecommendAt([]model.Task{task}, model.EnergyHigh, 9)
	if len(energyOnly) != 1 || len(blended) != 1 {
		t.Fatalf("expected single recommendation in both lists")
	}

	timeScore, timeReason, ok := ScoreForTimeOfDay(task, 9)
	if !ok {
		t.Fatal("expected morning score for demanding task")
	}
	want := energyOnly[0].Score + timeScore/2
	if want > 10 {
		want = 10
	}
	if blended[0].Score != want {
		t.Fatalf("expected blended score %d, got %d", want, blended[0].Score)
	}
	wantReason := energyOnly[0].Reason + " " + timeReason
	if blended[0].Reason != wantReason {
		t.Fatalf("expected blended reason %q, got %q", wantReason, blended[0].Reason)
	}
}

func TestRecommendAtMorningHighEnergyScenario(t *testing.T) {
	tasks := []model.Task{
		pendingTask("t-1", "Quarterly plan", 90, model.PriorityHigh, "work"),
		pendingTask("t-2", "Inbox sweep", 15, model.PriorityLow, "email"),
		pendingTask("t-3", "Research spike", 60, model.PriorityMedium, "misc"),
		pendingTask("t-4", "Water plants", 10, model.PriorityLow, "chores"),
		pendingTask("t-5", "Design review", 45, model.PriorityHigh, "misc"),
		pendingTask("t-6", "Stretch break", 10, model.PriorityLow, "rest"),
		pendingTask("t-7", "Write proposal", 120, model.PriorityHigh, "work"),
		pendingTask("t-8", "Tidy desk", 15, model.PriorityLow, "chores"),
		pendingTask("t-9", "Read article", 20, model.PriorityLow, "misc"),
		pendingTask("t-10", "Refactor module", 50, model.PriorityMedium, "work"),
	}

	got := RecommendAt(tasks, model.EnergyHigh, 9)
	if len(got) == 0 {
		t.Fatal("expected recommendations")
	}

	isTop := func(task model.Task) bool {
		return task.Priority == model.PriorityHigh || task.EstimatedMinutes > 45
	}

	seenOther := false
	for _, rec := range got {
		if rec.Reason == "" {
			t.Fatalf("expected non-empty reason for %s", rec.Task.ID)
		}
		if isTop(rec.Task) {
			if seenOther {
				t.Fatalf("high-priority/long task %s ranked below a lesser task", rec.Task.ID)
			}
			continue
		}
		seenOther = true
	}
}
