package model

import (
	"testing"
	"time"
)

func TestWeekOfStartsMonday(t *testing.T) {
	// 2026-02-12 is a Thursday.
	p := WeekOf(time.Date(2026, 2, 12, 15, 30, 0, 0, time.UTC))
	wantStart := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(wantStart) {
		t.Fatalf("expected week start %v, got %v", wantStart, p.Start)
	}
	if !p.End.Equal(wantEnd) {
		t.Fatalf("expected week end %v, got %v", wantEnd, p.End)
	}
	if p.Days() != 7 {
		t.Fatalf("expected 7 days, got %d", p.Days())
	}
}

func TestWeekOfOnSunday(t *testing.T) {
	// A Sunday belongs to the week that began the previous Monday.
	p := WeekOf(time.Date(2026, 2, 15, 21, 0, 0, 0, time.UTC))
	want := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(want) {
		t.Fatalf("expected week start %v, got %v", want, p.Start)
	}
}

func TestMonthOfBounds(t *testing.T) {
	p := MonthOf(time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC))
	if !p.Start.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month start: %v", p.Start)
	}
	if !p.End.Equal(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month end: %v", p.End)
	}
	if p.Days() != 28 {
		t.Fatalf("expected 28 days, got %d", p.Days())
	}
}

func TestPeriodKey(t *testing.T) {
	week := WeekOf(time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC))
	if week.Key() != "weekly:2026-02-09" {
		t.Fatalf("unexpected weekly key: %s", week.Key())
	}
	month := Month(2026, time.February)
	if month.Key() != "monthly:2026-02" {
		t.Fatalf("unexpected monthly key: %s", month.Key())
	}
}

func TestPeriodContainsInclusive(t *testing.T) {
	p := WeekOf(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC))
	if !p.Contains(time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected start day to be contained")
	}
	if !p.Contains(time.Date(2026, 2, 15, 23, 59, 0, 0, time.UTC)) {
		t.Fatal("expected end day to be contained")
	}
	if p.Contains(time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected day after end to be excluded")
	}
}

func TestPeriodPrevious(t *testing.T) {
	week := WeekOf(time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC))
	prev := week.Previous()
	if !prev.Start.Equal(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected previous week start: %v", prev.Start)
	}
	if !prev.End.Equal(time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected previous week end: %v", prev.End)
	}

	month := Month(2026, time.March)
	prevMonth := month.Previous()
	if !prevMonth.Start.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected previous month start: %v", prevMonth.Start)
	}
}

func TestIsLastDayOfMonth(t *testing.T) {
	if !IsLastDayOfMonth(time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC)) {
		t.Fatal("expected 2026-02-28 to be last day of February")
	}
	if IsLastDayOfMonth(time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)) {
		t.Fatal("expected 2026-02-27 not to be last day")
	}
	if !IsLastDayOfMonth(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected leap-year 2024-02-29 to be last day")
	}
}
