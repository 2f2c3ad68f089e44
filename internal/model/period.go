package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("model: invalid period")

// Period is an inclusive calendar window. Start and End are date-only values
// in UTC; End is the last day covered, not one past it.
type Period struct {
	Type  PeriodType
	Start time.Time
	End   time.Time
}

// WeekOf returns the ISO-style week containing t, starting on Monday.
func WeekOf(t time.Time) Period {
	day := DateOf(t)
	offset := int(day.Weekday()-time.Monday+7) % 7
	start := day.AddDate(0, 0, -offset)
	return Period{Type: PeriodWeekly, Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	y, m, _ := t.UTC().Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	return Period{Type: PeriodMonthly, Start: start, End: start.AddDate(0, 1, -1)}
}

// Month returns the calendar month for an explicit year and month.
func Month(year int, month time.Month) Period {
	return MonthOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

func (p Period) Validate() error {
	if !p.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPeriodType, p.Type)
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: zero bound", ErrInvalidPeriod)
	}
	if p.End.Before(p.Start) {
		return fmt.Errorf("%w: end precedes start", ErrInvalidPeriod)
	}
	return nil
}

// Key identifies the period for cache lookup: the week-start date, or the
// month and year.
func (p Period) Key() string {
	if p.Type == PeriodMonthly {
		return "monthly:" + p.Start.Format("2006-01")
	}
	return "weekly:" + p.Start.Format("2006-01-02")
}

func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) Contains(t time.Time) bool {
	day := DateOf(t)
	return !day.Before(p.Start) && !day.After(p.End)
}

// Previous returns the same-type period immediately before this one.
func (p Period) Previous() Period {
	if p.Type == PeriodMonthly {
		return MonthOf(p.Start.AddDate(0, -1, 0))
	}
	return Period{Type: PeriodWeekly, Start: p.Start.AddDate(0, 0, -7), End: p.Start.AddDate(0, 0, -1)}
}

// Next returns the same-type period immediately after this one.
func (p Period) Next() Period {
	if p.Type == PeriodMonthly {
		return MonthOf(p.Start.AddDate(0, 1, 0))
	}
	start := p.Start.AddDate(0, 0, 7)
	return Period{Type: PeriodWeekly, Start: start, End: start.AddDate(0, 0, 6)}
}

// DateOf strips the clock from t, keeping the UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsLastDayOfMonth reports whether t falls on its month's final day.
func IsLastDayOfMonth(t time.Time) bool {
	day := DateOf(t)
	return day.AddDate(0, 0, 1).Day() == 1
}
