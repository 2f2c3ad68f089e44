package report

import (
	"context"
	"sync"
	"time"

	"github.com/sandeepkv93/insightd/internal/model"
)

const (
	DefaultWeeklyCapacity  = 10
	DefaultMonthlyCapacity = 12

	// scheduleHour is the wall-clock hour from which period-boundary
	// auto-generation may fire.
	scheduleHour = 20
)

// Service caches generated reports per period key and serializes the
// read-check-then-write so concurrent callers never generate the same
// period twice.
type Service struct {
	mu      sync.Mutex
	gen     *Generator
	weekly  *ringCache
	monthly *ringCache
}

func NewService(gen *Generator) *Service {
	return NewServiceWithCapacity(gen, DefaultWeeklyCapacity, DefaultMonthlyCapacity)
}

func NewServiceWithCapacity(gen *Generator, weeklyCap, monthlyCap int) *Service {
	return &Service{
		gen:     gen,
		weekly:  newRingCache(weeklyCap),
		monthly: newRingCache(monthlyCap),
	}
}

// WeeklyReport returns the cached report for the current week, generating it
// on first request.
func (s *Service) WeeklyReport(ctx context.Context) (model.Report, error) {
	r, _, err := s.getOrGenerate(ctx, model.WeekOf(s.gen.Now()))
	return r, err
}

// WeeklyReportFor is WeeklyReport anchored at an explicit day.
func (s *Service) WeeklyReportFor(ctx context.Context, anchor time.Time) (model.Report, error) {
	if anchor.IsZero() {
		return model.Report{}, model.ErrInvalidPeriod
	}
	r, _, err := s.getOrGenerate(ctx, model.WeekOf(anchor))
	return r, err
}

// MonthlyReport returns the cached report for the current month, generating
// it on first request.
func (s *Service) MonthlyReport(ctx context.Context) (model.Report, error) {
	r, _, err := s.getOrGenerate(ctx, model.MonthOf(s.gen.Now()))
	return r, err
}

// MonthlyReportFor is MonthlyReport for an explicit month.
func (s *Service) MonthlyReportFor(ctx context.Context, year int, month time.Month) (model.Report, error) {
	if year < 1 || month < time.January || month > time.December {
		return model.Report{}, model.ErrInvalidPeriod
	}
	r, _, err := s.getOrGenerate(ctx, model.Month(year, month))
	return r, err
}

// CachedReports returns the retained history for one period type, oldest
// first.
func (s *Service) CachedReports(t model.PeriodType) []model.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cacheFor(t).snapshot()
}

// CheckSchedule runs the auto-generation rules for the given instant: a
// weekly report on Sunday evening and a monthly report on the month's last
// evening. Only reports generated by this call are returned, so repeated
// checks within the same window are idempotent.
func (s *Service) CheckSchedule(ctx context.Context, now time.Time) ([]model.Report, error) {
	out := make([]model.Report, 0, 2)

	if now.Weekday() == time.Sunday && now.Hour() >= scheduleHour {
		r, cached, err := s.getOrGenerate(ctx, model.WeekOf(now))
		if err != nil {
			return nil, err
		}
		if !cached {
			out = append(out, r)
		}
	}

	if model.IsLastDayOfMonth(now) && now.Hour() >= scheduleHour {
		r, cached, err := s.getOrGenerate(ctx, model.MonthOf(now))
		if err != nil {
			return nil, err
		}
		if !cached {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Service) getOrGenerate(ctx context.Context, p model.Period) (model.Report, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cache := s.cacheFor(p.Type)
	if r, ok := cache.get(p.Key()); ok {
		return r, true, nil
	}

	r, err := s.gen.Generate(ctx, p)
	if err != nil {
		return model.Report{}, false, err
	}
	cache.put(p.Key(), r)
	return r, false, nil
}

func (s *Service) cacheFor(t model.PeriodType) *ringCache {
	if t == model.PeriodMonthly {
		return s.monthly
	}
	return s.weekly
}
