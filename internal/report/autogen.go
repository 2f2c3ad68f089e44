package report

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sandeepkv93/insightd/internal/model"
)

// AutoGenerator runs the service's schedule check once an hour and emits any
// freshly generated reports on its channel. Consumers that fall behind do
// not block generation; overflowed reports stay in the service cache and a
// drop counter records them.
type AutoGenerator struct {
	service *Service
	out     chan model.Report
	now     func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
	stopped bool
	dropped uint64
}

func NewAutoGenerator(service *Service, bufferSize int) *AutoGenerator {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &AutoGenerator{
		service: service,
		out:     make(chan model.Report, bufferSize),
		now:     service.gen.Now,
	}
}

func (a *AutoGenerator) C() <-chan model.Report {
	return a.out
}

func (a *AutoGenerator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return
	}
	a.started = true
	a.cron = cron.New()
	if _, err := a.cron.AddFunc("0 * * * *", a.check); err != nil {
		log.Printf("[autogen] failed to register schedule: %v", err)
		return
	}
	a.cron.Start()
}

func (a *AutoGenerator) Stop() {
	a.mu.Lock()
	if !a.started || a.stopped {
		a.mu.Unlock()
		return
	}
	a.stopped = true
	stopCtx := a.cron.Stop()
	a.mu.Unlock()
	<-stopCtx.Done()
	close(a.out)
}

func (a *AutoGenerator) Dropped() uint64 {
	return atomic.LoadUint64(&a.dropped)
}

func (a *AutoGenerator) check() {
	reports, err := a.service.CheckSchedule(context.Background(), a.now())
	if err != nil {
		log.Printf("[autogen] schedule check failed: %v", err)
		return
	}
	for _, r := range reports {
		select {
		case a.out <- r:
			log.Printf("[autogen] generated %s report %s", r.PeriodType, r.Period().Key())
		default:
			atomic.AddUint64(&a.dropped, 1)
		}
	}
}
