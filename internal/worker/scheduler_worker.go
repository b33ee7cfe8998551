package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/monasquad/keepalive/internal/checker"
	"github.com/monasquad/keepalive/internal/domain"
)

// Hooks carries the callbacks injected by main.
// Using a struct keeps the constructor signature clean.
type Hooks struct {
	// OnResult is called once per tick after the outcome has been logged.
	// It may be called concurrently from overlapping ticks.
	OnResult func(domain.CheckResult)
}

// SchedulerWorker fires a health check at every activation time of a cron
// schedule.
//
// Each tick runs in its own goroutine. A check that outlives the interval
// does not delay or cancel the next tick, and there is no mutual exclusion
// between ticks.
type SchedulerWorker struct {
	checker  checker.Checker
	schedule cron.Schedule
	clock    clockwork.Clock
	logger   *zap.Logger
	onResult func(domain.CheckResult)

	inflight sync.WaitGroup
}

func NewSchedulerWorker(
	c checker.Checker,
	schedule cron.Schedule,
	clock clockwork.Clock,
	logger *zap.Logger,
	hooks Hooks,
) *SchedulerWorker {
	onResult := hooks.OnResult
	if onResult == nil {
		onResult = func(domain.CheckResult) {}
	}
	return &SchedulerWorker{
		checker:  c,
		schedule: schedule,
		clock:    clock,
		logger:   logger,
		onResult: onResult,
	}
}

// Run waits for each activation time and starts a tick.
// Stops cleanly when ctx is cancelled; in-flight ticks see the same ctx.
func (sw *SchedulerWorker) Run(ctx context.Context) {
	var last time.Time

	sw.logger.Info("scheduler worker started")

	for {
		now := sw.clock.Now()
		// Timers can fire a hair before the wall clock reaches the
		// activation time; never compute the next one from before the last.
		if now.Before(last) {
			now = last
		}

		next := sw.schedule.Next(now)
		if next.IsZero() {
			sw.logger.Error("schedule has no future activation times, scheduler worker stopping")
			return
		}

		sw.logger.Debug("next health check scheduled", zap.Time("at", next))

		timer := sw.clock.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			sw.logger.Info("scheduler worker stopping")
			return
		case <-timer.Chan():
			last = next
			sw.inflight.Add(1)
			go func(scheduledFor time.Time) {
				defer sw.inflight.Done()
				sw.tick(ctx, scheduledFor)
			}(next)
		}
	}
}

// Wait blocks until every in-flight tick has returned.
// Call this after Run has returned.
func (sw *SchedulerWorker) Wait() {
	sw.inflight.Wait()
}

func (sw *SchedulerWorker) tick(ctx context.Context, scheduledFor time.Time) {
	sw.logger.Info("running health check", zap.Time("scheduled_for", scheduledFor))

	res := sw.checker.Check(ctx)
	res.ScheduledFor = scheduledFor

	log := sw.logger.With(zap.String("url", res.URL))
	if res.Err != nil {
		log.Error("health check failed", zap.Error(res.Err))
	} else {
		log.Info("health check succeeded",
			zap.Int("status", res.StatusCode),
			zap.Duration("latency", res.Duration),
		)
	}

	sw.onResult(res)
}
