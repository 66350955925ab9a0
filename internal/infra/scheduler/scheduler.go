package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homework_status_bot/internal/app" // For the Sender interface
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/journal"
	"homework_status_bot/internal/infra/practicum"

	"github.com/hako/durafmt"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const startupTimeLayout = "02-01-2006 15:04"

// Iteration is one poll cycle. Errors it returns abort only that cycle.
type Iteration interface {
	RunIteration(ctx context.Context) error
}

// PollingScheduler runs iterations strictly one after another and always waits
// for the next slot of its schedule before starting the next one.
type PollingScheduler struct {
	iteration Iteration
	notifier  app.Sender
	clock     Clock
	schedule  cron.Schedule
	spec      string
	logger    *logrus.Entry
}

func NewPollingScheduler(
	iteration Iteration,
	notifier app.Sender,
	clock Clock,
	spec string, // e.g., "@every 10m"
	logger *logrus.Entry,
) (*PollingScheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", spec, err)
	}
	return &PollingScheduler{
		iteration: iteration,
		notifier:  notifier,
		clock:     clock,
		schedule:  schedule,
		spec:      spec,
		logger:    logger,
	}, nil
}

// Run announces the start in the chat and loops until ctx is cancelled.
func (s *PollingScheduler) Run(ctx context.Context) {
	now := s.clock.Now()
	s.logger.WithField("op", "Run").
		WithField("schedule", s.spec).
		Infof("Starting homework status polling, next poll in %s", durafmt.Parse(s.delay(now)).LimitFirstN(2))

	s.notifier.Notify(ctx, journal.KindStartup, fmt.Sprintf("Bot started working: %s", now.Format(startupTimeLayout)))

	for ctx.Err() == nil {
		s.Tick(ctx)
	}
	s.logger.WithField("op", "Run").Info("Homework status polling stopped.")
}

// Tick runs one iteration and then waits. The wait is deferred so it happens
// on every path, including a panicking iteration.
func (s *PollingScheduler) Tick(ctx context.Context) {
	defer s.wait(ctx)

	err := s.runIteration(ctx)
	if err == nil {
		return
	}
	if ctx.Err() != nil {
		s.logger.WithField("op", "Tick").WithError(err).Info("Iteration interrupted by shutdown")
		return
	}
	s.reportFailure(ctx, err)
}

func (s *PollingScheduler) runIteration(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("iteration panicked: %v", r)
		}
	}()
	return s.iteration.RunIteration(ctx)
}

// reportFailure logs err and makes one best-effort attempt to tell the chat.
func (s *PollingScheduler) reportFailure(ctx context.Context, err error) {
	message := fmt.Sprintf("Failure: %v", err)
	logCtx := s.logger.WithField("op", "reportFailure").WithField("error_kind", errorKind(err))

	var statusErr *practicum.HTTPStatusError
	if errors.As(err, &statusErr) {
		logCtx = logCtx.WithField("endpoint", statusErr.Endpoint).
			WithField("status_code", statusErr.StatusCode).
			WithField("params", statusErr.Params.Encode())
	}
	logCtx.Error(message)

	if res := s.notifier.Notify(ctx, journal.KindFailure, message); !res.Delivered {
		logCtx.WithError(res.Err).Warn("Failure notification was not delivered")
	}
}

func (s *PollingScheduler) wait(ctx context.Context) {
	d := s.delay(s.clock.Now())
	s.logger.WithField("op", "wait").Debugf("Sleeping %s before next poll", durafmt.Parse(d).LimitFirstN(2))
	if err := s.clock.Sleep(ctx, d); err != nil {
		s.logger.WithField("op", "wait").Debug("Sleep interrupted")
	}
}

func (s *PollingScheduler) delay(now time.Time) time.Duration {
	return s.schedule.Next(now).Sub(now)
}

func errorKind(err error) string {
	if kind := practicum.Kind(err); kind != "" {
		return kind
	}
	if kind := homework.Kind(err); kind != "" {
		return kind
	}
	return "unexpected"
}
