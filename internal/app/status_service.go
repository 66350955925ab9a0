// internal/app/status_service.go
package app

import (
	"context"
	"time"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/journal"

	"github.com/sirupsen/logrus"
)

// StatusFetcher returns the raw, decoded API answer for homeworks updated since fromDate.
type StatusFetcher interface {
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}

// StatusService is the body of one poll iteration. It owns the poll cursor
// and the change tracker; nothing else mutates them.
type StatusService struct {
	fetcher  StatusFetcher
	notifier Sender
	tracker  homework.Tracker
	cursor   int64 // unix seconds, lower bound of the next fetch
	now      func() time.Time
	logger   *logrus.Entry
}

// NewStatusService starts the cursor lookback before now.
func NewStatusService(
	fetcher StatusFetcher,
	notifier Sender,
	now func() time.Time,
	lookback time.Duration,
	logger *logrus.Entry,
) *StatusService {
	return &StatusService{
		fetcher:  fetcher,
		notifier: notifier,
		cursor:   now().Add(-lookback).Unix(),
		now:      now,
		logger:   logger,
	}
}

// Cursor returns the from_date the next iteration will poll with.
func (s *StatusService) Cursor() int64 {
	return s.cursor
}

// LastStatus returns the last status a notification was attempted for.
func (s *StatusService) LastStatus() (homework.Status, bool) {
	return s.tracker.LastStatus()
}

// RunIteration polls once, validates the answer and notifies the chat if the
// status of the newest homework changed. Any returned error aborts only this
// iteration; the cursor is advanced only when nothing failed.
func (s *StatusService) RunIteration(ctx context.Context) error {
	logCtx := s.logger.WithField("op", "RunIteration").WithField("from_date", s.cursor)

	payload, err := s.fetcher.FetchStatuses(ctx, s.cursor)
	if err != nil {
		return err
	}

	resp, err := homework.CheckResponse(payload)
	if err != nil {
		return err
	}

	if len(resp.Homeworks) == 0 {
		logCtx.Info("No homeworks to review")
	} else {
		hw, message, err := homework.ParseStatus(resp.Homeworks[0])
		if err != nil {
			return err
		}

		hwLog := logCtx.WithField("homework", hw.Name).WithField("status", hw.Status)
		if s.tracker.ShouldNotify(hw.Status) {
			result := s.notifier.Notify(ctx, journal.KindStatusChange, message)
			// Recorded even on failed delivery, so a flaky chat is not spammed with resends.
			s.tracker.Record(hw.Status)
			if !result.Delivered {
				hwLog.WithError(result.Err).Warn("Status change recorded but not delivered")
			}
		} else {
			hwLog.Debug("Status did not change")
		}
	}

	s.advanceCursor(resp.CurrentDate)
	return nil
}

func (s *StatusService) advanceCursor(apiDate int64) {
	next := s.now().Unix()
	if next < s.cursor {
		return
	}
	s.logger.WithField("op", "advanceCursor").
		WithField("from_date", next).
		WithField("api_current_date", apiDate).
		Debug("Poll cursor advanced")
	s.cursor = next
}
