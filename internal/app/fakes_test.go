package app

import (
	"context"
	"errors"
	"io"
	"time"

	"homework_status_bot/internal/domain/journal"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

type fetchResult struct {
	payload any
	err     error
}

// scriptedFetcher replays results in order and records the cursors it was called with.
type scriptedFetcher struct {
	results []fetchResult
	cursors []int64
}

func (f *scriptedFetcher) FetchStatuses(_ context.Context, fromDate int64) (any, error) {
	f.cursors = append(f.cursors, fromDate)
	if len(f.results) == 0 {
		return nil, errors.New("no scripted result")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.payload, r.err
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegram struct {
	sent []sentMessage
	err  error
}

func (f *fakeTelegram) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

type memoryJournal struct {
	entries []*journal.Entry
	err     error
}

func (m *memoryJournal) Append(_ context.Context, e *journal.Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func payload(homeworks ...map[string]any) map[string]any {
	list := make([]any, 0, len(homeworks))
	for _, hw := range homeworks {
		list = append(list, hw)
	}
	return map[string]any{"homeworks": list, "current_date": float64(1700000000)}
}

func hw(name, status string) map[string]any {
	return map[string]any{"homework_name": name, "status": status}
}
