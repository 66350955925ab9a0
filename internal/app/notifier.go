// internal/app/notifier.go
package app

import (
	"context"
	"database/sql"
	"time"

	"homework_status_bot/internal/domain/journal"
	domainTelegram "homework_status_bot/internal/domain/telegram" // Import from domain

	"github.com/sirupsen/logrus"
)

// DeliveryResult reports the outcome of one send. A failed delivery is data,
// never an error: callers log it and carry on.
type DeliveryResult struct {
	Delivered bool
	Err       error
}

// Sender is what the iteration body and the scheduler need from the notifier.
type Sender interface {
	Notify(ctx context.Context, kind journal.Kind, text string) DeliveryResult
}

// Notifier sends messages to the single configured chat and journals every attempt.
type Notifier struct {
	telegramClient domainTelegram.Client // Use the interface from the domain package
	chatID         int64
	journal        journal.Repository
	logger         *logrus.Entry
	now            func() time.Time
}

func NewNotifier(
	tc domainTelegram.Client,
	chatID int64,
	jr journal.Repository,
	logger *logrus.Entry,
) *Notifier {
	if jr == nil {
		jr = journal.Discard{}
	}
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		journal:        jr,
		logger:         logger,
		now:            time.Now,
	}
}

// Notify sends text to the chat.
func (n *Notifier) Notify(ctx context.Context, kind journal.Kind, text string) DeliveryResult {
	logCtx := n.logger.WithField("op", "Notify").WithField("kind", kind).WithField("chat_id", n.chatID)

	result := DeliveryResult{Delivered: true}
	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		result = DeliveryResult{Err: err}
		logCtx.WithError(err).Errorf("Telegram message was not sent: %s", text)
	} else {
		logCtx.Infof("Telegram message sent: %s", text)
	}

	entry := &journal.Entry{
		Kind:      kind,
		ChatID:    n.chatID,
		Message:   text,
		Delivered: result.Delivered,
		CreatedAt: n.now().UTC(),
	}
	if result.Err != nil {
		entry.Error = sql.NullString{String: result.Err.Error(), Valid: true}
	}
	if err := n.journal.Append(ctx, entry); err != nil {
		logCtx.WithError(err).Warn("Failed to journal delivery attempt")
	}
	return result
}
