// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"time"

	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

// NewBot creates a send-only bot. No poller is started: the bot never reads updates.
// The bot is built offline, so a Telegram outage or a bad token surfaces on the
// first send instead of at startup.
func NewBot(token string, timeout time.Duration) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   token,
		Client:  newHTTPClient(timeout),
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a plain text message to a chat, group or channel.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{DisableWebPagePreview: true}
	}

	_, err := tba.bot.Send(telebot.ChatID(chatID), text, options)
	return err
}
