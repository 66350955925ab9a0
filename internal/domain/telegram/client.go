// internal/domain/telegram/client.go
package telegram

import "gopkg.in/telebot.v3"

// Client is the outbound side of the bot: it only sends text to one chat.
// Keeping it an interface lets the app layer run without a live bot token.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
