package telegram

import "gopkg.in/telebot.v3"

// Client sends messages to reviewers and supervisors.
// It keeps application services independent of the bot library's poller.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
