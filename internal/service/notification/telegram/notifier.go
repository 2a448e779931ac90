package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers cycle notifications to one fixed chat.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatId int64
}

func NewNotifier(api *tgbotapi.BotAPI, chatId int64) *Notifier {
	return &Notifier{
		api:    api,
		chatId: chatId,
	}
}

func (n *Notifier) Notify(ctx context.Context, text string) error {
	_, err := n.api.Send(tgbotapi.NewMessage(n.chatId, text))
	return err
}
