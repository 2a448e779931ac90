package telegram

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sumever1205/listing-watch/internal/service/history"
	"github.com/sumever1205/listing-watch/internal/service/monitor"
)

const (
	recentLogLimit = 50
	perSourceLimit = 10
)

// Bot dispatches chat commands to the history views and the monitor.
type Bot struct {
	api        *tgbotapi.BotAPI
	historySvc *history.Service
	listingSvc monitor.ListingService
}

func NewBot(api *tgbotapi.BotAPI, historySvc *history.Service, listingSvc monitor.ListingService) *Bot {
	return &Bot{
		api:        api,
		historySvc: historySvc,
		listingSvc: listingSvc,
	}
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	slog.Info("telegram bot started", "username", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	var reply string
	switch msg.Command() {
	case "history":
		text, err := b.historySvc.RecentLog(ctx, recentLogLimit)
		if err != nil {
			slog.Error("failed to render recent log", "error", err)
			text = history.NoRecordsPlaceholder
		}
		reply = text
	case "check":
		text, err := b.historySvc.RecentBySource(ctx, perSourceLimit)
		if err != nil {
			slog.Error("failed to render per-source view", "error", err)
			text = history.NoNewPlaceholder
		}
		reply = text
	case "forcecheck":
		err := b.listingSvc.CheckAll(ctx)
		switch {
		case errors.Is(err, monitor.ErrScanInFlight):
			reply = "scan already running"
		case err != nil:
			slog.Error("manual scan failed", "error", err)
			reply = "scan failed, see logs"
		default:
			reply = "scan finished"
		}
	default:
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		slog.Error("failed to send command reply", "command", msg.Command(), "error", err)
	}
}
