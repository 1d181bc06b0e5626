package presentation

import (
	"context"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/aglarus/tunegram/internal/bot"
	"github.com/aglarus/tunegram/internal/modules/status/application"
)

// PingHandler handles the /ping command.
type PingHandler struct {
	interactor *application.PingInteractor
	messenger  bot.Messenger
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler(messenger bot.Messenger) *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(),
		messenger:  messenger,
	}
}

// Handle processes the ping command and sends the response.
func (h *PingHandler) Handle(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	result := h.interactor.Execute()
	if _, err := h.messenger.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   result.Message,
	}); err != nil {
		slog.Error("failed to send ping response", "chat_id", update.Message.Chat.ID, "error", err)
	}
}
