package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"medscan/internal/conversation"
	"medscan/internal/telegram"
)

// HandlePhoto handles an inbound photo message. Invoked from the default
// handler in main, since photo updates carry no text to match on.
func (h *Handler) HandlePhoto(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || len(msg.Photo) == 0 {
		return
	}
	chatID := msg.Chat.ID

	data, err := telegram.DownloadPhoto(ctx, b, msg.Photo)

	var turn conversation.Turn
	if err != nil {
		slog.Error("download photo", "chat_id", chatID, "error", err)
		turn = h.engine.ImageUnavailable(chatID)
	} else {
		turn = h.engine.Image(ctx, chatID, data)
	}
	h.dispatch(ctx, chatID, turn)
}
