package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandleText handles a free-text message: a comma-separated parameter list
// when a parametric model is selected. Invoked from the default handler in
// main.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return
	}
	// Commands have their own handlers
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	chatID := msg.Chat.ID
	h.dispatch(ctx, chatID, h.engine.Text(ctx, chatID, msg.Text))
}
