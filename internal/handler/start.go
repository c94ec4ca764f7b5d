package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"medscan/internal/conversation"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	h.dispatch(ctx, chatID, h.engine.Start(chatID))
}

func (h *Handler) handleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.send(ctx, update.Message.Chat.ID, conversation.HelpText)
}

func (h *Handler) handleInfo(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.send(ctx, update.Message.Chat.ID, conversation.InfoText)
}
