package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (h *Handler) handleModelChoice(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: query.ID,
	})
	if err != nil {
		slog.Warn("answer callback query", "error", err)
	}

	msg := query.Message.Message
	if msg == nil {
		return
	}
	chatID := msg.Chat.ID

	turn := h.engine.Choose(chatID, query.Data)
	if turn.Edit != "" {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: msg.ID,
			Text:      turn.Edit,
		})
		if err != nil {
			slog.Error("edit choice message", "chat_id", chatID, "error", err)
		}
	}
	h.dispatch(ctx, chatID, turn)
}
