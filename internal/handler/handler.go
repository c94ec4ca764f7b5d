package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"

	"medscan/internal/conversation"
	"medscan/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot    *bot.Bot
	engine *conversation.Engine
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot    *bot.Bot
	Engine *conversation.Engine
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:    deps.Bot,
		engine: deps.Engine,
	}
}

// dispatch sends a turn's replies and, when asked, re-presents the model
// menu.
func (h *Handler) dispatch(ctx context.Context, chatID int64, turn conversation.Turn) {
	for _, reply := range turn.Replies {
		h.send(ctx, chatID, reply)
	}
	if turn.ShowMenu {
		h.sendMenu(ctx, chatID)
	}
}

func (h *Handler) send(ctx context.Context, chatID int64, text string) {
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		slog.Error("send message", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) sendMenu(ctx context.Context, chatID int64) {
	_, err := h.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        conversation.ChooseModelPrompt,
		ReplyMarkup: telegram.ModelMenu(),
	})
	if err != nil {
		slog.Error("send model menu", "chat_id", chatID, "error", err)
	}
}
