package handler

import (
	"github.com/go-telegram/bot"
)

// Register registers all command, callback and text handlers on the bot
// instance. Photo messages are routed through the default handler in main.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypePrefix, h.handleHelp)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/info", bot.MatchTypePrefix, h.handleInfo)

	// Model-choice callbacks (payload is the model identifier; anything
	// unrecognized falls through to the same handler and produces the
	// choice-error reply)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, h.handleModelChoice)

	// Note: free text and photos are routed through the default handler in
	// main, so they never shadow the command handlers above.
}
