package telegram

import (
	"github.com/go-telegram/bot/models"

	"medscan/internal/domain"
)

// InlineButton creates a single inline keyboard button.
func InlineButton(text, callbackData string) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{
		Text:         text,
		CallbackData: callbackData,
	}
}

// InlineKeyboard creates an inline keyboard from rows of buttons.
func InlineKeyboard(rows ...[]models.InlineKeyboardButton) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: rows,
	}
}

// ButtonRow creates a row of inline buttons.
func ButtonRow(buttons ...models.InlineKeyboardButton) []models.InlineKeyboardButton {
	return buttons
}

// ModelMenu builds the model-choice keyboard, one model per row. The
// callback payload is the model identifier itself.
func ModelMenu() *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(domain.AllModels))
	for _, m := range domain.AllModels {
		rows = append(rows, ButtonRow(InlineButton(m.Title(), string(m))))
	}
	return InlineKeyboard(rows...)
}
