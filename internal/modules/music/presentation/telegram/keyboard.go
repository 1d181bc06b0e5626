package telegram

import (
	"github.com/go-telegram/bot/models"

	"github.com/aglarus/tunegram/internal/modules/music/application/usecases"
	"github.com/aglarus/tunegram/internal/modules/music/domain"
)

// inlineKeyboard converts rendered button rows into a Telegram inline keyboard.
func inlineKeyboard(rows [][]usecases.Button) *models.InlineKeyboardMarkup {
	keyboard := make([][]models.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, models.InlineKeyboardButton{
				Text:         b.Text,
				CallbackData: b.CallbackData,
				URL:          b.URL,
			})
		}
		keyboard = append(keyboard, buttons)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: keyboard}
}

// languageKeyboard lists the supported display languages, two per row.
func languageKeyboard() *models.InlineKeyboardMarkup {
	labels := map[domain.Language]string{
		domain.LanguageRussian: "🇷🇺 Русский",
		domain.LanguageUzbek:   "🇺🇿 O'zbekcha",
		domain.LanguageEnglish: "🇬🇧 English",
		domain.LanguageAzeri:   "🇦🇿 Azərbaycanca",
	}

	var keyboard [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton
	for _, lang := range domain.Languages() {
		row = append(row, models.InlineKeyboardButton{
			Text:         labels[lang],
			CallbackData: domain.SetLanguageAction{Code: lang}.CallbackData(),
		})
		if len(row) == 2 {
			keyboard = append(keyboard, row)
			row = nil
		}
	}
	if len(row) > 0 {
		keyboard = append(keyboard, row)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: keyboard}
}
