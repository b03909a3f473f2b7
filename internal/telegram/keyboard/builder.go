package keyboard

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Builder creates inline keyboards
type Builder struct{}

// NewBuilder creates a keyboard builder
func NewBuilder() *Builder {
	return &Builder{}
}

// ResultKeyboard is attached to every generated list
func (b *Builder) ResultKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💖 Random favorite", EncodeCallback(ActionFavorite, ValueRandom)),
			tgbotapi.NewInlineKeyboardButtonData("🔤 Clear letter", EncodeCallback(ActionLetter, ValueClear)),
		),
	)
}

// FavoriteKeyboard lets the user pick again without generating
func (b *Builder) FavoriteKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Another one", EncodeCallback(ActionFavorite, ValueRandom)),
		),
	)
}
