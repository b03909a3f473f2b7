package telegram

import (
	"context"
	"fmt"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/telegram/bot"
	"github.com/futig/babyname/internal/telegram/handlers"
	"github.com/futig/babyname/internal/telegram/render"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot initializes the telegram bot with all dependencies
func NewBot(
	cfg *config.TelegramConfig,
	sessions handlers.SessionStore,
	namesUC handlers.NamesUsecase,
	validator handlers.GenerationValidator,
	logger *zap.Logger,
) (Bot, error) {
	b, err := bot.New(cfg, sessions, logger)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	registerHandlers(b, sessions, namesUC, validator, logger)

	logger.Info("telegram bot initialized successfully")

	return b, nil
}

// registerHandlers registers all handlers with the bot
func registerHandlers(
	b *bot.Bot,
	sessions handlers.SessionStore,
	namesUC handlers.NamesUsecase,
	validator handlers.GenerationValidator,
	logger *zap.Logger,
) {
	api := b.GetAPI()
	sender := b.GetSender()
	keyboard := b.GetKeyboard()

	all := []handlers.Handler{
		handlers.NewStartHandler(sender, sessions),
		handlers.NewInfoHandler(handlers.CommandHelp, render.MsgHelp, sender),
		handlers.NewGenerateHandler(api, sender, sessions, namesUC, validator, keyboard, logger),
		handlers.NewLetterHandler(sender, sessions, namesUC),
		handlers.NewClearLetterHandler(sender, sessions, namesUC),
		handlers.NewFavoriteHandler(sender, sessions, namesUC, keyboard),
		handlers.NewCallbackHandler(sender, sessions, namesUC, keyboard),
	}

	for _, h := range all {
		b.RegisterHandler(h)
	}

	logger.Info("telegram handlers registered",
		zap.Int("handler_count", len(all)),
	)
}
