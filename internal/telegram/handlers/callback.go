package handlers

import (
	"context"
	"fmt"

	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/telegram/keyboard"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CallbackHandler handles all inline button clicks
type CallbackHandler struct {
	BaseHandler
	namesUC  NamesUsecase
	keyboard *keyboard.Builder
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(
	sender *MessageSender,
	sessions SessionStore,
	namesUC NamesUsecase,
	kb *keyboard.Builder,
) *CallbackHandler {
	return &CallbackHandler{
		BaseHandler: BaseHandler{
			command:       HandlerCallback,
			messageSender: sender,
			sessions:      sessions,
		},
		namesUC:  namesUC,
		keyboard: kb,
	}
}

// Handle routes callback queries to appropriate actions
func (h *CallbackHandler) Handle(ctx context.Context, msg *Message) error {
	data, err := keyboard.ParseCallback(msg.CallbackData)
	if err != nil {
		return fmt.Errorf("parse callback: %w", err)
	}

	ctxzap.Info(ctx, "handling callback",
		zap.String("action", data.Action),
		zap.String("value", data.Value),
		zap.Int64("user_id", msg.UserID),
	)

	switch {
	case data.Action == keyboard.ActionFavorite && data.Value == keyboard.ValueRandom:
		sendFavorite(logger.WithAction(ctx, "RandomFavorite"), &h.BaseHandler, h.namesUC, h.keyboard, msg)
	case data.Action == keyboard.ActionLetter && data.Value == keyboard.ValueClear:
		clearLetter(logger.WithAction(ctx, "ClearLetter"), &h.BaseHandler, h.namesUC, msg)
	default:
		return fmt.Errorf("unknown callback %q", msg.CallbackData)
	}

	return nil
}
