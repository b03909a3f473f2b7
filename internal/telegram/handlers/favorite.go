package handlers

import (
	"context"

	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/telegram/keyboard"
	"github.com/futig/babyname/internal/telegram/render"
)

// FavoriteHandler serves /favorite
type FavoriteHandler struct {
	BaseHandler
	namesUC  NamesUsecase
	keyboard *keyboard.Builder
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(
	sender *MessageSender,
	sessions SessionStore,
	namesUC NamesUsecase,
	kb *keyboard.Builder,
) *FavoriteHandler {
	return &FavoriteHandler{
		BaseHandler: BaseHandler{
			command:       CommandFavorite,
			messageSender: sender,
			sessions:      sessions,
		},
		namesUC:  namesUC,
		keyboard: kb,
	}
}

// Handle implements Handler
func (h *FavoriteHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "RandomFavorite")
	sendFavorite(ctx, &h.BaseHandler, h.namesUC, h.keyboard, msg)
	return nil
}

// sendFavorite picks from the last list; the name service is not called
func sendFavorite(ctx context.Context, h *BaseHandler, namesUC NamesUsecase, kb *keyboard.Builder, msg *Message) {
	st := h.loadState(msg.UserID)

	favorite, err := namesUC.RandomFavorite(ctx, st)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sendMessage(ctx, msg.ChatID, render.RenderFavorite(favorite), kb.FavoriteKeyboard())
}
