package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/pkg/validator"
	"github.com/futig/babyname/internal/telegram/render"
)

// LetterHandler serves /letter. Without an argument it shows the current letter.
type LetterHandler struct {
	BaseHandler
	namesUC NamesUsecase
}

// NewLetterHandler creates a new letter handler
func NewLetterHandler(sender *MessageSender, sessions SessionStore, namesUC NamesUsecase) *LetterHandler {
	return &LetterHandler{
		BaseHandler: BaseHandler{
			command:       CommandLetter,
			messageSender: sender,
			sessions:      sessions,
		},
		namesUC: namesUC,
	}
}

// Handle implements Handler
func (h *LetterHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "SelectLetter")

	st := h.loadState(msg.UserID)

	letter := strings.TrimSpace(msg.Text)
	if letter == "" {
		h.sendMessage(ctx, msg.ChatID, render.RenderLetter(st.SelectedLetter), nil)
		return nil
	}

	if err := validator.ValidateLetter(letter); err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	h.namesUC.SelectLetter(ctx, st, letter)
	h.saveState(st)

	h.sendMessage(ctx, msg.ChatID, fmt.Sprintf(render.MsgLetterSet, st.SelectedLetter), nil)
	return nil
}

// ClearLetterHandler serves /clearletter
type ClearLetterHandler struct {
	BaseHandler
	namesUC NamesUsecase
}

// NewClearLetterHandler creates a new clear letter handler
func NewClearLetterHandler(sender *MessageSender, sessions SessionStore, namesUC NamesUsecase) *ClearLetterHandler {
	return &ClearLetterHandler{
		BaseHandler: BaseHandler{
			command:       CommandClearLetter,
			messageSender: sender,
			sessions:      sessions,
		},
		namesUC: namesUC,
	}
}

// Handle implements Handler
func (h *ClearLetterHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "ClearLetter")
	clearLetter(ctx, &h.BaseHandler, h.namesUC, msg)
	return nil
}

func clearLetter(ctx context.Context, h *BaseHandler, namesUC NamesUsecase, msg *Message) {
	st := h.loadState(msg.UserID)
	namesUC.ClearLetter(ctx, st)
	h.saveState(st)

	h.sendMessage(ctx, msg.ChatID, render.MsgLetterCleared, nil)
}
