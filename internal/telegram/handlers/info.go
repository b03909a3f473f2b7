package handlers

import (
	"context"

	"github.com/futig/babyname/internal/session"
	"github.com/futig/babyname/internal/telegram/render"
)

// InfoHandler answers a command with fixed text, used for /help
type InfoHandler struct {
	BaseHandler
	text string
}

// NewInfoHandler creates a handler that always replies with text
func NewInfoHandler(command, text string, sender *MessageSender) *InfoHandler {
	return &InfoHandler{
		BaseHandler: BaseHandler{
			command:       command,
			messageSender: sender,
		},
		text: text,
	}
}

// Handle implements Handler
func (h *InfoHandler) Handle(ctx context.Context, msg *Message) error {
	h.sendMessage(ctx, msg.ChatID, h.text, nil)
	return nil
}

// StartHandler greets the user and starts over with an empty session
type StartHandler struct {
	BaseHandler
}

func NewStartHandler(sender *MessageSender, sessions SessionStore) *StartHandler {
	return &StartHandler{
		BaseHandler: BaseHandler{
			command:       CommandStart,
			messageSender: sender,
			sessions:      sessions,
		},
	}
}

// Handle implements Handler
func (h *StartHandler) Handle(ctx context.Context, msg *Message) error {
	h.sessions.Delete(session.TelegramID(msg.UserID))
	h.sendMessage(ctx, msg.ChatID, render.MsgWelcome, nil)
	return nil
}
