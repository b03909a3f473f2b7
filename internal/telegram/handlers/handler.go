package handlers

import (
	"context"

	"github.com/futig/babyname/internal/session"
)

// Handler command constants
const (
	HandlerCallback    = "CALLBACK"
	CommandStart       = "start"
	CommandHelp        = "help"
	CommandGenerate    = "generate"
	CommandLetter      = "letter"
	CommandClearLetter = "clearletter"
	CommandFavorite    = "favorite"
)

// Message represents a normalized Telegram message
type Message struct {
	ChatID       int64
	UserID       int64
	MessageID    int
	Text         string // command arguments
	CallbackData string
	CallbackID   string
}

// Handler defines the interface for command handlers
type Handler interface {
	// Handle processes a message for this command
	Handle(ctx context.Context, msg *Message) error

	// GetCommand returns the command this handler serves
	GetCommand() string
}

// BaseHandler provides common functionality for all handlers
type BaseHandler struct {
	command       string
	messageSender *MessageSender
	sessions      SessionStore
}

// GetCommand implements Handler
func (h *BaseHandler) GetCommand() string {
	return h.command
}

// sendMessage is a convenience wrapper for messageSender.Send
func (h *BaseHandler) sendMessage(ctx context.Context, chatID int64, text string, markup interface{}) {
	if h.messageSender != nil {
		h.messageSender.Send(ctx, chatID, text, markup)
	}
}

// loadState returns the user's state; save it back with saveState
func (h *BaseHandler) loadState(userID int64) *session.State {
	return h.sessions.Get(session.TelegramID(userID))
}

func (h *BaseHandler) saveState(st *session.State) {
	h.sessions.Save(st)
}

// validCommands defines all valid handler commands
var validCommands = map[string]bool{
	HandlerCallback:    true,
	CommandStart:       true,
	CommandHelp:        true,
	CommandGenerate:    true,
	CommandLetter:      true,
	CommandClearLetter: true,
	CommandFavorite:    true,
}

// IsValidCommand checks if a command is valid for handler registration
func IsValidCommand(command string) bool {
	_, ok := validCommands[command]
	return ok
}
