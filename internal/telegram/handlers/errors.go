package handlers

import (
	"context"
	"errors"
	"net"

	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/telegram/render"
	"github.com/futig/babyname/internal/usecase/names"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity int

const (
	SeverityWarning ErrorSeverity = iota
	SeverityError
)

// String returns string representation of error severity
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// HandlerError represents a structured error with user message and logging info
type HandlerError struct {
	Err         error
	UserMessage string
	LogMessage  string
	Severity    ErrorSeverity
}

// classifyHandlerError analyzes an error and returns a HandlerError with appropriate severity and messages
func classifyHandlerError(err error) *HandlerError {
	if err == nil {
		return &HandlerError{
			UserMessage: render.ErrGeneric,
			LogMessage:  "unknown error",
			Severity:    SeverityWarning,
		}
	}

	var credErr *entity.MissingCredentialError
	if errors.As(err, &credErr) {
		return &HandlerError{
			Err:         err,
			UserMessage: "❌ " + credErr.UserMessage(),
			LogMessage:  "name service credential missing",
			Severity:    SeverityError,
		}
	}

	if names.IsConfigError(err) {
		return &HandlerError{
			Err:         err,
			UserMessage: render.ErrServiceUnavailable,
			LogMessage:  "name service not configured",
			Severity:    SeverityError,
		}
	}

	// Check for domain errors (non-critical)
	switch {
	case errors.Is(err, entity.ErrMissingField):
		return &HandlerError{
			Err:         err,
			UserMessage: render.MsgSelectGenderCountry,
			LogMessage:  "missing generation field",
			Severity:    SeverityWarning,
		}
	case errors.Is(err, entity.ErrInvalidParameter), errors.Is(err, entity.ErrInvalidFormat):
		return &HandlerError{
			Err:         err,
			UserMessage: render.RenderInvalidInput(err.Error()),
			LogMessage:  "invalid generation input",
			Severity:    SeverityWarning,
		}
	case errors.Is(err, entity.ErrNoFavorites):
		return &HandlerError{
			Err:         err,
			UserMessage: render.MsgNoNamesYet,
			LogMessage:  "no names to pick from",
			Severity:    SeverityWarning,
		}
	}

	// Check for timeout errors
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &HandlerError{
			Err:         err,
			UserMessage: render.ErrTimeout,
			LogMessage:  "operation timed out",
			Severity:    SeverityError,
		}
	}

	// Check for network errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &HandlerError{
				Err:         err,
				UserMessage: render.ErrTimeout,
				LogMessage:  "network timeout",
				Severity:    SeverityError,
			}
		}
		return &HandlerError{
			Err:         err,
			UserMessage: render.ErrNetworkIssue,
			LogMessage:  "network error",
			Severity:    SeverityError,
		}
	}

	// Default to generic error
	return &HandlerError{
		Err:         err,
		UserMessage: render.ErrGeneric,
		LogMessage:  "handler error",
		Severity:    SeverityError,
	}
}

// HandleError logs the error with its severity and sends a user-friendly message
func (h *BaseHandler) HandleError(ctx context.Context, chatID int64, err error) {
	if err == nil {
		return
	}

	handlerErr := classifyHandlerError(err)

	switch handlerErr.Severity {
	case SeverityError:
		ctxzap.Error(ctx, handlerErr.LogMessage,
			zap.Error(handlerErr.Err),
			zap.Int64("chat_id", chatID),
		)
	case SeverityWarning:
		ctxzap.Warn(ctx, handlerErr.LogMessage,
			zap.Error(handlerErr.Err),
			zap.Int64("chat_id", chatID),
		)
	}

	h.sendMessage(ctx, chatID, handlerErr.UserMessage, nil)
}
