package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(fields...))
}

// WithAction names the flow a log line belongs to, e.g. "GenerateForm"
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}

// WithSession tags every following line with the web session id
func WithSession(ctx context.Context, sessionID string) context.Context {
	return AddFields(ctx, zap.String("session_id", sessionID))
}

// WithTelegramUser tags every following line with the Telegram user and chat
func WithTelegramUser(ctx context.Context, userID, chatID int64) context.Context {
	return AddFields(ctx, zap.Int64("user_id", userID), zap.Int64("chat_id", chatID))
}
