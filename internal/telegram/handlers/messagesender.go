package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avast/retry-go/v4"
	pkgRetry "github.com/futig/babyname/internal/pkg/retry"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MessageSender sends messages to Telegram, retrying transient failures
type MessageSender struct {
	bot       BotAPI
	retryOpts []retry.Option
	logger    *zap.Logger
}

// NewMessageSender creates a new MessageSender
func NewMessageSender(bot BotAPI, retryCfg *pkgRetry.RetryConfig, logger *zap.Logger) *MessageSender {
	if retryCfg == nil {
		retryCfg = pkgRetry.DefaultRetryConfig()
	}

	return &MessageSender{
		bot:       bot,
		retryOpts: retryCfg.ToRetryOptions(),
		logger:    logger,
	}
}

// Send sends a message to the specified chat
func (s *MessageSender) Send(ctx context.Context, chatID int64, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	opts := append([]retry.Option{
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryableSendError),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Warn(ctx, "failed to send message, retrying",
				zap.Error(err),
				zap.Uint("attempt", n+1),
				zap.Int64("chat_id", chatID),
			)
		}),
	}, s.retryOpts...)

	err := retry.Do(func() error {
		_, err := s.bot.Send(msg)
		return err
	}, opts...)
	if err != nil {
		s.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		return err
	}

	return nil
}

// isRetryableSendError retries flood control, server side and transport errors.
// Other API errors such as a blocked bot will not succeed on a second try.
func isRetryableSendError(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}
