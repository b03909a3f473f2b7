package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/telegram/keyboard"
	"github.com/futig/babyname/internal/telegram/render"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// GenerateHandler serves /generate
type GenerateHandler struct {
	BaseHandler
	bot       BotAPI
	namesUC   NamesUsecase
	validator GenerationValidator
	keyboard  *keyboard.Builder
	logger    *zap.Logger
	now       func() time.Time
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(
	bot BotAPI,
	sender *MessageSender,
	sessions SessionStore,
	namesUC NamesUsecase,
	validator GenerationValidator,
	kb *keyboard.Builder,
	logger *zap.Logger,
) *GenerateHandler {
	return &GenerateHandler{
		BaseHandler: BaseHandler{
			command:       CommandGenerate,
			messageSender: sender,
			sessions:      sessions,
		},
		bot:       bot,
		namesUC:   namesUC,
		validator: validator,
		keyboard:  kb,
		logger:    logger,
		now:       time.Now,
	}
}

// Handle parses the options, calls the name service once and replies with the list
func (h *GenerateHandler) Handle(ctx context.Context, msg *Message) error {
	ctx = logger.WithAction(ctx, "Generate")

	if err := h.namesUC.Ready(); err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	req, err := ParseGenerateArgs(msg.Text, h.now())
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	st := h.loadState(msg.UserID)
	if req.StartingLetter == "" {
		req.StartingLetter = st.SelectedLetter
	}

	if err := h.validator.ValidateGeneration(req); err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	ctx = logger.AddFields(ctx,
		zap.String("gender", string(req.Gender)),
		zap.String("country", req.Country),
	)

	h.sendMessage(ctx, msg.ChatID, render.MsgGenerating, nil)

	typing := NewTypingNotifier(h.bot, msg.ChatID, h.logger)
	typing.Start(ctx)
	result, err := h.namesUC.Generate(ctx, st, req)
	typing.Stop()

	h.saveState(st)

	if err != nil {
		return fmt.Errorf("generate names: %w", err)
	}

	if result.Failed {
		ctxzap.Warn(ctx, "generation failed", zap.String("text", result.Raw))
		h.sendMessage(ctx, msg.ChatID, render.RenderFailure(result.Raw), nil)
		return nil
	}

	h.sendMessage(ctx, msg.ChatID, render.RenderResult(result.Lines, st.SelectedLetter), h.keyboard.ResultKeyboard())
	return nil
}
