package names

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/session"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// NamesUsecase implements name generation business logic
type NamesUsecase struct {
	llmConnector  LLMConnector
	count         int
	credentialErr error
	pick          func(n int) int
	logger        *zap.Logger
}

// NewUsecase creates a new names use case. A non-nil credentialErr blocks
// every generation until the configuration is fixed.
func NewUsecase(
	llmConnector LLMConnector,
	count int,
	credentialErr error,
	logger *zap.Logger,
) *NamesUsecase {
	return &NamesUsecase{
		llmConnector:  llmConnector,
		count:         count,
		credentialErr: credentialErr,
		pick:          rand.IntN,
		logger:        logger,
	}
}

// Ready returns the configuration error that blocks generation, if any
func (uc *NamesUsecase) Ready() error {
	return uc.credentialErr
}

// Generate builds the prompt, calls the name service once and formats the
// answer. Backend failures are returned as a failed result, not as an error.
func (uc *NamesUsecase) Generate(ctx context.Context, st *session.State, req *entity.GenerationRequest) (
	*entity.GenerationResult, error,
) {
	if err := uc.Ready(); err != nil {
		return nil, err
	}

	st.SelectedLetter = strings.ToUpper(strings.TrimSpace(req.StartingLetter))

	prompt := BuildPrompt(req, uc.count)
	ctxzap.Debug(ctx, "prompt built", zap.String("prompt", prompt))

	text := uc.callNameService(ctx, prompt)
	result := &entity.GenerationResult{
		Prompt: prompt,
		Raw:    text,
	}

	if IsErrorText(text) {
		ctxzap.Warn(ctx, "name service returned an error text", zap.String("text", text))
		result.Failed = true
		return result, nil
	}

	result.Lines = FormatResponse(text)
	st.LastLines = result.Lines

	ctxzap.Info(ctx, "names generated",
		zap.Int("line_count", len(result.Lines)),
		zap.Int("pair_count", len(result.Pairs())),
	)

	return result, nil
}

// callNameService makes exactly one backend call and folds any failure into
// the returned text.
func (uc *NamesUsecase) callNameService(ctx context.Context, prompt string) string {
	text, err := uc.llmConnector.Generate(ctx, prompt)
	if err != nil {
		ctxzap.Error(ctx, "name service call failed", zap.Error(err))
		return fmt.Sprintf("An error occurred: %v", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Sprintf("An error occurred: %v", entity.ErrEmptyResponse)
	}

	return text
}

// SelectLetter remembers the starting letter for the next generation
func (uc *NamesUsecase) SelectLetter(ctx context.Context, st *session.State, letter string) {
	st.SelectedLetter = strings.ToUpper(strings.TrimSpace(letter))
	ctxzap.Debug(ctx, "letter selected", zap.String("letter", st.SelectedLetter))
}

// ClearLetter forgets the selected starting letter
func (uc *NamesUsecase) ClearLetter(ctx context.Context, st *session.State) {
	ctxzap.Debug(ctx, "clearing selected letter", zap.String("letter", st.SelectedLetter))
	st.SelectedLetter = ""
}

// IsConfigError reports whether err blocks generation until the configuration changes
func IsConfigError(err error) bool {
	return errors.Is(err, entity.ErrMissingCredential)
}
