package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"
)

// OpenAIConnector calls an OpenAI-compatible chat completion endpoint
type OpenAIConnector struct {
	config config.OpenAIConfig
	client openai.Client
	logger *zap.Logger
}

func NewOpenAIConnector(cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIConnector {
	return &OpenAIConnector{
		config: cfg,
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.BaseURL),
			option.WithMaxRetries(0),
		),
		logger: logger,
	}
}

// Generate sends the prompt as a single user message
func (c *OpenAIConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating names via openai-compatible api", zap.String("model", c.config.Model))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.config.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai %s: %w", c.config.Model, err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai %s: %w", c.config.Model, entity.ErrEmptyResponse)
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("openai %s: %w", c.config.Model, entity.ErrEmptyResponse)
	}

	ctxzap.Info(ctx, "names generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
