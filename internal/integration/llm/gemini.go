package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiConnector calls the Google Gemini text-generation API
type GeminiConnector struct {
	config config.GeminiConfig
	client *genai.Client
	logger *zap.Logger
}

// NewGeminiConnector creates the cloud client. Extra client settings such as
// a test endpoint can be passed through httpOptions.
func NewGeminiConnector(
	ctx context.Context,
	cfg config.GeminiConfig,
	logger *zap.Logger,
	httpOptions ...genai.HTTPOptions,
) (*GeminiConnector, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(httpOptions) > 0 {
		clientCfg.HTTPOptions = httpOptions[0]
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiConnector{
		config: cfg,
		client: client,
		logger: logger,
	}, nil
}

// Generate sends the prompt to the configured Gemini model
func (c *GeminiConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating names via gemini", zap.String("model", c.config.Model))

	res, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", c.config.Model, err)
	}

	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini %s: %w", c.config.Model, entity.ErrEmptyResponse)
	}

	var out strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			out.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", fmt.Errorf("gemini %s: %w", c.config.Model, entity.ErrEmptyResponse)
	}

	ctxzap.Info(ctx, "names generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
