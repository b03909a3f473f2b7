package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/entity"
	"github.com/futig/babyname/internal/integration/common"
	pkghttp "github.com/futig/babyname/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector talks to a local model-serving endpoint (Ollama-compatible /api/generate)
type Connector struct {
	config    config.OllamaConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.OllamaConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Generate sends the prompt to the local model and returns the trimmed answer
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating names via local model", zap.String("model", c.config.Model))

	req := &entity.OllamaGenerateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		Stream: false,
	}

	var resp entity.OllamaGenerateResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req, &resp)
	if err != nil {
		return "", fmt.Errorf("local model %s: %w", c.config.Model, err)
	}

	if resp.Error != "" {
		return "", fmt.Errorf("local model %s: %s", c.config.Model, resp.Error)
	}

	text := strings.TrimSpace(resp.Response)
	if text == "" {
		return "", fmt.Errorf("local model %s: %w", c.config.Model, entity.ErrEmptyResponse)
	}

	ctxzap.Info(ctx, "names generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
