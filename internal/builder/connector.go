package builder

import (
	"context"
	"fmt"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/integration/llm"
	"github.com/futig/babyname/internal/usecase/names"
	"go.uber.org/zap"
)

// setupNameService picks the text-generation backend. A missing credential
// does not stop the build: generation stays blocked and the UI says why.
func setupNameService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (names.LLMConnector, error) {
	if err := cfg.CredentialError(); err != nil {
		logger.Warn("Name service credential is missing, generation disabled",
			zap.String("backend", cfg.LLMBackend),
			zap.Error(err),
		)
		return llm.NewDisabledConnector(err), nil
	}

	switch cfg.LLMBackend {
	case config.BackendGemini:
		logger.Info("Using Gemini name service", zap.String("model", cfg.GeminiCfg.Model))
		return llm.NewGeminiConnector(ctx, cfg.GeminiCfg, logger)
	case config.BackendOllama:
		logger.Info("Using Ollama name service",
			zap.String("url", cfg.OllamaCfg.Url),
			zap.String("model", cfg.OllamaCfg.Model),
		)
		return llm.NewConnector(cfg.OllamaCfg, logger), nil
	case config.BackendOpenAI:
		logger.Info("Using OpenAI-compatible name service",
			zap.String("base_url", cfg.OpenAICfg.BaseURL),
			zap.String("model", cfg.OpenAICfg.Model),
		)
		return llm.NewOpenAIConnector(cfg.OpenAICfg, logger), nil
	case config.BackendMock:
		logger.Info("Using mock name service")
		return llm.NewMockConnector(logger), nil
	default:
		return nil, fmt.Errorf("unknown name service backend %q", cfg.LLMBackend)
	}
}

// setupUsecase wires the name service, the session store and the use case
// shared by the web server and the Telegram bot.
func setupUsecase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*names.NamesUsecase, error) {
	connector, err := setupNameService(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup name service: %w", err)
	}

	return names.NewUsecase(connector, cfg.GeneratorCfg.Count, cfg.CredentialError(), logger), nil
}
