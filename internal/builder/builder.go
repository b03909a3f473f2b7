package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/babyname/internal/api"
	namesapi "github.com/futig/babyname/internal/api/names"
	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/pkg/formatter"
	"github.com/futig/babyname/internal/pkg/validator"
	"github.com/futig/babyname/internal/session"
	"github.com/futig/babyname/internal/telegram"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.String("backend", cfg.LLMBackend),
	)

	namesUC, err := setupUsecase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Use cases initialized")

	sessions := session.NewStore(cfg.SessionCfg)
	nameValidator := validator.NewValidator()
	formatterFactory := formatter.NewFactory(cfg.ExportCfg.FontPath, setupDOCXExport(cfg.ExportCfg, logger))

	// Setup API handlers
	namesHandler := namesapi.NewHandler(namesUC, sessions, nameValidator, formatterFactory)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(namesHandler, cfg, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server; no WriteTimeout, generations run until the model answers
	server := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:   server,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
		zap.String("backend", cfg.LLMBackend),
	)

	namesUC, err := setupUsecase(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Use cases initialized")

	sessions := session.NewStore(cfg.SessionCfg)

	bot, err := telegram.NewBot(&cfg.TelegramCfg, sessions, namesUC, validator.NewValidator(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, nil
}

// setupDOCXExport loads the unioffice license; without one DOCX export is switched off
func setupDOCXExport(cfg config.ExportConfig, logger *zap.Logger) bool {
	if err := formatter.LoadDOCXLicense(cfg.UniofficeKey); err != nil {
		logger.Warn("DOCX export disabled", zap.Error(err))
		return false
	}
	logger.Info("DOCX export enabled")
	return true
}
