package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/futig/babyname/internal/entity"
	pkgRetry "github.com/futig/babyname/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Supported name service backends
const (
	BackendGemini = "gemini"
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
	BackendMock   = "mock"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Name generation configuration
	GeneratorCfg GeneratorConfig `envPrefix:"NAMES_"`

	// Name service backends
	LLMBackend   string          `env:"LLM_BACKEND" envDefault:"gemini"`
	GeminiCfg    GeminiConfig    `envPrefix:"GEMINI_"`
	OllamaCfg    OllamaConfig    `envPrefix:"OLLAMA_"`
	OpenAICfg    OpenAIConfig    `envPrefix:"OPENAI_"`
	SessionCfg   SessionConfig   `envPrefix:"SESSION_"`
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`
	TelegramCfg  TelegramConfig  `envPrefix:"TELEGRAM_"`
	DocsCfg      DocsConfig      `envPrefix:"DOCS_"`
	ExportCfg    ExportConfig    `envPrefix:"EXPORT_"`

	// Environment (set from flag, not from env var)
	Environment string
}

type GeneratorConfig struct {
	// Number of names requested from the backend, 10 or 20
	Count int `env:"COUNT" envDefault:"20"`
}

// GeminiConfig holds the Google cloud text-generation settings.
// APIKey may be empty; the UI then shows a blocking configuration message.
type GeminiConfig struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.0-flash"`
}

type OllamaConfig struct {
	HTTPClientConfig
	GenerateEndpoint string `env:"GENERATE_ENDPOINT" envDefault:"/api/generate"`
	Model            string `env:"MODEL" envDefault:"llama3.2"`
}

type OpenAIConfig struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	Model   string `env:"MODEL" envDefault:"google/gemini-2.0-flash-001"`
}

// HTTPClientConfig configures the connection to a self-hosted model server.
// Zero RequestTimeout and ResponseHeaderTimeout wait for the answer without a deadline.
type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"0s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"0s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"http://localhost:11434"`
}

// SessionConfig controls how long per-user state is kept in memory
type SessionConfig struct {
	TTL             time.Duration `env:"TTL" envDefault:"2h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
	CookieName      string        `env:"COOKIE_NAME" envDefault:"babyname_session"`
	SecureCookie    bool          `env:"SECURE_COOKIE" envDefault:"false"`
}

// RateLimitConfig limits generation requests per client IP
type RateLimitConfig struct {
	RPS   float64 `env:"RPS" envDefault:"1"`
	Burst int     `env:"BURST" envDefault:"5"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string               `env:"BOT_TOKEN"`
	UpdateTimeout      int                  `env:"UPDATE_TIMEOUT" envDefault:"60"`
	RateLimitPerMinute int                  `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	RateLimitBurst     int                  `env:"RATE_LIMIT_BURST" envDefault:"3"`
	ShutdownTimeout    int                  `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
	SendRetry          pkgRetry.RetryConfig `envPrefix:"SEND_RETRY_"`
}

type DocsConfig struct {
	SwaggerPath string `env:"SWAGGER_PATH" envDefault:"docs/swagger.yaml"`
}

type ExportConfig struct {
	FontPath     string `env:"FONT_PATH"`
	UniofficeKey string `env:"UNIOFFICE_KEY"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.LLMBackend = strings.ToLower(strings.TrimSpace(cfg.LLMBackend))

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch cfg.LLMBackend {
	case BackendGemini, BackendOllama, BackendOpenAI, BackendMock:
	default:
		errors = append(errors, fmt.Sprintf("LLM_BACKEND must be one of gemini, ollama, openai, mock, got %q", cfg.LLMBackend))
	}

	if cfg.GeneratorCfg.Count != 10 && cfg.GeneratorCfg.Count != 20 {
		errors = append(errors, fmt.Sprintf("NAMES_COUNT must be 10 or 20, got %d", cfg.GeneratorCfg.Count))
	}

	if cfg.RateLimitCfg.RPS <= 0 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_RPS must be positive, got %v", cfg.RateLimitCfg.RPS))
	}

	if cfg.RateLimitCfg.Burst < 1 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimitCfg.Burst))
	}

	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute))
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout))
	}

	if cfg.SessionCfg.TTL <= 0 {
		errors = append(errors, fmt.Sprintf("SESSION_TTL must be positive, got %s", cfg.SessionCfg.TTL))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// CredentialError reports a missing secret for the selected backend.
// It returns nil when the backend does not need one or it is present.
func (c *Config) CredentialError() error {
	switch c.LLMBackend {
	case BackendGemini:
		if strings.TrimSpace(c.GeminiCfg.APIKey) == "" {
			return &entity.MissingCredentialError{Variable: "GEMINI_API_KEY"}
		}
	case BackendOpenAI:
		if strings.TrimSpace(c.OpenAICfg.APIKey) == "" {
			return &entity.MissingCredentialError{Variable: "OPENAI_API_KEY"}
		}
	}
	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
