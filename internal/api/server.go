package api

import (
	"net/http"

	"github.com/futig/babyname/internal/api/docs"
	"github.com/futig/babyname/internal/api/middleware"
	namesapi "github.com/futig/babyname/internal/api/names"
	"github.com/futig/babyname/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(namesHandler *namesapi.Handler, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests
	r.Use(middleware.CORS)           // Handle CORS

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r, cfg.DocsCfg.SwaggerPath)

	// Session-bound routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(cfg.SessionCfg))
		namesapi.RegisterRoutes(r, namesHandler, middleware.RateLimit(cfg.RateLimitCfg.RPS, cfg.RateLimitCfg.Burst))
	})

	return r
}
