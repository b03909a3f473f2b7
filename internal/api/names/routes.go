package names

import (
	"net/http"

	"github.com/futig/babyname/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the form pages and the JSON API.
// limit wraps the routes that call the name service.
func RegisterRoutes(r chi.Router, h *Handler, limit func(http.Handler) http.Handler) {
	r.Use(h.serializeSession)

	r.Get("/", h.Index)
	r.With(middleware.OnRateLimited(h.rateLimitedForm), limit).Post("/generate", h.GenerateForm)
	r.Post("/letter/clear", h.ClearLetterForm)
	r.Post("/favorite", h.FavoriteForm)
	r.Post("/reset", h.ResetForm)
	r.Get("/export", h.Export)

	r.Route("/api/v1", func(r chi.Router) {
		r.With(limit).Post("/names", h.GenerateNames)
		r.Get("/names", h.GetLastNames)
		r.Post("/names/favorite", h.RandomFavorite)
		r.Delete("/letter", h.ClearLetter)
		r.Delete("/session", h.ResetSession)
	})
}
