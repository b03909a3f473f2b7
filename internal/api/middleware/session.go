package middleware

import (
	"context"
	"net/http"

	"github.com/futig/babyname/internal/config"
	"github.com/futig/babyname/internal/pkg/logger"
	"github.com/futig/babyname/internal/session"
	"github.com/google/uuid"
)

type sessionIDKey struct{}

// Session makes sure every request carries a session cookie and puts its id
// into the request context. The state itself is loaded by the handlers.
func Session(cfg config.SessionConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					id = c.Value
				}
			}

			if id == "" {
				id = session.NewID()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.SecureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionIDKey{}, id)
			ctx = logger.WithSession(ctx, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID returns the id stored by the Session middleware
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
