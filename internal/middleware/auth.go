package middleware

import (
	"context"
	"net/http"

	"hostelvend-api/internal/model"
	"hostelvend-api/internal/service"
	"hostelvend-api/pkg/apierror"
)

// SessionKey is the key for storing the resolved session in request context.
const SessionKey contextKey = "session"

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Sessions *service.SessionService
}

// RequireSession creates a middleware that resolves the X-Token header
// into a session and rejects requests without one. Role-specific checks
// are layered on with RequireRole.
func RequireSession(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Token")
			if token == "" {
				writeError(w, apierror.Unauthorized("Authentication required. Use the X-Token header."))
				return
			}

			session := cfg.Sessions.Resolve(r.Context(), token)
			if session == nil {
				writeError(w, apierror.Unauthorized("Invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole creates a middleware that rejects sessions of the wrong
// role. Must run after RequireSession.
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSessionFromContext(r.Context())
			if session == nil || session.Role != role {
				writeError(w, apierror.Forbidden(""))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}

// GetSessionFromContext retrieves the resolved session from request context.
func GetSessionFromContext(ctx context.Context) *model.Session {
	if session, ok := ctx.Value(SessionKey).(*model.Session); ok {
		return session
	}
	return nil
}
