package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/repositories"
	"github.com/rohits-web03/filesmanager/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-Token"

type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (uuid.UUID, error)
}

// RequireSession rejects requests without a live session with 401.
func RequireSession(sessions SessionResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.ResolveSession(r.Context(), r.Header.Get(TokenHeader))
			if err != nil {
				if !errors.Is(err, repositories.ErrSessionNotFound) && r.Header.Get(TokenHeader) != "" {
					log.Warn("session lookup failed", "path", r.URL.Path, "error", err)
				}
				utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// OptionalSession attaches the caller's id when the token resolves and
// otherwise lets the request through anonymously.
func OptionalSession(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := r.Header.Get(TokenHeader); token != "" {
				if userID, err := sessions.ResolveSession(r.Context(), token); err == nil {
					r = r.WithContext(WithUserID(r.Context(), userID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// UserID returns uuid.Nil for anonymous requests.
func UserID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(UserIDKey).(uuid.UUID)
	return id
}
