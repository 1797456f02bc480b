package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/repositories"
	"github.com/rohits-web03/filesmanager/internal/utils"
)

const tokenBytes = 32

type AuthService interface {
	// Connect exchanges a "Basic base64(email:password)" header for a session token.
	Connect(ctx context.Context, authorization string) (string, error)
	// Disconnect drops the session. Unknown tokens are not an error.
	Disconnect(ctx context.Context, token string) error
	// ResolveSession maps a token to its user id without checking the user still exists.
	ResolveSession(ctx context.Context, token string) (uuid.UUID, error)
}

type authService struct {
	users    repositories.UserRepository
	sessions repositories.SessionStore
	ttl      time.Duration
}

func NewAuthService(users repositories.UserRepository, sessions repositories.SessionStore, ttl time.Duration) AuthService {
	return &authService{users: users, sessions: sessions, ttl: ttl}
}

func (s *authService) Connect(ctx context.Context, authorization string) (string, error) {
	email, password, ok := parseBasicAuth(authorization)
	if !ok {
		return "", newUnauthorizedError(nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", newUnauthorizedError(nil)
		}
		return "", newInternalError(err)
	}
	if !CheckPassword(user.Password, password) {
		return "", newUnauthorizedError(nil)
	}

	token, err := utils.GenerateSecureToken(tokenBytes)
	if err != nil {
		return "", newInternalError(err)
	}
	if err := s.sessions.Set(ctx, token, user.ID.String(), s.ttl); err != nil {
		return "", newInternalError(err)
	}
	return token, nil
}

func (s *authService) Disconnect(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return newInternalError(err)
	}
	return nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, newUnauthorizedError(nil)
	}
	raw, err := s.sessions.Get(ctx, token)
	if err != nil {
		return uuid.Nil, newUnauthorizedError(err)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, newUnauthorizedError(err)
	}
	return id, nil
}

// parseBasicAuth splits on the first ':' only, so passwords may contain ':'.
func parseBasicAuth(header string) (email, password string, ok bool) {
	scheme, encoded, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", false
	}
	email, password, found = strings.Cut(string(decoded), ":")
	if !found || email == "" {
		return "", "", false
	}
	return email, password, true
}
