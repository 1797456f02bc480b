package services

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/rohits-web03/filesmanager/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basic(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func newAuthFixture(t *testing.T, password string) (AuthService, *fakeUserRepo, *repositories.MemorySessionStore, models.User) {
	t.Helper()
	users := newFakeUserRepo()
	digest, err := HashPassword(password)
	require.NoError(t, err)
	u := models.User{Email: "bob@dylan.com", Password: digest}
	require.NoError(t, users.Create(context.Background(), &u))
	sessions := repositories.NewMemorySessionStore()
	return NewAuthService(users, sessions, 24*time.Hour), users, sessions, u
}

func TestAuthService_ConnectAndResolve(t *testing.T) {
	svc, _, sessions, u := newAuthFixture(t, "toto1234!")
	ctx := context.Background()

	token, err := svc.Connect(ctx, basic("bob@dylan.com", "toto1234!"))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	stored, err := sessions.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), stored)

	id, err := svc.ResolveSession(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestAuthService_ConnectPasswordWithColon(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t, "a:b:c")

	_, err := svc.Connect(context.Background(), basic("bob@dylan.com", "a:b:c"))
	require.NoError(t, err)
}

func TestAuthService_ConnectTokensAreDistinct(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t, "pw")
	ctx := context.Background()

	a, err := svc.Connect(ctx, basic("bob@dylan.com", "pw"))
	require.NoError(t, err)
	b, err := svc.Connect(ctx, basic("bob@dylan.com", "pw"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = svc.ResolveSession(ctx, a)
	require.NoError(t, err)
	_, err = svc.ResolveSession(ctx, b)
	require.NoError(t, err)
}

func TestAuthService_ConnectRejects(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t, "pw")

	tests := []struct {
		name   string
		header string
	}{
		{"empty", ""},
		{"bearer scheme", "Bearer abc"},
		{"no payload", "Basic"},
		{"bad base64", "Basic %%%"},
		{"no colon", "Basic " + base64.StdEncoding.EncodeToString([]byte("bob@dylan.com"))},
		{"unknown email", basic("nobody@dylan.com", "pw")},
		{"wrong password", basic("bob@dylan.com", "nope")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Connect(context.Background(), tc.header)
			requireAppError(t, err, http.StatusUnauthorized, MsgUnauthorized)
		})
	}
}

func TestAuthService_ConnectStoreFailure(t *testing.T) {
	svc, users, _, _ := newAuthFixture(t, "pw")
	users.getErr = errors.New("db down")

	_, err := svc.Connect(context.Background(), basic("bob@dylan.com", "pw"))
	requireAppError(t, err, http.StatusInternalServerError, MsgInternal)
}

func TestAuthService_Disconnect(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t, "pw")
	ctx := context.Background()

	token, err := svc.Connect(ctx, basic("bob@dylan.com", "pw"))
	require.NoError(t, err)

	require.NoError(t, svc.Disconnect(ctx, token))
	_, err = svc.ResolveSession(ctx, token)
	requireAppError(t, err, http.StatusUnauthorized, MsgUnauthorized)

	require.NoError(t, svc.Disconnect(ctx, token))
	require.NoError(t, svc.Disconnect(ctx, ""))
}

func TestAuthService_ResolveSessionRejects(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture(t, "pw")
	ctx := context.Background()

	_, err := svc.ResolveSession(ctx, "")
	requireAppError(t, err, http.StatusUnauthorized, MsgUnauthorized)

	_, err = svc.ResolveSession(ctx, "unknown")
	requireAppError(t, err, http.StatusUnauthorized, MsgUnauthorized)

	require.NoError(t, sessions.Set(ctx, "garbled", "not-a-uuid", time.Hour))
	_, err = svc.ResolveSession(ctx, "garbled")
	requireAppError(t, err, http.StatusUnauthorized, MsgUnauthorized)

	// The session layer does not check that the user still exists.
	ghost := uuid.New()
	require.NoError(t, sessions.Set(ctx, "ghost", ghost.String(), time.Hour))
	id, err := svc.ResolveSession(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, ghost, id)
}
