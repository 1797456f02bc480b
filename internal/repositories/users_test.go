package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserRepository_CreateAndGet(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	u := models.User{Email: "a@b.com", Password: "digest"}
	require.NoError(t, repo.Create(ctx, &u))
	require.NotEqual(t, uuid.Nil, u.ID)

	byEmail, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "digest", byEmail.Password)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestGormUserRepository_NotFound(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.User{Email: "a@b.com", Password: "x"}))
	err := repo.Create(ctx, &models.User{Email: "a@b.com", Password: "y"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestConnectDatabase_LogsThroughSlogWithoutNotFoundNoise(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	db, err := ConnectDatabase("sqlite", filepath.Join(t.TempDir(), "test.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	buf.Reset()
	_, err = repo.GetByEmail(ctx, "missing@b.com")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, buf.String())

	require.NoError(t, repo.Create(ctx, &models.User{Email: "a@b.com", Password: "x"}))
	require.ErrorIs(t, repo.Create(ctx, &models.User{Email: "a@b.com", Password: "x"}), ErrDuplicate)
	require.NotEmpty(t, buf.String())

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.SplitN(buf.String(), "\n", 2)[0]), &entry))
	assert.Equal(t, "gorm", entry["component"])
	assert.Equal(t, "ERROR", entry["level"])
}
