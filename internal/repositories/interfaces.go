package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	Count(ctx context.Context) (int64, error)
}

type FileRepository interface {
	Create(ctx context.Context, file *models.File) error
	GetByID(ctx context.Context, id uuid.UUID) (models.File, error)
	GetByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.File, error)
	// ListByParent returns newest first.
	ListByParent(ctx context.Context, owner uuid.UUID, parent models.ParentID, offset, limit int) ([]models.File, error)
	// SetPublic updates the flag and returns the row as stored after the update.
	SetPublic(ctx context.Context, id, owner uuid.UUID, public bool) (models.File, error)
	Count(ctx context.Context) (int64, error)
}

// SessionStore maps opaque tokens to user ids with an expiry.
type SessionStore interface {
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns ErrSessionNotFound on a miss or expired entry.
	Get(ctx context.Context, token string) (string, error)
	// Delete succeeds whether or not the token existed.
	Delete(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

// BlobStore persists payload bytes and hands back where they live.
type BlobStore interface {
	Save(ctx context.Context, data []byte) (string, error)
	Read(path string) ([]byte, error)
	Remove(path string) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Container struct {
	Users    UserRepository
	Files    FileRepository
	Sessions SessionStore
	Blobs    BlobStore
	DB       Pinger
}
