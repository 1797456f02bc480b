package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes payloads under Root using random names.
type DiskStore struct {
	Root string
}

// NewDiskStore resolves root to an absolute path. The directory itself is
// created on first write.
func NewDiskStore(root string) (*DiskStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	return &DiskStore{Root: abs}, nil
}

// Save writes data to a new blob and returns its absolute path. The blob only
// appears under its final name once fully written and synced.
func (s *DiskStore) Save(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", fmt.Errorf("create storage root: %w", err)
	}

	tmp, err := os.CreateTemp(s.Root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp blob: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("sync blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}

	dst := filepath.Join(s.Root, uuid.NewString())
	if err := os.Rename(tmpName, dst); err != nil {
		return "", fmt.Errorf("commit blob: %w", err)
	}
	committed = true
	return dst, nil
}

func (s *DiskStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (s *DiskStore) Remove(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
