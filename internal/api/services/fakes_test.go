package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/rohits-web03/filesmanager/internal/repositories"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeUserRepo struct {
	byID    map[uuid.UUID]models.User
	byEmail map[string]models.User
	getErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]models.User{}, byEmail: map[string]models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repositories.ErrDuplicate
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	if r.getErr != nil {
		return models.User{}, r.getErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (models.User, error) {
	if r.getErr != nil {
		return models.User{}, r.getErr
	}
	u, ok := r.byID[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeFileRepo struct {
	files     []models.File
	createErr error
	countErr  error
}

func (r *fakeFileRepo) Create(_ context.Context, f *models.File) error {
	if r.createErr != nil {
		return r.createErr
	}
	f.ID = uuid.New()
	r.files = append(r.files, *f)
	return nil
}

func (r *fakeFileRepo) GetByID(_ context.Context, id uuid.UUID) (models.File, error) {
	for _, f := range r.files {
		if f.ID == id {
			return f, nil
		}
	}
	return models.File{}, repositories.ErrNotFound
}

func (r *fakeFileRepo) GetByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.File, error) {
	f, err := r.GetByID(ctx, id)
	if err != nil || f.UserID != owner {
		return models.File{}, repositories.ErrNotFound
	}
	return f, nil
}

func (r *fakeFileRepo) ListByParent(_ context.Context, owner uuid.UUID, parent models.ParentID, offset, limit int) ([]models.File, error) {
	out := []models.File{}
	skipped := 0
	for i := len(r.files) - 1; i >= 0 && len(out) < limit; i-- {
		f := r.files[i]
		if f.UserID != owner || f.ParentID != parent {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFileRepo) SetPublic(_ context.Context, id, owner uuid.UUID, public bool) (models.File, error) {
	for i := range r.files {
		if r.files[i].ID == id && r.files[i].UserID == owner {
			r.files[i].IsPublic = public
			return r.files[i], nil
		}
	}
	return models.File{}, repositories.ErrNotFound
}

func (r *fakeFileRepo) Count(context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.files)), nil
}

type fakeBlobStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	saveErr error
	next    int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (s *fakeBlobStore) Save(_ context.Context, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.next++
	path := fmt.Sprintf("/blobs/%d", s.next)
	s.blobs[path] = append([]byte(nil), data...)
	return path, nil
}

func (s *fakeBlobStore) Read(path string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[path]
	if !ok {
		return nil, errors.New("no such blob")
	}
	return b, nil
}

func (s *fakeBlobStore) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, path)
	return nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
