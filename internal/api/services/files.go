package services

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/rohits-web03/filesmanager/internal/repositories"
)

const PageSize = 20

type UploadInput struct {
	Name     string
	Type     string
	ParentID models.ParentID
	IsPublic bool
	Data     string // base64
}

type Content struct {
	ContentType string
	Data        []byte
}

type FileService interface {
	Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (models.File, error)
	Show(ctx context.Context, userID uuid.UUID, fileID string) (models.File, error)
	List(ctx context.Context, userID uuid.UUID, parent models.ParentID, page int) ([]models.File, error)
	SetPublic(ctx context.Context, userID uuid.UUID, fileID string, public bool) (models.File, error)
	// Data returns a file's bytes. viewerID is uuid.Nil for anonymous callers.
	Data(ctx context.Context, viewerID uuid.UUID, fileID string) (Content, error)
}

type fileService struct {
	users repositories.UserRepository
	files repositories.FileRepository
	blobs repositories.BlobStore
	log   *slog.Logger
}

func NewFileService(users repositories.UserRepository, files repositories.FileRepository, blobs repositories.BlobStore, log *slog.Logger) FileService {
	return &fileService{users: users, files: files, blobs: blobs, log: log}
}

func (s *fileService) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (models.File, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.File{}, newUnauthorizedError(err)
		}
		return models.File{}, newInternalError(err)
	}

	if in.Name == "" {
		return models.File{}, newValidationError(MsgMissingName)
	}
	kind, ok := models.ParseKind(in.Type)
	if !ok {
		return models.File{}, newValidationError(MsgMissingType)
	}
	if in.Data == "" && !kind.IsFolder() {
		return models.File{}, newValidationError(MsgMissingData)
	}

	parent := in.ParentID
	if parent.IsRoot() {
		parent = models.RootID
	} else if err := s.checkParent(ctx, userID, parent); err != nil {
		// Only the caller's own folders can be parents; others read as missing.
		return models.File{}, err
	}

	if kind.IsFolder() {
		folder := models.NewFolder(userID, in.Name, parent, in.IsPublic)
		if err := s.files.Create(ctx, &folder); err != nil {
			return models.File{}, newInternalError(err)
		}
		return folder, nil
	}

	payload, err := decodeData(in.Data)
	if err != nil {
		return models.File{}, newValidationError(MsgInvalidData)
	}

	path, err := s.blobs.Save(ctx, payload)
	if err != nil {
		return models.File{}, newStorageError(err)
	}
	// A client that went away gets no record; nothing has been made visible yet.
	if err := ctx.Err(); err != nil {
		s.discard(path)
		return models.File{}, newStorageError(err)
	}

	file := models.NewBlobFile(userID, in.Name, kind, parent, in.IsPublic, path)
	if err := s.files.Create(ctx, &file); err != nil {
		s.discard(path)
		return models.File{}, newInternalError(err)
	}
	return file, nil
}

func (s *fileService) checkParent(ctx context.Context, userID uuid.UUID, parent models.ParentID) error {
	id, err := uuid.Parse(string(parent))
	if err != nil {
		return newValidationError(MsgParentNotFound)
	}
	folder, err := s.files.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newValidationError(MsgParentNotFound)
		}
		return newInternalError(err)
	}
	if !folder.Type.IsFolder() {
		return newValidationError(MsgParentNotDir)
	}
	return nil
}

func (s *fileService) discard(path string) {
	if err := s.blobs.Remove(path); err != nil {
		s.log.Warn("failed to remove orphan blob", "path", path, "error", err)
	}
}

func (s *fileService) Show(ctx context.Context, userID uuid.UUID, fileID string) (models.File, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return models.File{}, newNotFoundError(err)
	}
	file, err := s.files.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return models.File{}, notFoundOrInternal(err)
	}
	return file, nil
}

func (s *fileService) List(ctx context.Context, userID uuid.UUID, parent models.ParentID, page int) ([]models.File, error) {
	if parent.IsRoot() {
		parent = models.RootID
	}
	if page < 0 {
		page = 0
	}
	files, err := s.files.ListByParent(ctx, userID, parent, page*PageSize, PageSize)
	if err != nil {
		return nil, newInternalError(err)
	}
	return files, nil
}

func (s *fileService) SetPublic(ctx context.Context, userID uuid.UUID, fileID string, public bool) (models.File, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return models.File{}, newNotFoundError(err)
	}
	file, err := s.files.SetPublic(ctx, id, userID, public)
	if err != nil {
		return models.File{}, notFoundOrInternal(err)
	}
	return file, nil
}

func (s *fileService) Data(ctx context.Context, viewerID uuid.UUID, fileID string) (Content, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return Content{}, newNotFoundError(err)
	}
	file, err := s.files.GetByID(ctx, id)
	if err != nil {
		return Content{}, notFoundOrInternal(err)
	}
	// Private files look absent to everyone but their owner.
	if !file.IsPublic && (viewerID == uuid.Nil || viewerID != file.UserID) {
		return Content{}, newNotFoundError(nil)
	}
	if file.Type.IsFolder() {
		return Content{}, newValidationError(MsgFolderNoData)
	}
	if file.LocalPath == "" {
		return Content{}, newNotFoundError(nil)
	}
	data, err := s.blobs.Read(file.LocalPath)
	if err != nil {
		return Content{}, newNotFoundError(err)
	}
	return Content{ContentType: contentType(file.Name, data), Data: data}, nil
}

// decodeData accepts standard or URL-safe base64, with or without padding,
// and ignores embedded whitespace.
func decodeData(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '-':
			return '+'
		case r == '_':
			return '/'
		}
		return r
	}, s)
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return mimetype.Detect(data).String()
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return newNotFoundError(err)
	}
	return newInternalError(err)
}
