package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kind tags what a File holds. Folders own children, the other kinds own one blob.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// ParseKind returns false for anything outside folder, file and image.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindFolder, KindFile, KindImage:
		return k, true
	}
	return "", false
}

func (k Kind) IsFolder() bool { return k == KindFolder }

// RootID is the parent of every top-level file.
const RootID = "0"

// ParentID references a folder by id, or RootID. On the wire the root is the
// number 0 and any other parent is the id string.
type ParentID string

func (p ParentID) IsRoot() bool { return p == "" || p == RootID }

func (p ParentID) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte("0"), nil
	}
	return json.Marshal(string(p))
}

func (p *ParentID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = RootID
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			s = RootID
		}
		*p = ParentID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("parentId: %w", err)
	}
	*p = ParentID(n.String())
	return nil
}

type File struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;index:idx_files_owner_parent"`
	Name      string    `json:"name" gorm:"not null"`
	Type      Kind      `json:"type" gorm:"type:varchar(16);not null"`
	ParentID  ParentID  `json:"parentId" gorm:"type:varchar(64);not null;default:'0';index:idx_files_owner_parent"`
	IsPublic  bool      `json:"isPublic" gorm:"not null;default:false"`
	LocalPath string    `json:"-"` // empty for folders
	CreatedAt time.Time `json:"-" gorm:"autoCreateTime"`
}

// BeforeCreate assigns a time-ordered id so that id order follows creation order.
func (f *File) BeforeCreate(_ *gorm.DB) error {
	if f.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		f.ID = id
	}
	if f.ParentID == "" {
		f.ParentID = RootID
	}
	return nil
}

// NewFolder builds a folder record. Folders never carry a LocalPath.
func NewFolder(owner uuid.UUID, name string, parent ParentID, public bool) File {
	return File{UserID: owner, Name: name, Type: KindFolder, ParentID: parent, IsPublic: public}
}

// NewBlobFile builds a file or image record pointing at persisted bytes.
func NewBlobFile(owner uuid.UUID, name string, kind Kind, parent ParentID, public bool, localPath string) File {
	return File{UserID: owner, Name: name, Type: kind, ParentID: parent, IsPublic: public, LocalPath: localPath}
}
