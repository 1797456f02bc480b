package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/models"
	"gorm.io/gorm"
)

type GormFileRepository struct {
	db *gorm.DB
}

func NewGormFileRepository(db *gorm.DB) *GormFileRepository {
	return &GormFileRepository{db: db}
}

func (r *GormFileRepository) Create(ctx context.Context, file *models.File) error {
	return translate(r.db.WithContext(ctx).Create(file).Error)
}

func (r *GormFileRepository) GetByID(ctx context.Context, id uuid.UUID) (models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&file).Error
	return file, translate(err)
}

func (r *GormFileRepository) GetByIDAndOwner(ctx context.Context, id, owner uuid.UUID) (models.File, error) {
	return getByIDAndOwner(r.db.WithContext(ctx), id, owner)
}

func (r *GormFileRepository) ListByParent(ctx context.Context, owner uuid.UUID, parent models.ParentID, offset, limit int) ([]models.File, error) {
	files := make([]models.File, 0, limit)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND parent_id = ?", owner, parent).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&files).Error
	return files, err
}

func (r *GormFileRepository) SetPublic(ctx context.Context, id, owner uuid.UUID, public bool) (models.File, error) {
	var file models.File
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getByIDAndOwner(tx, id, owner); err != nil {
			return err
		}
		if err := tx.Model(&models.File{}).
			Where("id = ? AND user_id = ?", id, owner).
			Update("is_public", public).Error; err != nil {
			return err
		}
		var err error
		file, err = getByIDAndOwner(tx, id, owner)
		return err
	})
	return file, translate(err)
}

func (r *GormFileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.File{}).Count(&count).Error
	return count, err
}

func getByIDAndOwner(db *gorm.DB, id, owner uuid.UUID) (models.File, error) {
	var file models.File
	err := db.Where("id = ? AND user_id = ?", id, owner).First(&file).Error
	return file, translate(err)
}
