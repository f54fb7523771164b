package repository

import (
	"context"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// MediaRepository defines interface for media file metadata operations
type MediaRepository interface {
	Create(ctx context.Context, file *models.MediaFile) error
	GetByID(ctx context.Context, id uint) (*models.MediaFile, error)
	List(ctx context.Context, fileType models.FileType, limit, offset int) ([]*models.MediaFile, int64, error)
	Update(ctx context.Context, file *models.MediaFile) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository creates a new MediaRepository
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, file *models.MediaFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*models.MediaFile, error) {
	var file models.MediaFile
	if err := r.db.WithContext(ctx).Preload("UploadedBy").First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *mediaRepository) List(ctx context.Context, fileType models.FileType, limit, offset int) ([]*models.MediaFile, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if fileType != "" {
			db = db.Where("file_type = ?", fileType)
		}
		return db
	}

	var total int64
	if err := filter(r.db.WithContext(ctx).Model(&models.MediaFile{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var files []*models.MediaFile
	listQ := filter(r.db.WithContext(ctx)).Preload("UploadedBy").Order("created_at DESC")
	if limit > 0 {
		listQ = listQ.Limit(limit)
	}
	if offset > 0 {
		listQ = listQ.Offset(offset)
	}
	if err := listQ.Find(&files).Error; err != nil {
		return nil, 0, err
	}
	return files, total, nil
}

func (r *mediaRepository) Update(ctx context.Context, file *models.MediaFile) error {
	return r.db.WithContext(ctx).Save(file).Error
}

func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.MediaFile{}, id).Error
}

func (r *mediaRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MediaFile{}).Count(&count).Error
	return count, err
}
