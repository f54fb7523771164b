package repository

import (
	"context"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// PageRepository defines interface for static page operations
type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetByID(ctx context.Context, id uint) (*models.Page, error)
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.Page, error)
	ListMenu(ctx context.Context) ([]*models.Page, error)
	Update(ctx context.Context, page *models.Page) error
	Delete(ctx context.Context, id uint) error
}

type pageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new PageRepository
func NewPageRepository(db *gorm.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *pageRepository) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	var page models.Page
	if err := r.db.WithContext(ctx).First(&page, id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Page{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pageRepository) List(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	var pages []*models.Page
	q := r.db.WithContext(ctx).Order("menu_order ASC, title ASC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	err := q.Find(&pages).Error
	return pages, err
}

// ListMenu returns published pages flagged for the navigation menu.
func (r *pageRepository) ListMenu(ctx context.Context) ([]*models.Page, error) {
	var pages []*models.Page
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND show_in_menu = ?", true, true).
		Order("menu_order ASC").
		Find(&pages).Error
	return pages, err
}

func (r *pageRepository) Update(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *pageRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Page{}, id).Error
}
