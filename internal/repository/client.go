package repository

import (
	"context"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// ClientRepository defines interface for firm client operations
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*models.Client, int64, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*models.Client, int64, error) {
	apply := func(db *gorm.DB) *gorm.DB {
		if activeOnly {
			db = db.Where("is_active = ?", true)
		}
		return db
	}

	var total int64
	if err := apply(r.db.WithContext(ctx).Model(&models.Client{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []*models.Client
	listQ := apply(r.db.WithContext(ctx)).Order("name ASC")
	if limit > 0 {
		listQ = listQ.Limit(limit)
	}
	if offset > 0 {
		listQ = listQ.Offset(offset)
	}
	if err := listQ.Find(&clients).Error; err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}
