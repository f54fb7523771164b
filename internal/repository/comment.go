package repository

import (
	"context"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// CommentFilter narrows admin comment listings.
type CommentFilter struct {
	PostID   uint
	Approved *bool
	Limit    int
	Offset   int
}

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListApprovedTopLevel(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error)
	List(ctx context.Context, filter CommentFilter) ([]*models.Comment, int64, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
	CountApproved(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("Author").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListApprovedTopLevel returns the public comment thread roots for a post.
// Replies are excluded and fetched through ListReplies.
func (r *commentRepository) ListApprovedTopLevel(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_approved = ?", true).Order("created_at ASC")
		}).
		Where("post_id = ? AND parent_id IS NULL AND is_approved = ?", postID, true).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("parent_id = ? AND is_approved = ?", parentID, true).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) List(ctx context.Context, filter CommentFilter) ([]*models.Comment, int64, error) {
	apply := func(db *gorm.DB) *gorm.DB {
		if filter.PostID != 0 {
			db = db.Where("post_id = ?", filter.PostID)
		}
		if filter.Approved != nil {
			db = db.Where("is_approved = ?", *filter.Approved)
		}
		return db
	}

	var total int64
	if err := apply(r.db.WithContext(ctx).Model(&models.Comment{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*models.Comment
	listQ := apply(r.db.WithContext(ctx)).Preload("Author").Order("created_at DESC")
	if filter.Limit > 0 {
		listQ = listQ.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		listQ = listQ.Offset(filter.Offset)
	}
	if err := listQ.Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("is_approved = ?", false).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) CountApproved(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("is_approved = ?", true).
		Count(&count).Error
	return count, err
}

func (r *commentRepository) Recent(ctx context.Context, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
