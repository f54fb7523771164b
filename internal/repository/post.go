package repository

import (
	"context"
	"time"

	"kapm/internal/models"

	"gorm.io/gorm"
)

// PostFilter narrows blog post listings. Zero values mean "no filter".
type PostFilter struct {
	Status       models.PostStatus
	CategorySlug string
	TagSlug      string
	AuthorID     uint
	Featured     *bool
	Search       string
	// PublishedOnly restricts results to posts visible on the public
	// surface: published status with a publication time in the past.
	PublishedOnly bool
	// Ordering is a whitelisted sort key, optionally "-" prefixed for
	// descending. Unknown values fall back to newest-first.
	Ordering string
	Limit    int
	Offset   int
}

// PostRepository defines the interface for blog post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id uint) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, filter PostFilter) ([]*models.BlogPost, int64, error)
	Update(ctx context.Context, post *models.BlogPost) error
	ReplaceTags(ctx context.Context, post *models.BlogPost, tags []models.Tag) error
	Delete(ctx context.Context, id uint) error
	IncrementViews(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.PostStatus) (int64, error)
	SumViews(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*models.BlogPost, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.BlogPost{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter translates a PostFilter into WHERE clauses. Category and tag
// filters join through their slug so public URLs stay ID-free.
func (r *postRepository) applyFilter(db *gorm.DB, filter PostFilter) *gorm.DB {
	if filter.PublishedOnly {
		db = db.Where("blog_posts.status = ? AND blog_posts.published_at IS NOT NULL AND blog_posts.published_at <= ?",
			models.PostStatusPublished, time.Now())
	}
	if filter.Status != "" {
		db = db.Where("blog_posts.status = ?", filter.Status)
	}
	if filter.AuthorID != 0 {
		db = db.Where("blog_posts.author_id = ?", filter.AuthorID)
	}
	if filter.Featured != nil {
		db = db.Where("blog_posts.is_featured = ?", *filter.Featured)
	}
	if filter.CategorySlug != "" {
		db = db.Joins("JOIN categories ON categories.id = blog_posts.category_id").
			Where("categories.slug = ?", filter.CategorySlug)
	}
	if filter.TagSlug != "" {
		db = db.Joins("JOIN blog_post_tags ON blog_post_tags.blog_post_id = blog_posts.id").
			Joins("JOIN tags ON tags.id = blog_post_tags.tag_id").
			Where("tags.slug = ?", filter.TagSlug)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("blog_posts.title ILIKE ? OR blog_posts.content ILIKE ?", like, like)
	}
	return db
}

func (r *postRepository) List(ctx context.Context, filter PostFilter) ([]*models.BlogPost, int64, error) {
	var total int64
	counted := r.applyFilter(r.db.WithContext(ctx).Model(&models.BlogPost{}), filter)
	if err := counted.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.BlogPost
	q := r.applyFilter(r.db.WithContext(ctx).Model(&models.BlogPost{}), filter).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Order(orderClause(filter.Ordering))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if err := q.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// orderClause maps an API ordering key to a SQL ORDER BY expression.
// Only whitelisted columns are accepted so the parameter can never
// inject SQL.
func orderClause(ordering string) string {
	direction := "ASC"
	key := ordering
	if len(key) > 0 && key[0] == '-' {
		direction = "DESC"
		key = key[1:]
	}
	switch key {
	case "published_at", "views_count", "title", "created_at":
		return "blog_posts." + key + " " + direction
	default:
		return "blog_posts.created_at DESC"
	}
}

func (r *postRepository) Update(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) ReplaceTags(ctx context.Context, post *models.BlogPost, tags []models.Tag) error {
	return r.db.WithContext(ctx).Model(post).Association("Tags").Replace(tags)
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BlogPost{}, id).Error
}

// IncrementViews bumps the counter atomically in SQL so concurrent reads
// never lose an increment.
func (r *postRepository) IncrementViews(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Count(&count).Error
	return count, err
}

func (r *postRepository) CountByStatus(ctx context.Context, status models.PostStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *postRepository) SumViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Select("COALESCE(SUM(views_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *postRepository) Recent(ctx context.Context, limit int) ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
