package service

import (
	"context"
	"errors"
	"time"

	"kapm/internal/models"
	"kapm/internal/observability"
	"kapm/internal/policy"
	"kapm/internal/repository"
	"kapm/internal/validation"

	"gorm.io/gorm"
)

// PostService handles blog post business logic.
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts repository.PostRepository, categories repository.CategoryRepository, tags repository.TagRepository) *PostService {
	return &PostService{posts: posts, categories: categories, tags: tags}
}

// notFoundOr maps a gorm record-not-found to the API error envelope and
// wraps everything else as internal.
func notFoundOr(err error, resource string, id interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return models.NewInternalError(err)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// CreatePostInput carries the fields needed to create a blog post.
type CreatePostInput struct {
	Actor            policy.Actor
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	Excerpt          string            `json:"excerpt"`
	Content          string            `json:"content"`
	FeaturedImageURL string            `json:"featured_image_url"`
	Status           models.PostStatus `json:"status"`
	CategoryID       *uint             `json:"category_id"`
	TagIDs           []uint            `json:"tag_ids"`
	IsFeatured       bool              `json:"is_featured"`
	AllowComments    *bool             `json:"allow_comments"`
	MetaTitle        string            `json:"meta_title"`
	MetaDescription  string            `json:"meta_description"`
	MetaKeywords     string            `json:"meta_keywords"`
}

// CreatePost creates a blog post owned by the actor. A blank slug is
// derived from the title; blank SEO fields are derived from the title and
// excerpt. Creating directly in the published status stamps PublishedAt.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.BlogPost, error) {
	if !input.Actor.Staff() && !input.Actor.IsSuperuser {
		return nil, models.NewForbiddenError("Viewers cannot create posts")
	}
	if input.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if input.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	status := input.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if !status.Valid() {
		return nil, models.NewValidationError("Invalid post status")
	}

	slug := input.Slug
	if slug == "" {
		slug = validation.Slugify(input.Title)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	taken, err := s.posts.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if taken {
		return nil, models.NewValidationError("Slug is already in use")
	}

	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, notFoundOr(err, "Category", *input.CategoryID)
		}
	}
	tags, err := s.resolveTags(ctx, input.TagIDs)
	if err != nil {
		return nil, err
	}

	metaTitle := input.MetaTitle
	if metaTitle == "" {
		metaTitle = truncate(input.Title, 60)
	}
	metaDescription := input.MetaDescription
	if metaDescription == "" {
		metaDescription = truncate(input.Excerpt, 160)
	}

	allowComments := true
	if input.AllowComments != nil {
		allowComments = *input.AllowComments
	}

	authorID := input.Actor.ID
	post := &models.BlogPost{
		Title:            input.Title,
		Slug:             slug,
		Excerpt:          input.Excerpt,
		Content:          input.Content,
		FeaturedImageURL: input.FeaturedImageURL,
		Status:           status,
		AuthorID:         &authorID,
		CategoryID:       input.CategoryID,
		Tags:             tags,
		IsFeatured:       input.IsFeatured,
		AllowComments:    allowComments,
		MetaTitle:        metaTitle,
		MetaDescription:  metaDescription,
		MetaKeywords:     input.MetaKeywords,
	}
	if status == models.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	if status == models.PostStatusPublished {
		observability.PostsPublished.Inc()
	}
	return post, nil
}

// UpdatePostInput carries partial updates; nil fields are left unchanged.
type UpdatePostInput struct {
	Actor            policy.Actor
	PostID           uint
	Title            *string            `json:"title"`
	Slug             *string            `json:"slug"`
	Excerpt          *string            `json:"excerpt"`
	Content          *string            `json:"content"`
	FeaturedImageURL *string            `json:"featured_image_url"`
	Status           *models.PostStatus `json:"status"`
	CategoryID       *uint              `json:"category_id"`
	TagIDs           []uint             `json:"tag_ids"`
	IsFeatured       *bool              `json:"is_featured"`
	AllowComments    *bool              `json:"allow_comments"`
	MetaTitle        *string            `json:"meta_title"`
	MetaDescription  *string            `json:"meta_description"`
	MetaKeywords     *string            `json:"meta_keywords"`
	PublishedAt      *time.Time         `json:"published_at"`
}

// UpdatePost applies partial updates. Authors may only edit their own
// posts; admins and editors may edit any. The first transition into the
// published status stamps PublishedAt; later transitions never move it,
// so unpublish and republish keeps the original publication date.
func (s *PostService) UpdatePost(ctx context.Context, input UpdatePostInput) (*models.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, notFoundOr(err, "Post", input.PostID)
	}
	if !policy.CanManage(input.Actor, post, models.RoleAdmin, models.RoleEditor) {
		return nil, models.NewForbiddenError("You cannot edit this post")
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		post.Title = *input.Title
	}
	if input.Slug != nil && *input.Slug != post.Slug {
		if err := validation.ValidateSlug(*input.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		taken, err := s.posts.SlugExists(ctx, *input.Slug, post.ID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if taken {
			return nil, models.NewValidationError("Slug is already in use")
		}
		post.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		if *input.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		post.Content = *input.Content
	}
	if input.FeaturedImageURL != nil {
		post.FeaturedImageURL = *input.FeaturedImageURL
	}
	if input.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, notFoundOr(err, "Category", *input.CategoryID)
		}
		post.CategoryID = input.CategoryID
	}
	if input.IsFeatured != nil {
		post.IsFeatured = *input.IsFeatured
	}
	if input.AllowComments != nil {
		post.AllowComments = *input.AllowComments
	}
	if input.MetaTitle != nil {
		post.MetaTitle = truncate(*input.MetaTitle, 60)
	}
	if input.MetaDescription != nil {
		post.MetaDescription = truncate(*input.MetaDescription, 160)
	}
	if input.MetaKeywords != nil {
		post.MetaKeywords = *input.MetaKeywords
	}
	if input.PublishedAt != nil {
		post.PublishedAt = input.PublishedAt
	}

	published := false
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, models.NewValidationError("Invalid post status")
		}
		if *input.Status == models.PostStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
			published = true
		}
		post.Status = *input.Status
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	if input.TagIDs != nil {
		tags, err := s.resolveTags(ctx, input.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.posts.ReplaceTags(ctx, post, tags); err != nil {
			return nil, models.NewInternalError(err)
		}
	}
	if published {
		observability.PostsPublished.Inc()
	}
	return s.posts.GetByID(ctx, post.ID)
}

// DeletePost removes a post. Same ownership rule as UpdatePost.
func (s *PostService) DeletePost(ctx context.Context, actor policy.Actor, postID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return notFoundOr(err, "Post", postID)
	}
	if !policy.CanManage(actor, post, models.RoleAdmin, models.RoleEditor) {
		return models.NewForbiddenError("You cannot delete this post")
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetPost returns a post by ID for the admin surface.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post", id)
	}
	return post, nil
}

// GetPublishedBySlug returns a publicly visible post and counts the view.
// Drafts, archived posts, and future-dated publications read as absent so
// the public surface cannot distinguish hidden from nonexistent.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "Post", slug)
	}
	if !post.IsPublished() {
		return nil, models.NewNotFoundError("Post", slug)
	}
	// View counting is best-effort; a failed increment never hides the post.
	if err := s.posts.IncrementViews(ctx, post.ID); err == nil {
		post.ViewsCount++
	}
	observability.PostViews.Inc()
	return post, nil
}

// GetPublishedByID returns a publicly visible post by ID and counts the
// view. Same visibility rules as GetPublishedBySlug.
func (s *PostService) GetPublishedByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Post", id)
	}
	if !post.IsPublished() {
		return nil, models.NewNotFoundError("Post", id)
	}
	if err := s.posts.IncrementViews(ctx, post.ID); err == nil {
		post.ViewsCount++
	}
	observability.PostViews.Inc()
	return post, nil
}

// ListPublishedInput narrows the public post listing.
type ListPublishedInput struct {
	CategorySlug string
	TagSlug      string
	Featured     *bool
	Search       string
	Ordering     string
	Limit        int
	Offset       int
}

// ListPublished returns the public post listing.
func (s *PostService) ListPublished(ctx context.Context, input ListPublishedInput) ([]*models.BlogPost, int64, error) {
	limit := input.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	posts, total, err := s.posts.List(ctx, repository.PostFilter{
		PublishedOnly: true,
		CategorySlug:  input.CategorySlug,
		TagSlug:       input.TagSlug,
		Featured:      input.Featured,
		Search:        input.Search,
		Ordering:      input.Ordering,
		Limit:         limit,
		Offset:        input.Offset,
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

// ListPostsInput narrows the admin post listing.
type ListPostsInput struct {
	Actor  policy.Actor
	Status models.PostStatus
	Search string
	Limit  int
	Offset int
}

// ListPosts returns the admin post listing. Authors only see their own
// posts; admins and editors see everything.
func (s *PostService) ListPosts(ctx context.Context, input ListPostsInput) ([]*models.BlogPost, int64, error) {
	if !input.Actor.Staff() && !input.Actor.IsSuperuser {
		return nil, 0, models.NewForbiddenError("Viewers cannot list posts")
	}
	if input.Status != "" && !input.Status.Valid() {
		return nil, 0, models.NewValidationError("Invalid post status")
	}

	filter := repository.PostFilter{
		Status: input.Status,
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if !policy.SeesAllPosts(input.Actor) {
		filter.AuthorID = input.Actor.ID
	}

	posts, total, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return posts, total, nil
}

func (s *PostService) resolveTags(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	tags, err := s.tags.GetByIDs(ctx, ids)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(tags) != len(ids) {
		return nil, models.NewValidationError("One or more tags do not exist")
	}
	return tags, nil
}
