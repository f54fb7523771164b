package service

import (
	"context"

	"kapm/internal/models"
	"kapm/internal/policy"
	"kapm/internal/repository"
	"kapm/internal/validation"
)

// TaxonomyService handles categories and tags.
type TaxonomyService struct {
	categories repository.CategoryRepository
	tags       repository.TagRepository
}

// NewTaxonomyService creates a new TaxonomyService.
func NewTaxonomyService(categories repository.CategoryRepository, tags repository.TagRepository) *TaxonomyService {
	return &TaxonomyService{categories: categories, tags: tags}
}

// CategoryInput carries category create/update fields.
type CategoryInput struct {
	Actor       policy.Actor
	CategoryID  uint
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id"`
	IsActive    *bool  `json:"is_active"`
}

// CreateCategory creates a category. Admin only.
func (s *TaxonomyService) CreateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if !policy.CanManageCategories(input.Actor) {
		return nil, models.NewForbiddenError("Only administrators can manage categories")
	}
	if input.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}

	slug := input.Slug
	if slug == "" {
		slug = validation.Slugify(input.Name)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	taken, err := s.categories.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if taken {
		return nil, models.NewValidationError("Slug is already in use")
	}

	if input.ParentID != nil {
		if _, err := s.categories.GetByID(ctx, *input.ParentID); err != nil {
			return nil, notFoundOr(err, "Category", *input.ParentID)
		}
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	category := &models.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		ParentID:    input.ParentID,
		IsActive:    active,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, models.NewInternalError(err)
	}
	return category, nil
}

// UpdateCategory updates a category. Admin only; the slug stays unless
// explicitly changed.
func (s *TaxonomyService) UpdateCategory(ctx context.Context, input CategoryInput) (*models.Category, error) {
	if !policy.CanManageCategories(input.Actor) {
		return nil, models.NewForbiddenError("Only administrators can manage categories")
	}
	category, err := s.categories.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, notFoundOr(err, "Category", input.CategoryID)
	}

	if input.Name != "" {
		category.Name = input.Name
	}
	if input.Slug != "" && input.Slug != category.Slug {
		if err := validation.ValidateSlug(input.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		taken, err := s.categories.SlugExists(ctx, input.Slug, category.ID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if taken {
			return nil, models.NewValidationError("Slug is already in use")
		}
		category.Slug = input.Slug
	}
	if input.Description != "" {
		category.Description = input.Description
	}
	if input.ParentID != nil {
		if *input.ParentID == category.ID {
			return nil, models.NewValidationError("Category cannot be its own parent")
		}
		if _, err := s.categories.GetByID(ctx, *input.ParentID); err != nil {
			return nil, notFoundOr(err, "Category", *input.ParentID)
		}
		category.ParentID = input.ParentID
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := s.categories.Update(ctx, category); err != nil {
		return nil, models.NewInternalError(err)
	}
	return category, nil
}

// DeleteCategory removes an empty category. Categories still holding
// posts are protected so deletions never orphan content silently.
func (s *TaxonomyService) DeleteCategory(ctx context.Context, actor policy.Actor, id uint) error {
	if !policy.CanManageCategories(actor) {
		return models.NewForbiddenError("Only administrators can manage categories")
	}
	if _, err := s.categories.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Category", id)
	}
	count, err := s.categories.CountPosts(ctx, id)
	if err != nil {
		return models.NewInternalError(err)
	}
	if count > 0 {
		return models.NewValidationError("Category still has posts assigned")
	}
	if err := s.categories.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListCategories returns categories, optionally only active ones.
func (s *TaxonomyService) ListCategories(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	categories, err := s.categories.List(ctx, activeOnly)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}

// GetCategoryBySlug returns a category with its children.
func (s *TaxonomyService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "Category", slug)
	}
	return category, nil
}

// TagInput carries tag create/update fields.
type TagInput struct {
	Actor policy.Actor
	TagID uint
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}

// CreateTag creates a tag. Any staff member may create tags since they
// are attached while writing posts.
func (s *TaxonomyService) CreateTag(ctx context.Context, input TagInput) (*models.Tag, error) {
	if !input.Actor.Staff() && !input.Actor.IsSuperuser {
		return nil, models.NewForbiddenError("Viewers cannot create tags")
	}
	if input.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(input.Name) > 50 {
		return nil, models.NewValidationError("Name must not exceed 50 characters")
	}

	slug := input.Slug
	if slug == "" {
		slug = validation.Slugify(input.Name)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	tag := &models.Tag{Name: input.Name, Slug: slug}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, models.NewInternalError(err)
	}
	return tag, nil
}

// UpdateTag renames a tag. Admin only.
func (s *TaxonomyService) UpdateTag(ctx context.Context, input TagInput) (*models.Tag, error) {
	if !policy.CanManageCategories(input.Actor) {
		return nil, models.NewForbiddenError("Only administrators can update tags")
	}
	tag, err := s.tags.GetByID(ctx, input.TagID)
	if err != nil {
		return nil, notFoundOr(err, "Tag", input.TagID)
	}

	if input.Name != "" {
		if len(input.Name) > 50 {
			return nil, models.NewValidationError("Name must not exceed 50 characters")
		}
		tag.Name = input.Name
	}
	if input.Slug != "" {
		if err := validation.ValidateSlug(input.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		tag.Slug = input.Slug
	}

	if err := s.tags.Update(ctx, tag); err != nil {
		return nil, models.NewInternalError(err)
	}
	return tag, nil
}

// DeleteTag removes a tag. Admin only.
func (s *TaxonomyService) DeleteTag(ctx context.Context, actor policy.Actor, id uint) error {
	if !policy.CanManageCategories(actor) {
		return models.NewForbiddenError("Only administrators can delete tags")
	}
	if _, err := s.tags.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Tag", id)
	}
	if err := s.tags.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListTags returns all tags.
func (s *TaxonomyService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
