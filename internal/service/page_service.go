package service

import (
	"context"

	"kapm/internal/models"
	"kapm/internal/policy"
	"kapm/internal/repository"
	"kapm/internal/validation"
)

// PageService handles static site pages.
type PageService struct {
	pages repository.PageRepository
}

// NewPageService creates a new PageService.
func NewPageService(pages repository.PageRepository) *PageService {
	return &PageService{pages: pages}
}

// CreatePageInput carries the fields needed to create a page.
type CreatePageInput struct {
	Actor           policy.Actor
	Title           string              `json:"title"`
	Slug            string              `json:"slug"`
	Content         string              `json:"content"`
	Template        models.PageTemplate `json:"template"`
	IsPublished     bool                `json:"is_published"`
	ShowInMenu      bool                `json:"show_in_menu"`
	MenuOrder       int                 `json:"menu_order"`
	MetaTitle       string              `json:"meta_title"`
	MetaDescription string              `json:"meta_description"`
	MetaKeywords    string              `json:"meta_keywords"`
}

// CreatePage creates a static page. Admins and editors only.
func (s *PageService) CreatePage(ctx context.Context, input CreatePageInput) (*models.Page, error) {
	if !policy.CanManagePages(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage pages")
	}
	if input.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if input.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	template := input.Template
	if template == "" {
		template = models.PageTemplateDefault
	}
	if !template.Valid() {
		return nil, models.NewValidationError("Invalid page template")
	}

	slug := input.Slug
	if slug == "" {
		slug = validation.Slugify(input.Title)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	taken, err := s.pages.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if taken {
		return nil, models.NewValidationError("Slug is already in use")
	}

	metaTitle := input.MetaTitle
	if metaTitle == "" {
		metaTitle = truncate(input.Title, 60)
	}

	page := &models.Page{
		Title:           input.Title,
		Slug:            slug,
		Content:         input.Content,
		Template:        template,
		IsPublished:     input.IsPublished,
		ShowInMenu:      input.ShowInMenu,
		MenuOrder:       input.MenuOrder,
		MetaTitle:       metaTitle,
		MetaDescription: truncate(input.MetaDescription, 160),
		MetaKeywords:    input.MetaKeywords,
	}
	if err := s.pages.Create(ctx, page); err != nil {
		return nil, models.NewInternalError(err)
	}
	return page, nil
}

// UpdatePageInput carries partial updates; nil fields are left unchanged.
type UpdatePageInput struct {
	Actor           policy.Actor
	PageID          uint
	Title           *string              `json:"title"`
	Slug            *string              `json:"slug"`
	Content         *string              `json:"content"`
	Template        *models.PageTemplate `json:"template"`
	IsPublished     *bool                `json:"is_published"`
	ShowInMenu      *bool                `json:"show_in_menu"`
	MenuOrder       *int                 `json:"menu_order"`
	MetaTitle       *string              `json:"meta_title"`
	MetaDescription *string              `json:"meta_description"`
	MetaKeywords    *string              `json:"meta_keywords"`
}

// UpdatePage applies partial updates. Unlike posts, the publish flag is
// freely reversible and carries no timestamp.
func (s *PageService) UpdatePage(ctx context.Context, input UpdatePageInput) (*models.Page, error) {
	if !policy.CanManagePages(input.Actor) {
		return nil, models.NewForbiddenError("You cannot manage pages")
	}
	page, err := s.pages.GetByID(ctx, input.PageID)
	if err != nil {
		return nil, notFoundOr(err, "Page", input.PageID)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		page.Title = *input.Title
	}
	if input.Slug != nil && *input.Slug != page.Slug {
		if err := validation.ValidateSlug(*input.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		taken, err := s.pages.SlugExists(ctx, *input.Slug, page.ID)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		if taken {
			return nil, models.NewValidationError("Slug is already in use")
		}
		page.Slug = *input.Slug
	}
	if input.Content != nil {
		if *input.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		page.Content = *input.Content
	}
	if input.Template != nil {
		if !input.Template.Valid() {
			return nil, models.NewValidationError("Invalid page template")
		}
		page.Template = *input.Template
	}
	if input.IsPublished != nil {
		page.IsPublished = *input.IsPublished
	}
	if input.ShowInMenu != nil {
		page.ShowInMenu = *input.ShowInMenu
	}
	if input.MenuOrder != nil {
		page.MenuOrder = *input.MenuOrder
	}
	if input.MetaTitle != nil {
		page.MetaTitle = truncate(*input.MetaTitle, 60)
	}
	if input.MetaDescription != nil {
		page.MetaDescription = truncate(*input.MetaDescription, 160)
	}
	if input.MetaKeywords != nil {
		page.MetaKeywords = *input.MetaKeywords
	}

	if err := s.pages.Update(ctx, page); err != nil {
		return nil, models.NewInternalError(err)
	}
	return page, nil
}

// DeletePage removes a page.
func (s *PageService) DeletePage(ctx context.Context, actor policy.Actor, id uint) error {
	if !policy.CanManagePages(actor) {
		return models.NewForbiddenError("You cannot manage pages")
	}
	if _, err := s.pages.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "Page", id)
	}
	if err := s.pages.Delete(ctx, id); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetPage returns a page by ID for the admin surface.
func (s *PageService) GetPage(ctx context.Context, id uint) (*models.Page, error) {
	page, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Page", id)
	}
	return page, nil
}

// GetPublishedBySlug returns a published page for the public surface.
// Unpublished pages read as absent.
func (s *PageService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, notFoundOr(err, "Page", slug)
	}
	if !page.IsPublished {
		return nil, models.NewNotFoundError("Page", slug)
	}
	return page, nil
}

// ListPages returns pages for the admin surface.
func (s *PageService) ListPages(ctx context.Context, actor policy.Actor) ([]*models.Page, error) {
	if !policy.CanManagePages(actor) {
		return nil, models.NewForbiddenError("You cannot manage pages")
	}
	pages, err := s.pages.List(ctx, false)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pages, nil
}

// ListPublished returns all published pages for the public surface,
// whether or not they appear in the navigation menu.
func (s *PageService) ListPublished(ctx context.Context) ([]*models.Page, error) {
	pages, err := s.pages.List(ctx, true)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pages, nil
}

// Menu returns published pages flagged for the navigation menu, in order.
func (s *PageService) Menu(ctx context.Context) ([]*models.Page, error) {
	pages, err := s.pages.ListMenu(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pages, nil
}
