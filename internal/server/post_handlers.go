package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPublishedPosts handles GET /api/public/blog
func (s *Server) ListPublishedPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)

	input := service.ListPublishedInput{
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Search:       c.Query("search"),
		Ordering:     c.Query("ordering"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
	if c.Query("featured") != "" {
		featured := c.QueryBool("featured")
		input.Featured = &featured
	}

	posts, total, err := s.postService.ListPublished(ctx, input)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  posts,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// GetPublishedPost handles GET /api/public/blog/slug/:slug
func (s *Server) GetPublishedPost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Slug is required"))
	}

	post, err := s.postService.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(post)
}

// GetPublishedPostByID handles GET /api/public/blog/:id
func (s *Server) GetPublishedPostByID(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPublishedByID(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(post)
}

// ListPosts handles GET /api/admin/blog
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 20)

	posts, total, err := s.postService.ListPosts(ctx, service.ListPostsInput{
		Actor:  actor(c),
		Status: models.PostStatus(c.Query("status")),
		Search: c.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  posts,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// CreatePost handles POST /api/admin/blog
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req service.CreatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	post, err := s.postService.CreatePost(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /api/admin/blog/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/admin/blog/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdatePostInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.PostID = id

	post, err := s.postService.UpdatePost(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/admin/blog/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// PublishPost handles POST /api/admin/blog/:id/publish
func (s *Server) PublishPost(c *fiber.Ctx) error {
	return s.setPostStatus(c, models.PostStatusPublished)
}

// UnpublishPost handles POST /api/admin/blog/:id/unpublish
func (s *Server) UnpublishPost(c *fiber.Ctx) error {
	return s.setPostStatus(c, models.PostStatusDraft)
}

func (s *Server) setPostStatus(c *fiber.Ctx, status models.PostStatus) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		Actor:  actor(c),
		PostID: id,
		Status: &status,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(post)
}
