package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPublicCategories handles GET /api/public/categories
func (s *Server) ListPublicCategories(c *fiber.Ctx) error {
	categories, err := s.taxonomyService.ListCategories(c.Context(), true)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(categories)
}

// GetCategoryBySlug handles GET /api/public/categories/:slug
func (s *Server) GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Slug is required"))
	}

	category, err := s.taxonomyService.GetCategoryBySlug(c.Context(), slug)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(category)
}

// ListTags handles GET /api/public/tags
func (s *Server) ListTags(c *fiber.Ctx) error {
	tags, err := s.taxonomyService.ListTags(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(tags)
}

// ListCategories handles GET /api/admin/categories
func (s *Server) ListCategories(c *fiber.Ctx) error {
	categories, err := s.taxonomyService.ListCategories(c.Context(), c.QueryBool("active_only"))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(categories)
}

// CreateCategory handles POST /api/admin/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req service.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	category, err := s.taxonomyService.CreateCategory(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory handles PUT /api/admin/categories/:id
func (s *Server) UpdateCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.CategoryInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CategoryID = id

	category, err := s.taxonomyService.UpdateCategory(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id
func (s *Server) DeleteCategory(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.taxonomyService.DeleteCategory(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// CreateTag handles POST /api/admin/tags
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req service.TagInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	tag, err := s.taxonomyService.CreateTag(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

// UpdateTag handles PUT /api/admin/tags/:id
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.TagInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.TagID = id

	tag, err := s.taxonomyService.UpdateTag(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(tag)
}

// DeleteTag handles DELETE /api/admin/tags/:id
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.taxonomyService.DeleteTag(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tag deleted"})
}
