package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPublishedPages handles GET /api/public/pages
func (s *Server) ListPublishedPages(c *fiber.Ctx) error {
	pages, err := s.pageService.ListPublished(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(pages)
}

// GetMenu handles GET /api/public/pages/menu
func (s *Server) GetMenu(c *fiber.Ctx) error {
	menu, err := s.pageService.Menu(c.Context())
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(menu)
}

// GetPublishedPage handles GET /api/public/pages/:slug
func (s *Server) GetPublishedPage(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Slug is required"))
	}

	page, err := s.pageService.GetPublishedBySlug(c.Context(), slug)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(page)
}

// ListPages handles GET /api/admin/pages
func (s *Server) ListPages(c *fiber.Ctx) error {
	pages, err := s.pageService.ListPages(c.Context(), actor(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(pages)
}

// CreatePage handles POST /api/admin/pages
func (s *Server) CreatePage(c *fiber.Ctx) error {
	var req service.CreatePageInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	page, err := s.pageService.CreatePage(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(page)
}

// GetPage handles GET /api/admin/pages/:id
func (s *Server) GetPage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page, err := s.pageService.GetPage(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(page)
}

// UpdatePage handles PUT /api/admin/pages/:id
func (s *Server) UpdatePage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdatePageInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.PageID = id

	page, err := s.pageService.UpdatePage(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(page)
}

// DeletePage handles DELETE /api/admin/pages/:id
func (s *Server) DeletePage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.pageService.DeletePage(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Page deleted"})
}
