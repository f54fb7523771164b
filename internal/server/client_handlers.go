package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListClients handles GET /api/cases/clients
func (s *Server) ListClients(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	clients, total, err := s.clientService.ListClients(
		c.Context(), actor(c), c.QueryBool("active_only"), page.Limit, page.Offset)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  clients,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// CreateClient handles POST /api/cases/clients
func (s *Server) CreateClient(c *fiber.Ctx) error {
	var req service.ClientInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	client, err := s.clientService.CreateClient(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// GetClient handles GET /api/cases/clients/:id
func (s *Server) GetClient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	client, err := s.clientService.GetClient(c.Context(), actor(c), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(client)
}

// UpdateClient handles PUT /api/cases/clients/:id
func (s *Server) UpdateClient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.ClientInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.ClientID = id

	client, err := s.clientService.UpdateClient(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(client)
}

// DeactivateClient handles POST /api/cases/clients/:id/deactivate
func (s *Server) DeactivateClient(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	client, err := s.clientService.DeactivateClient(c.Context(), actor(c), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(client)
}
