package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListBankruptcyCases handles GET /api/cases/bankruptcy
func (s *Server) ListBankruptcyCases(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	cases, total, err := s.bankruptcyService.ListCases(c.Context(), service.ListCasesInput{
		Actor:    actor(c),
		ClientID: uint(c.QueryInt("client_id")),
		Status:   c.Query("status"),
		LawyerID: uint(c.QueryInt("lawyer_id")),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  cases,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// CreateBankruptcyCase handles POST /api/cases/bankruptcy
func (s *Server) CreateBankruptcyCase(c *fiber.Ctx) error {
	var req service.CreateBankruptcyCaseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	bc, err := s.bankruptcyService.CreateCase(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bc)
}

// GetBankruptcyCase handles GET /api/cases/bankruptcy/:id
func (s *Server) GetBankruptcyCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	bc, err := s.bankruptcyService.GetCase(c.Context(), actor(c), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(bc)
}

// UpdateBankruptcyCase handles PUT /api/cases/bankruptcy/:id
func (s *Server) UpdateBankruptcyCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateBankruptcyCaseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = id

	bc, err := s.bankruptcyService.UpdateCase(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(bc)
}

// DeleteBankruptcyCase handles DELETE /api/cases/bankruptcy/:id
func (s *Server) DeleteBankruptcyCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.bankruptcyService.DeleteCase(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Case deleted"})
}

// ListBankruptcyCreditors handles GET /api/cases/bankruptcy/:id/creditors
func (s *Server) ListBankruptcyCreditors(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	creditors, err := s.bankruptcyService.ListCreditors(c.Context(), actor(c), caseID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(creditors)
}

// AddBankruptcyCreditor handles POST /api/cases/bankruptcy/:id/creditors
func (s *Server) AddBankruptcyCreditor(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.CreditorInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	creditor, err := s.bankruptcyService.AddCreditor(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creditor)
}

// UpdateBankruptcyCreditor handles PUT /api/cases/bankruptcy/:id/creditors/:creditorId
func (s *Server) UpdateBankruptcyCreditor(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	creditorID, err := s.parseID(c, "creditorId")
	if err != nil {
		return nil
	}

	var req service.CreditorInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID
	req.CreditorID = creditorID

	creditor, err := s.bankruptcyService.UpdateCreditor(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(creditor)
}

// DeleteBankruptcyCreditor handles DELETE /api/cases/bankruptcy/:id/creditors/:creditorId
func (s *Server) DeleteBankruptcyCreditor(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	creditorID, err := s.parseID(c, "creditorId")
	if err != nil {
		return nil
	}

	if err := s.bankruptcyService.DeleteCreditor(c.Context(), actor(c), caseID, creditorID); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Creditor removed"})
}

// ListBankruptcyEvents handles GET /api/cases/bankruptcy/:id/events
func (s *Server) ListBankruptcyEvents(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	events, err := s.bankruptcyService.ListEvents(c.Context(), actor(c), caseID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(events)
}

// AddBankruptcyEvent handles POST /api/cases/bankruptcy/:id/events
func (s *Server) AddBankruptcyEvent(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.BankruptcyEventInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	event, err := s.bankruptcyService.AddEvent(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpsertConsumerDetails handles PUT /api/cases/bankruptcy/:id/consumer-details
func (s *Server) UpsertConsumerDetails(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.ConsumerDetailsInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	details, err := s.bankruptcyService.UpsertConsumerDetails(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(details)
}
