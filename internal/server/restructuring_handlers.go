package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListRestructuringCases handles GET /api/cases/restructuring
func (s *Server) ListRestructuringCases(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	cases, total, err := s.restructuringService.ListCases(c.Context(), service.ListCasesInput{
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

// CreateRestructuringCase handles POST /api/cases/restructuring
func (s *Server) CreateRestructuringCase(c *fiber.Ctx) error {
	var req service.CreateRestructuringCaseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)

	rc, err := s.restructuringService.CreateCase(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rc)
}

// GetRestructuringCase handles GET /api/cases/restructuring/:id
func (s *Server) GetRestructuringCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	rc, err := s.restructuringService.GetCase(c.Context(), actor(c), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(rc)
}

// UpdateRestructuringCase handles PUT /api/cases/restructuring/:id
func (s *Server) UpdateRestructuringCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateRestructuringCaseInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = id

	rc, err := s.restructuringService.UpdateCase(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(rc)
}

// DeleteRestructuringCase handles DELETE /api/cases/restructuring/:id
func (s *Server) DeleteRestructuringCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.restructuringService.DeleteCase(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Case deleted"})
}

// ListRestructuringCreditors handles GET /api/cases/restructuring/:id/creditors
func (s *Server) ListRestructuringCreditors(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	creditors, err := s.restructuringService.ListCreditors(c.Context(), actor(c), caseID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(creditors)
}

// AddRestructuringCreditor handles POST /api/cases/restructuring/:id/creditors
func (s *Server) AddRestructuringCreditor(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.RestructuringCreditorInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	creditor, err := s.restructuringService.AddCreditor(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creditor)
}

// UpdateRestructuringCreditor handles PUT /api/cases/restructuring/:id/creditors/:creditorId
func (s *Server) UpdateRestructuringCreditor(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	creditorID, err := s.parseID(c, "creditorId")
	if err != nil {
		return nil
	}

	var req service.RestructuringCreditorInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID
	req.CreditorID = creditorID

	creditor, err := s.restructuringService.UpdateCreditor(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(creditor)
}

// DeleteRestructuringCreditor handles DELETE /api/cases/restructuring/:id/creditors/:creditorId
func (s *Server) DeleteRestructuringCreditor(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	creditorID, err := s.parseID(c, "creditorId")
	if err != nil {
		return nil
	}

	if err := s.restructuringService.DeleteCreditor(c.Context(), actor(c), caseID, creditorID); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Creditor removed"})
}

// ListRestructuringEvents handles GET /api/cases/restructuring/:id/events
func (s *Server) ListRestructuringEvents(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	events, err := s.restructuringService.ListEvents(c.Context(), actor(c), caseID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(events)
}

// AddRestructuringEvent handles POST /api/cases/restructuring/:id/events
func (s *Server) AddRestructuringEvent(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.RestructuringEventInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	event, err := s.restructuringService.AddEvent(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// ListProposals handles GET /api/cases/restructuring/:id/proposals
func (s *Server) ListProposals(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	proposals, err := s.restructuringService.ListProposals(c.Context(), actor(c), caseID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(proposals)
}

// AddProposal handles POST /api/cases/restructuring/:id/proposals
func (s *Server) AddProposal(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.ProposalInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	proposal, err := s.restructuringService.AddProposal(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(proposal)
}

// ListPayments handles GET /api/cases/restructuring/:id/payments
func (s *Server) ListPayments(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	payments, err := s.restructuringService.ListPayments(c.Context(), actor(c), caseID)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(payments)
}

// AddPayment handles POST /api/cases/restructuring/:id/payments
func (s *Server) AddPayment(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.PaymentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID

	payment, err := s.restructuringService.AddPayment(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// RecordPayment handles PATCH /api/cases/restructuring/:id/payments/:paymentId/pay
func (s *Server) RecordPayment(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	paymentID, err := s.parseID(c, "paymentId")
	if err != nil {
		return nil
	}

	var req service.RecordPaymentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.CaseID = caseID
	req.PaymentID = paymentID

	payment, err := s.restructuringService.RecordPayment(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(payment)
}

// DeletePayment handles DELETE /api/cases/restructuring/:id/payments/:paymentId
func (s *Server) DeletePayment(c *fiber.Ctx) error {
	caseID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	paymentID, err := s.parseID(c, "paymentId")
	if err != nil {
		return nil
	}

	if err := s.restructuringService.DeletePayment(c.Context(), actor(c), caseID, paymentID); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Payment removed"})
}
