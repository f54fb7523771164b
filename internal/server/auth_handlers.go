package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.Context()

	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(ctx, req)
	if err != nil {
		return models.RespondError(c, err)
	}

	// Log the new account in immediately so the client does not need a
	// second round trip.
	_, tokens, err := s.authService.Login(ctx, service.LoginInput{
		Identifier: req.Username,
		Password:   req.Password,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, tokens, err := s.authService.Login(ctx, req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh handles POST /api/auth/refresh
func (s *Server) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Refresh token is required"))
	}

	user, tokens, err := s.authService.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return models.RespondError(c, err)
	}

	if user == nil {
		return c.JSON(tokens)
	}
	return c.JSON(fiber.Map{
		"user":   user,
		"tokens": tokens,
	})
}

// Logout handles POST /api/auth/logout
func (s *Server) Logout(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Refresh token is required"))
	}

	if err := s.authService.Logout(c.Context(), req.RefreshToken); err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// GetMe handles GET /api/auth/me
func (s *Server) GetMe(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUser(c.Context(), userID)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile handles PUT/PATCH /api/auth/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req service.UpdateProfileInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.UserID = userID

	user, err := s.userService.UpdateProfile(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(user)
}

// ChangePassword handles POST /api/auth/change-password
func (s *Server) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req service.ChangePasswordInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.UserID = userID

	tokens, err := s.authService.ChangePassword(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Password changed",
		"tokens":  tokens,
	})
}
