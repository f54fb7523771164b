package server

import (
	"kapm/internal/models"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats handles GET /api/admin/dashboard/stats
func (s *Server) DashboardStats(c *fiber.Ctx) error {
	stats, err := s.dashboardService.Stats(c.Context(), actor(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(stats)
}

// DashboardRecentPosts handles GET /api/admin/dashboard/recent-posts
func (s *Server) DashboardRecentPosts(c *fiber.Ctx) error {
	posts, err := s.dashboardService.RecentPosts(c.Context(), actor(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(posts)
}

// DashboardRecentComments handles GET /api/admin/dashboard/recent-comments
func (s *Server) DashboardRecentComments(c *fiber.Ctx) error {
	comments, err := s.dashboardService.RecentComments(c.Context(), actor(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(comments)
}
