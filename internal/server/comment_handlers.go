package server

import (
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPostComments handles GET /api/public/comments?post_id=N
func (s *Server) ListPostComments(c *fiber.Ctx) error {
	postID := c.QueryInt("post_id")
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id is required"))
	}

	comments, err := s.commentService.ListForPost(c.Context(), uint(postID))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(comments)
}

// ListCommentReplies handles GET /api/public/comments/:id/replies
func (s *Server) ListCommentReplies(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.commentService.ListReplies(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(replies)
}

// CreateComment handles POST /api/public/comments. Anonymous visitors
// must supply a name and email; a valid bearer token attributes the
// comment to the account instead.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req service.CreateCommentInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if userID, ok := s.optionalUserID(c); ok {
		req.AuthorID = &userID
	}

	comment, err := s.commentService.CreateComment(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments handles GET /api/admin/comments
func (s *Server) ListComments(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	input := service.ListCommentsInput{
		Actor:  actor(c),
		PostID: uint(c.QueryInt("post_id")),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if c.Query("approved") != "" {
		approved := c.QueryBool("approved")
		input.Approved = &approved
	}

	comments, total, err := s.commentService.ListComments(c.Context(), input)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  comments,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// ApproveComment handles POST /api/admin/comments/:id/approve
func (s *Server) ApproveComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.ApproveComment(c.Context(), actor(c), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(comment)
}

// RejectComment handles POST /api/admin/comments/:id/reject
func (s *Server) RejectComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.RejectComment(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment rejected"})
}

// DeleteComment handles DELETE /api/admin/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), actor(c), id); err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
