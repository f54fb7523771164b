package server

import (
	"os"
	"path/filepath"
	"strings"

	"kapm/internal/middleware"
	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadMedia handles POST /api/admin/media. The file arrives as
// multipart form data under the "file" field; descriptive metadata
// rides along as form values.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	ctx := c.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A file is required"))
	}

	uploadDir := s.config.MediaUploadDir
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}

	// Stored under a random name so uploads cannot collide or traverse
	// outside the upload directory.
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	storedName := uuid.NewString() + ext
	storedPath := filepath.Join(uploadDir, storedName)

	if err := c.SaveFile(fileHeader, storedPath); err != nil {
		return models.RespondError(c, models.NewInternalError(err))
	}

	file, err := s.mediaService.SaveUpload(ctx, service.SaveUploadInput{
		Actor:       actor(c),
		FileName:    filepath.Base(fileHeader.Filename),
		FileSize:    fileHeader.Size,
		URL:         "/uploads/" + storedName,
		Title:       c.FormValue("title"),
		AltText:     c.FormValue("alt_text"),
		Description: c.FormValue("description"),
	})
	if err != nil {
		// The metadata was rejected, so the stored bytes are orphaned.
		if rmErr := os.Remove(storedPath); rmErr != nil {
			middleware.Logger.WarnContext(ctx, "failed to remove rejected upload",
				"path", storedPath, "error", rmErr)
		}
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(file)
}

// ListMedia handles GET /api/admin/media
func (s *Server) ListMedia(c *fiber.Ctx) error {
	page := parsePagination(c, 24)

	files, total, err := s.mediaService.ListMedia(c.Context(), service.ListMediaInput{
		Actor:    actor(c),
		FileType: models.FileType(c.Query("file_type")),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"items":  files,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// GetMedia handles GET /api/admin/media/:id
func (s *Server) GetMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	file, err := s.mediaService.GetMedia(c.Context(), id)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(file)
}

// UpdateMedia handles PUT /api/admin/media/:id
func (s *Server) UpdateMedia(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.UpdateMediaInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	req.Actor = actor(c)
	req.MediaID = id

	file, err := s.mediaService.UpdateMedia(c.Context(), req)
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(file)
}

// DeleteMedia handles DELETE /api/admin/media/:id. The stored bytes are
// unlinked after the record is gone; a missing file on disk is not an
// error.
func (s *Server) DeleteMedia(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	file, err := s.mediaService.DeleteMedia(ctx, actor(c), id)
	if err != nil {
		return models.RespondError(c, err)
	}

	if name, ok := strings.CutPrefix(file.URL, "/uploads/"); ok {
		uploadDir := s.config.MediaUploadDir
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		path := filepath.Join(uploadDir, filepath.Base(name))
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			middleware.Logger.WarnContext(ctx, "failed to unlink deleted media",
				"path", path, "error", rmErr)
		}
	}

	return c.JSON(fiber.Map{"message": "Media file deleted"})
}
