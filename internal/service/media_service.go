package service

import (
	"context"
	"fmt"
	"strings"

	"kapm/internal/models"
	"kapm/internal/observability"
	"kapm/internal/policy"
	"kapm/internal/repository"
)

// MediaService handles media library metadata. The handler layer owns
// the actual file bytes; the service only sees the upload's name, size,
// and stored URL.
type MediaService struct {
	media    repository.MediaRepository
	maxBytes int64
}

// NewMediaService creates a new MediaService. maxBytes caps accepted
// upload sizes.
func NewMediaService(media repository.MediaRepository, maxBytes int64) *MediaService {
	return &MediaService{media: media, maxBytes: maxBytes}
}

// SaveUploadInput carries the metadata of a stored upload.
type SaveUploadInput struct {
	Actor       policy.Actor
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	AltText     string `json:"alt_text"`
	Description string `json:"description"`
}

// SaveUpload records an uploaded file. The file type is derived from the
// extension; client-supplied types are never trusted. A blank title
// defaults to the file name.
func (s *MediaService) SaveUpload(ctx context.Context, input SaveUploadInput) (*models.MediaFile, error) {
	if !input.Actor.Staff() && !input.Actor.IsSuperuser {
		return nil, models.NewForbiddenError("Viewers cannot upload media")
	}
	if input.FileName == "" {
		return nil, models.NewValidationError("File name is required")
	}
	if input.FileSize <= 0 {
		return nil, models.NewValidationError("Empty upload")
	}
	if s.maxBytes > 0 && input.FileSize > s.maxBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File exceeds the %d MB upload limit", s.maxBytes/(1024*1024)))
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = input.FileName
	}

	fileType := models.DetectFileType(input.FileName)
	uploaderID := input.Actor.ID
	file := &models.MediaFile{
		FileName:     input.FileName,
		URL:          input.URL,
		Title:        title,
		AltText:      input.AltText,
		Description:  input.Description,
		FileType:     fileType,
		FileSize:     input.FileSize,
		UploadedByID: &uploaderID,
	}
	if err := s.media.Create(ctx, file); err != nil {
		return nil, models.NewInternalError(err)
	}
	observability.MediaUploads.WithLabelValues(string(fileType)).Inc()
	return file, nil
}

// UpdateMediaInput carries editable metadata; nil fields are unchanged.
// The file itself, its type, and its size are immutable.
type UpdateMediaInput struct {
	Actor       policy.Actor
	MediaID     uint
	Title       *string `json:"title"`
	AltText     *string `json:"alt_text"`
	Description *string `json:"description"`
}

// UpdateMedia edits descriptive metadata. Uploaders may edit their own
// files; admins and editors may edit any.
func (s *MediaService) UpdateMedia(ctx context.Context, input UpdateMediaInput) (*models.MediaFile, error) {
	file, err := s.media.GetByID(ctx, input.MediaID)
	if err != nil {
		return nil, notFoundOr(err, "Media file", input.MediaID)
	}
	if !policy.CanManage(input.Actor, file, models.RoleAdmin, models.RoleEditor) {
		return nil, models.NewForbiddenError("You cannot edit this file")
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		file.Title = *input.Title
	}
	if input.AltText != nil {
		file.AltText = *input.AltText
	}
	if input.Description != nil {
		file.Description = *input.Description
	}

	if err := s.media.Update(ctx, file); err != nil {
		return nil, models.NewInternalError(err)
	}
	return file, nil
}

// DeleteMedia removes a file record and reports its URL so the handler
// can unlink the stored file afterwards.
func (s *MediaService) DeleteMedia(ctx context.Context, actor policy.Actor, mediaID uint) (*models.MediaFile, error) {
	file, err := s.media.GetByID(ctx, mediaID)
	if err != nil {
		return nil, notFoundOr(err, "Media file", mediaID)
	}
	if !policy.CanManage(actor, file, models.RoleAdmin, models.RoleEditor) {
		return nil, models.NewForbiddenError("You cannot delete this file")
	}
	if err := s.media.Delete(ctx, mediaID); err != nil {
		return nil, models.NewInternalError(err)
	}
	return file, nil
}

// GetMedia returns one media record.
func (s *MediaService) GetMedia(ctx context.Context, id uint) (*models.MediaFile, error) {
	file, err := s.media.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Media file", id)
	}
	return file, nil
}

// ListMediaInput narrows the media library listing.
type ListMediaInput struct {
	Actor    policy.Actor
	FileType models.FileType
	Limit    int
	Offset   int
}

// ListMedia returns the media library for staff.
func (s *MediaService) ListMedia(ctx context.Context, input ListMediaInput) ([]*models.MediaFile, int64, error) {
	if !input.Actor.Staff() && !input.Actor.IsSuperuser {
		return nil, 0, models.NewForbiddenError("Viewers cannot browse media")
	}
	if input.FileType != "" && !input.FileType.Valid() {
		return nil, 0, models.NewValidationError("Invalid file type filter")
	}
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	files, total, err := s.media.List(ctx, input.FileType, limit, input.Offset)
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return files, total, nil
}
