package models

import (
	"path/filepath"
	"strings"
	"time"
)

// FileType is the closed set of media file classifications.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
	FileTypeVideo    FileType = "video"
	FileTypeOther    FileType = "other"
)

// Valid reports whether t is a member of the file type set.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeImage, FileTypeDocument, FileTypeVideo, FileTypeOther:
		return true
	}
	return false
}

// DetectFileType classifies a file by its extension. The classification
// is authoritative: caller-supplied types are ignored at save time.
func DetectFileType(fileName string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch ext {
	case "jpg", "jpeg", "png", "gif", "svg", "webp":
		return FileTypeImage
	case "pdf", "doc", "docx", "xls", "xlsx":
		return FileTypeDocument
	case "mp4", "avi", "mov", "webm":
		return FileTypeVideo
	}
	return FileTypeOther
}

// MediaFile stores metadata about an uploaded file. FileType and FileSize
// are derived from the upload itself, never accepted from the client.
type MediaFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileName     string    `gorm:"not null" json:"file_name"`
	URL          string    `json:"url"`
	Title        string    `gorm:"not null" json:"title"`
	AltText      string    `json:"alt_text"`
	Description  string    `gorm:"type:text" json:"description"`
	FileType     FileType  `gorm:"type:varchar(20);not null;default:other;index" json:"file_type"`
	FileSize     int64     `gorm:"not null;default:0" json:"file_size"`
	UploadedByID *uint     `gorm:"index" json:"uploaded_by_id"`
	UploadedBy   *User     `gorm:"foreignKey:UploadedByID;constraint:OnDelete:SET NULL" json:"uploaded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnerID implements policy.Owned.
func (m *MediaFile) OwnerID() (uint, bool) {
	if m.UploadedByID == nil {
		return 0, false
	}
	return *m.UploadedByID, true
}
