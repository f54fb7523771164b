package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus is the closed set of blog post lifecycle states.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// Valid reports whether s is a member of the status set.
func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// BlogPost represents an article on the firm's blog.
//
// PublishedAt is stamped on the first transition to the published status
// and never overwritten afterwards, so publication can be scheduled by
// setting it in the future.
type BlogPost struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"not null" json:"title"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt          string         `gorm:"type:text" json:"excerpt"`
	Content          string         `gorm:"type:text;not null" json:"content"`
	FeaturedImageURL string         `json:"featured_image_url"`
	Status           PostStatus     `gorm:"type:varchar(20);not null;default:draft;index" json:"status"`
	PublishedAt      *time.Time     `gorm:"index" json:"published_at"`
	AuthorID         *uint          `gorm:"index" json:"author_id"`
	Author           *User          `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	CategoryID       *uint          `gorm:"index" json:"category_id"`
	Category         *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags             []Tag          `gorm:"many2many:blog_post_tags" json:"tags,omitempty"`
	ViewsCount       uint           `gorm:"not null;default:0" json:"views_count"`
	IsFeatured       bool           `json:"is_featured"`
	AllowComments    bool           `gorm:"default:true" json:"allow_comments"`
	MetaTitle        string         `gorm:"size:60" json:"meta_title"`
	MetaDescription  string         `gorm:"size:160" json:"meta_description"`
	MetaKeywords     string         `json:"meta_keywords"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsPublished reports whether the post is visible on the public surface:
// published status with a publication time at or before now. Computed,
// never stored.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished &&
		p.PublishedAt != nil &&
		!p.PublishedAt.After(time.Now())
}

// OwnerID implements policy.Owned. The second result is false when the
// author account has been deleted.
func (p *BlogPost) OwnerID() (uint, bool) {
	if p.AuthorID == nil {
		return 0, false
	}
	return *p.AuthorID, true
}
