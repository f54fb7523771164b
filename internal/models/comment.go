package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is attached to a blog post. A non-nil ParentID marks the
// comment as a reply; replies never appear in top-level listings and are
// fetched through their parent's nested collection instead.
type Comment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	PostID      uint           `gorm:"not null;index" json:"post_id"`
	Post        *BlogPost      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	AuthorID    *uint          `gorm:"index" json:"author_id"`
	Author      *User          `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	AuthorName  string         `gorm:"size:100" json:"author_name"`
	AuthorEmail string         `json:"author_email"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	IsApproved  bool           `gorm:"index" json:"is_approved"`
	ParentID    *uint          `gorm:"index" json:"parent_id"`
	Replies     []Comment      `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// OwnerID implements policy.Owned. Anonymous comments have no owner.
func (c *Comment) OwnerID() (uint, bool) {
	if c.AuthorID == nil {
		return 0, false
	}
	return *c.AuthorID, true
}
