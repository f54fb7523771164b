// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of profile roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleAuthor, RoleViewer:
		return true
	}
	return false
}

// User represents an account able to authenticate against the API.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Username    string         `gorm:"unique;not null" json:"username"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	IsSuperuser bool           `json:"is_superuser"`
	Profile     *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Role returns the profile role, defaulting to viewer when no profile exists.
func (u *User) Role() Role {
	if u.Profile == nil {
		return RoleViewer
	}
	return u.Profile.Role
}

// Profile extends a User with a role and presentation preferences.
type Profile struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Role                 Role      `gorm:"type:varchar(20);not null;default:viewer" json:"role"`
	Bio                  string    `gorm:"type:text" json:"bio"`
	Phone                string    `json:"phone"`
	AvatarURL            string    `json:"avatar_url"`
	Language             string    `gorm:"default:pl" json:"language"`
	DarkMode             bool      `json:"dark_mode"`
	ReceiveNotifications bool      `gorm:"default:true" json:"receive_notifications"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// OwnerID implements policy.Owned; a profile is owned by its user.
func (p *Profile) OwnerID() (uint, bool) {
	return p.UserID, true
}
