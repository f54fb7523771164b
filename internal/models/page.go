package models

import "time"

// PageTemplate is the closed set of render templates for static pages.
type PageTemplate string

const (
	PageTemplateDefault  PageTemplate = "default"
	PageTemplateLanding  PageTemplate = "landing"
	PageTemplateContact  PageTemplate = "contact"
	PageTemplateAbout    PageTemplate = "about"
	PageTemplateServices PageTemplate = "services"
)

// Valid reports whether t is a member of the template set.
func (t PageTemplate) Valid() bool {
	switch t {
	case PageTemplateDefault, PageTemplateLanding, PageTemplateContact,
		PageTemplateAbout, PageTemplateServices:
		return true
	}
	return false
}

// Page represents a static site page. Unlike blog posts the publish flag
// is freely reversible and carries no timestamp.
type Page struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Title           string       `gorm:"not null" json:"title"`
	Slug            string       `gorm:"uniqueIndex;not null" json:"slug"`
	Content         string       `gorm:"type:text;not null" json:"content"`
	Template        PageTemplate `gorm:"type:varchar(50);not null;default:default" json:"template"`
	IsPublished     bool         `json:"is_published"`
	ShowInMenu      bool         `json:"show_in_menu"`
	MenuOrder       int          `json:"menu_order"`
	MetaTitle       string       `gorm:"size:60" json:"meta_title"`
	MetaDescription string       `gorm:"size:160" json:"meta_description"`
	MetaKeywords    string       `json:"meta_keywords"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
