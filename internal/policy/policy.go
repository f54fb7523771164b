// Package policy implements the authorization rules as pure functions.
// Decisions are fail-closed: anything not explicitly allowed is denied.
package policy

import "kapm/internal/models"

// Owned is implemented by entities that carry an owner. The bool result
// is false for ownerless records (anonymous comments, orphaned media).
type Owned interface {
	OwnerID() (uint, bool)
}

// Actor is the authenticated principal a decision is made for.
type Actor struct {
	ID          uint
	Role        models.Role
	IsSuperuser bool
}

// Staff reports whether the actor holds any content-producing role.
// Viewers are read-only.
func (a Actor) Staff() bool {
	switch a.Role {
	case models.RoleAdmin, models.RoleEditor, models.RoleAuthor:
		return true
	}
	return false
}

// CanManage reports whether the actor may modify or delete an owned
// entity. Superusers always may; otherwise the actor must own the
// entity or hold one of the elevated roles.
func CanManage(a Actor, entity Owned, elevated ...models.Role) bool {
	if a.IsSuperuser {
		return true
	}
	if owner, ok := entity.OwnerID(); ok && owner == a.ID {
		return true
	}
	for _, r := range elevated {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CanManagePosts reports whether the actor may modify any post
// regardless of ownership. Authors fall back to CanManage on their own
// posts.
func CanManagePosts(a Actor) bool {
	return a.IsSuperuser || a.Role == models.RoleAdmin || a.Role == models.RoleEditor
}

// CanManagePages reports whether the actor may manage static pages.
func CanManagePages(a Actor) bool {
	return a.IsSuperuser || a.Role == models.RoleAdmin || a.Role == models.RoleEditor
}

// CanManageCategories reports whether the actor may manage categories.
func CanManageCategories(a Actor) bool {
	return a.IsSuperuser || a.Role == models.RoleAdmin
}

// CanManageCases reports whether the actor may access case records.
func CanManageCases(a Actor) bool {
	return a.IsSuperuser || a.Staff()
}

// SeesAllPosts reports whether admin listings should include every
// author's posts. Authors only see their own.
func SeesAllPosts(a Actor) bool {
	return a.IsSuperuser || a.Role == models.RoleAdmin || a.Role == models.RoleEditor
}
