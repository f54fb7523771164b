package service

import (
	"context"

	"kapm/internal/models"
	"kapm/internal/policy"
	"kapm/internal/repository"
)

// UserService handles account and profile management.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// GetUser returns a user with their profile.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Actor resolves the authenticated user into a policy actor.
func (s *UserService) Actor(ctx context.Context, userID uint) (policy.Actor, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return policy.Actor{}, err
	}
	return policy.Actor{
		ID:          user.ID,
		Role:        user.Role(),
		IsSuperuser: user.IsSuperuser,
	}, nil
}

// UpdateProfileInput carries the profile fields a user may change about
// themselves. Role is deliberately absent; see SetRole.
type UpdateProfileInput struct {
	UserID               uint
	FirstName            *string `json:"first_name"`
	LastName             *string `json:"last_name"`
	Bio                  *string `json:"bio"`
	Phone                *string `json:"phone"`
	AvatarURL            *string `json:"avatar_url"`
	Language             *string `json:"language"`
	DarkMode             *bool   `json:"dark_mode"`
	ReceiveNotifications *bool   `json:"receive_notifications"`
}

// UpdateProfile applies partial updates to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Profile != nil {
		p := user.Profile
		if input.Bio != nil {
			p.Bio = *input.Bio
		}
		if input.Phone != nil {
			p.Phone = *input.Phone
		}
		if input.AvatarURL != nil {
			p.AvatarURL = *input.AvatarURL
		}
		if input.Language != nil {
			p.Language = *input.Language
		}
		if input.DarkMode != nil {
			p.DarkMode = *input.DarkMode
		}
		if input.ReceiveNotifications != nil {
			p.ReceiveNotifications = *input.ReceiveNotifications
		}
		if err := s.users.UpdateProfile(ctx, p); err != nil {
			return nil, err
		}
	}
	return s.users.GetByID(ctx, input.UserID)
}

// SetRoleInput carries a role assignment.
type SetRoleInput struct {
	Actor  policy.Actor
	UserID uint
	Role   models.Role `json:"role"`
}

// SetRole assigns a role to another account. Admin only; admins cannot
// demote themselves so a deployment always keeps at least one admin.
func (s *UserService) SetRole(ctx context.Context, input SetRoleInput) (*models.User, error) {
	if !input.Actor.IsSuperuser && input.Actor.Role != models.RoleAdmin {
		return nil, models.NewForbiddenError("Only administrators can assign roles")
	}
	if !input.Role.Valid() {
		return nil, models.NewValidationError("Invalid role")
	}
	if input.UserID == input.Actor.ID && input.Role != models.RoleAdmin {
		return nil, models.NewValidationError("Administrators cannot demote themselves")
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		user.Profile = &models.Profile{UserID: user.ID}
	}
	user.Profile.Role = input.Role
	if err := s.users.UpdateProfile(ctx, user.Profile); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns accounts for the admin user listing.
func (s *UserService) ListUsers(ctx context.Context, actor policy.Actor, limit, offset int) ([]models.User, error) {
	if !actor.IsSuperuser && actor.Role != models.RoleAdmin {
		return nil, models.NewForbiddenError("Only administrators can list users")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.users.List(ctx, limit, offset)
}

// DeleteUser removes an account. Admin only; self-deletion is rejected.
func (s *UserService) DeleteUser(ctx context.Context, actor policy.Actor, userID uint) error {
	if !actor.IsSuperuser && actor.Role != models.RoleAdmin {
		return models.NewForbiddenError("Only administrators can delete users")
	}
	if userID == actor.ID {
		return models.NewValidationError("Cannot delete your own account")
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}
