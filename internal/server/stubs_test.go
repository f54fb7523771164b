package server

import (
	"context"

	"kapm/internal/models"
)

// Nil-safe function-field stubs. Tests assign only the calls they
// expect; anything else returns a zero value.

type userRepoStub struct {
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	createFn        func(ctx context.Context, user *models.User) error
	updateFn        func(ctx context.Context, user *models.User) error
	updateProfileFn func(ctx context.Context, profile *models.Profile) error
	deleteFn        func(ctx context.Context, id uint) error
	listFn          func(ctx context.Context, limit, offset int) ([]models.User, error)
	countFn         func(ctx context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("User", id)
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, models.NewNotFoundError("User", email)
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, models.NewNotFoundError("User", username)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if s.updateProfileFn != nil {
		return s.updateProfileFn(ctx, profile)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type pageRepoStub struct {
	createFn     func(ctx context.Context, page *models.Page) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Page, error)
	getBySlugFn  func(ctx context.Context, slug string) (*models.Page, error)
	slugExistsFn func(ctx context.Context, slug string, excludeID uint) (bool, error)
	listFn       func(ctx context.Context, publishedOnly bool) ([]*models.Page, error)
	listMenuFn   func(ctx context.Context) ([]*models.Page, error)
	updateFn     func(ctx context.Context, page *models.Page) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *pageRepoStub) Create(ctx context.Context, page *models.Page) error {
	if s.createFn != nil {
		return s.createFn(ctx, page)
	}
	return nil
}

func (s *pageRepoStub) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Page", id)
}

func (s *pageRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return nil, models.NewNotFoundError("Page", slug)
}

func (s *pageRepoStub) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if s.slugExistsFn != nil {
		return s.slugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (s *pageRepoStub) List(ctx context.Context, publishedOnly bool) ([]*models.Page, error) {
	if s.listFn != nil {
		return s.listFn(ctx, publishedOnly)
	}
	return nil, nil
}

func (s *pageRepoStub) ListMenu(ctx context.Context) ([]*models.Page, error) {
	if s.listMenuFn != nil {
		return s.listMenuFn(ctx)
	}
	return nil, nil
}

func (s *pageRepoStub) Update(ctx context.Context, page *models.Page) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, page)
	}
	return nil
}

func (s *pageRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}
