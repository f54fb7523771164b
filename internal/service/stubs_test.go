package service

import (
	"context"
	"errors"
	"testing"

	"kapm/internal/models"
	"kapm/internal/policy"
	"kapm/internal/repository"

	"github.com/stretchr/testify/require"
)

// Stub repositories back the service tests. Unset fn fields fall back to
// zero-value successes so each test only wires what it asserts on.

var (
	adminActor  = policy.Actor{ID: 1, Role: models.RoleAdmin}
	editorActor = policy.Actor{ID: 2, Role: models.RoleEditor}
	authorActor = policy.Actor{ID: 3, Role: models.RoleAuthor}
	viewerActor = policy.Actor{ID: 4, Role: models.RoleViewer}
)

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected *models.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func assertUnauthorizedError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "UNAUTHORIZED")
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "FORBIDDEN")
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "NOT_FOUND")
}

type postRepoStub struct {
	createFn         func(context.Context, *models.BlogPost) error
	getByIDFn        func(context.Context, uint) (*models.BlogPost, error)
	getBySlugFn      func(context.Context, string) (*models.BlogPost, error)
	slugExistsFn     func(context.Context, string, uint) (bool, error)
	listFn           func(context.Context, repository.PostFilter) ([]*models.BlogPost, int64, error)
	updateFn         func(context.Context, *models.BlogPost) error
	replaceTagsFn    func(context.Context, *models.BlogPost, []models.Tag) error
	deleteFn         func(context.Context, uint) error
	incrementViewsFn func(context.Context, uint) error
	countFn          func(context.Context) (int64, error)
	countByStatusFn  func(context.Context, models.PostStatus) (int64, error)
	sumViewsFn       func(context.Context) (int64, error)
	recentFn         func(context.Context, int) ([]*models.BlogPost, error)
}

func (s *postRepoStub) Create(ctx context.Context, p *models.BlogPost) error {
	if s.createFn != nil {
		return s.createFn(ctx, p)
	}
	return nil
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.BlogPost{ID: id}, nil
}

func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return &models.BlogPost{Slug: slug}, nil
}

func (s *postRepoStub) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if s.slugExistsFn != nil {
		return s.slugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (s *postRepoStub) List(ctx context.Context, filter repository.PostFilter) ([]*models.BlogPost, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (s *postRepoStub) Update(ctx context.Context, p *models.BlogPost) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, p)
	}
	return nil
}

func (s *postRepoStub) ReplaceTags(ctx context.Context, p *models.BlogPost, tags []models.Tag) error {
	if s.replaceTagsFn != nil {
		return s.replaceTagsFn(ctx, p, tags)
	}
	return nil
}

func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *postRepoStub) IncrementViews(ctx context.Context, id uint) error {
	if s.incrementViewsFn != nil {
		return s.incrementViewsFn(ctx, id)
	}
	return nil
}

func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *postRepoStub) CountByStatus(ctx context.Context, status models.PostStatus) (int64, error) {
	if s.countByStatusFn != nil {
		return s.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (s *postRepoStub) SumViews(ctx context.Context) (int64, error) {
	if s.sumViewsFn != nil {
		return s.sumViewsFn(ctx)
	}
	return 0, nil
}

func (s *postRepoStub) Recent(ctx context.Context, limit int) ([]*models.BlogPost, error) {
	if s.recentFn != nil {
		return s.recentFn(ctx, limit)
	}
	return nil, nil
}

type categoryRepoStub struct {
	createFn     func(context.Context, *models.Category) error
	getByIDFn    func(context.Context, uint) (*models.Category, error)
	getBySlugFn  func(context.Context, string) (*models.Category, error)
	slugExistsFn func(context.Context, string, uint) (bool, error)
	listFn       func(context.Context, bool) ([]*models.Category, error)
	updateFn     func(context.Context, *models.Category) error
	deleteFn     func(context.Context, uint) error
	countPostsFn func(context.Context, uint) (int64, error)
}

func (s *categoryRepoStub) Create(ctx context.Context, c *models.Category) error {
	if s.createFn != nil {
		return s.createFn(ctx, c)
	}
	return nil
}

func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Category{ID: id}, nil
}

func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return &models.Category{Slug: slug}, nil
}

func (s *categoryRepoStub) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	if s.slugExistsFn != nil {
		return s.slugExistsFn(ctx, slug, excludeID)
	}
	return false, nil
}

func (s *categoryRepoStub) List(ctx context.Context, activeOnly bool) ([]*models.Category, error) {
	if s.listFn != nil {
		return s.listFn(ctx, activeOnly)
	}
	return nil, nil
}

func (s *categoryRepoStub) Update(ctx context.Context, c *models.Category) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, c)
	}
	return nil
}

func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *categoryRepoStub) CountPosts(ctx context.Context, id uint) (int64, error) {
	if s.countPostsFn != nil {
		return s.countPostsFn(ctx, id)
	}
	return 0, nil
}

type tagRepoStub struct {
	createFn    func(context.Context, *models.Tag) error
	getByIDFn   func(context.Context, uint) (*models.Tag, error)
	getBySlugFn func(context.Context, string) (*models.Tag, error)
	getByIDsFn  func(context.Context, []uint) ([]models.Tag, error)
	listFn      func(context.Context) ([]*models.Tag, error)
	updateFn    func(context.Context, *models.Tag) error
	deleteFn    func(context.Context, uint) error
}

func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	if s.createFn != nil {
		return s.createFn(ctx, tag)
	}
	return nil
}

func (s *tagRepoStub) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Tag{ID: id}, nil
}

func (s *tagRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return &models.Tag{Slug: slug}, nil
}

func (s *tagRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	if s.getByIDsFn != nil {
		return s.getByIDsFn(ctx, ids)
	}
	tags := make([]models.Tag, len(ids))
	for i, id := range ids {
		tags[i] = models.Tag{ID: id}
	}
	return tags, nil
}

func (s *tagRepoStub) List(ctx context.Context) ([]*models.Tag, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *tagRepoStub) Update(ctx context.Context, tag *models.Tag) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, tag)
	}
	return nil
}

func (s *tagRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type pageRepoStub struct {
	createFn     func(context.Context, *models.Page) error
	getByIDFn    func(context.Context, uint) (*models.Page, error)
	getBySlugFn  func(context.Context, string) (*models.Page, error)
	slugExistsFn func(context.Context, string, uint) (bool, error)
	listFn       func(context.Context, bool) ([]*models.Page, error)
	listMenuFn   func(context.Context) ([]*models.Page, error)
	updateFn     func(context.Context, *models.Page) error
	deleteFn     func(context.Context, uint) error
}

func (s *pageRepoStub) Create(ctx context.Context, p *models.Page) error {
	if s.createFn != nil {
		return s.createFn(ctx, p)
	}
	return nil
}

func (s *pageRepoStub) GetByID(ctx context.Context, id uint) (*models.Page, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Page{ID: id}, nil
}

func (s *pageRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return &models.Page{Slug: slug}, nil
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

func (s *pageRepoStub) Update(ctx context.Context, p *models.Page) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, p)
	}
	return nil
}

func (s *pageRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type commentRepoStub struct {
	createFn               func(context.Context, *models.Comment) error
	getByIDFn              func(context.Context, uint) (*models.Comment, error)
	listApprovedTopLevelFn func(context.Context, uint) ([]*models.Comment, error)
	listRepliesFn          func(context.Context, uint) ([]*models.Comment, error)
	listFn                 func(context.Context, repository.CommentFilter) ([]*models.Comment, int64, error)
	updateFn               func(context.Context, *models.Comment) error
	deleteFn               func(context.Context, uint) error
	countFn                func(context.Context) (int64, error)
	countPendingFn         func(context.Context) (int64, error)
	countApprovedFn        func(context.Context) (int64, error)
	recentFn               func(context.Context, int) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	if s.createFn != nil {
		return s.createFn(ctx, c)
	}
	return nil
}

func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Comment{ID: id}, nil
}

func (s *commentRepoStub) ListApprovedTopLevel(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if s.listApprovedTopLevelFn != nil {
		return s.listApprovedTopLevelFn(ctx, postID)
	}
	return nil, nil
}

func (s *commentRepoStub) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	if s.listRepliesFn != nil {
		return s.listRepliesFn(ctx, parentID)
	}
	return nil, nil
}

func (s *commentRepoStub) List(ctx context.Context, filter repository.CommentFilter) ([]*models.Comment, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, c)
	}
	return nil
}

func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *commentRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *commentRepoStub) CountPending(ctx context.Context) (int64, error) {
	if s.countPendingFn != nil {
		return s.countPendingFn(ctx)
	}
	return 0, nil
}

func (s *commentRepoStub) CountApproved(ctx context.Context) (int64, error) {
	if s.countApprovedFn != nil {
		return s.countApprovedFn(ctx)
	}
	return 0, nil
}

func (s *commentRepoStub) Recent(ctx context.Context, limit int) ([]*models.Comment, error) {
	if s.recentFn != nil {
		return s.recentFn(ctx, limit)
	}
	return nil, nil
}

type mediaRepoStub struct {
	createFn  func(context.Context, *models.MediaFile) error
	getByIDFn func(context.Context, uint) (*models.MediaFile, error)
	listFn    func(context.Context, models.FileType, int, int) ([]*models.MediaFile, int64, error)
	updateFn  func(context.Context, *models.MediaFile) error
	deleteFn  func(context.Context, uint) error
	countFn   func(context.Context) (int64, error)
}

func (s *mediaRepoStub) Create(ctx context.Context, f *models.MediaFile) error {
	if s.createFn != nil {
		return s.createFn(ctx, f)
	}
	return nil
}

func (s *mediaRepoStub) GetByID(ctx context.Context, id uint) (*models.MediaFile, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.MediaFile{ID: id}, nil
}

func (s *mediaRepoStub) List(ctx context.Context, fileType models.FileType, limit, offset int) ([]*models.MediaFile, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, fileType, limit, offset)
	}
	return nil, 0, nil
}

func (s *mediaRepoStub) Update(ctx context.Context, f *models.MediaFile) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, f)
	}
	return nil
}

func (s *mediaRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *mediaRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type clientRepoStub struct {
	createFn  func(context.Context, *models.Client) error
	getByIDFn func(context.Context, uint) (*models.Client, error)
	listFn    func(context.Context, bool, int, int) ([]*models.Client, int64, error)
	updateFn  func(context.Context, *models.Client) error
	deleteFn  func(context.Context, uint) error
}

func (s *clientRepoStub) Create(ctx context.Context, c *models.Client) error {
	if s.createFn != nil {
		return s.createFn(ctx, c)
	}
	return nil
}

func (s *clientRepoStub) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.Client{ID: id}, nil
}

func (s *clientRepoStub) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*models.Client, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, activeOnly, limit, offset)
	}
	return nil, 0, nil
}

func (s *clientRepoStub) Update(ctx context.Context, c *models.Client) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, c)
	}
	return nil
}

func (s *clientRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	updateProfileFn func(context.Context, *models.Profile) error
	deleteFn        func(context.Context, uint) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	countFn         func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.User{ID: id}, nil
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, u)
	}
	return nil
}

func (s *userRepoStub) Update(ctx context.Context, u *models.User) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, u)
	}
	return nil
}

func (s *userRepoStub) UpdateProfile(ctx context.Context, p *models.Profile) error {
	if s.updateProfileFn != nil {
		return s.updateProfileFn(ctx, p)
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

type bankruptcyRepoStub struct {
	createFn                func(context.Context, *models.BankruptcyCase) error
	getByIDFn               func(context.Context, uint) (*models.BankruptcyCase, error)
	caseNumberExistsFn      func(context.Context, string) (bool, error)
	listFn                  func(context.Context, repository.CaseFilter) ([]*models.BankruptcyCase, int64, error)
	updateFn                func(context.Context, *models.BankruptcyCase) error
	deleteCascadeFn         func(context.Context, uint) error
	countByStatusFn         func(context.Context, models.BankruptcyStatus) (int64, error)
	countFn                 func(context.Context) (int64, error)
	addCreditorFn           func(context.Context, *models.Creditor) error
	getCreditorFn           func(context.Context, uint) (*models.Creditor, error)
	listCreditorsFn         func(context.Context, uint) ([]*models.Creditor, error)
	updateCreditorFn        func(context.Context, *models.Creditor) error
	deleteCreditorFn        func(context.Context, uint) error
	addEventFn              func(context.Context, *models.BankruptcyEvent) error
	listEventsFn            func(context.Context, uint) ([]*models.BankruptcyEvent, error)
	upsertConsumerDetailsFn func(context.Context, *models.ConsumerBankruptcyDetails) error
	getConsumerDetailsFn    func(context.Context, uint) (*models.ConsumerBankruptcyDetails, error)
}

func (s *bankruptcyRepoStub) Create(ctx context.Context, bc *models.BankruptcyCase) error {
	if s.createFn != nil {
		return s.createFn(ctx, bc)
	}
	return nil
}

func (s *bankruptcyRepoStub) GetByID(ctx context.Context, id uint) (*models.BankruptcyCase, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.BankruptcyCase{ID: id, CaseType: models.BankruptcyTypeBusiness}, nil
}

func (s *bankruptcyRepoStub) CaseNumberExists(ctx context.Context, caseNumber string) (bool, error) {
	if s.caseNumberExistsFn != nil {
		return s.caseNumberExistsFn(ctx, caseNumber)
	}
	return false, nil
}

func (s *bankruptcyRepoStub) List(ctx context.Context, filter repository.CaseFilter) ([]*models.BankruptcyCase, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (s *bankruptcyRepoStub) Update(ctx context.Context, bc *models.BankruptcyCase) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, bc)
	}
	return nil
}

func (s *bankruptcyRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	if s.deleteCascadeFn != nil {
		return s.deleteCascadeFn(ctx, id)
	}
	return nil
}

func (s *bankruptcyRepoStub) CountByStatus(ctx context.Context, status models.BankruptcyStatus) (int64, error) {
	if s.countByStatusFn != nil {
		return s.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (s *bankruptcyRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *bankruptcyRepoStub) AddCreditor(ctx context.Context, c *models.Creditor) error {
	if s.addCreditorFn != nil {
		return s.addCreditorFn(ctx, c)
	}
	return nil
}

func (s *bankruptcyRepoStub) GetCreditor(ctx context.Context, id uint) (*models.Creditor, error) {
	if s.getCreditorFn != nil {
		return s.getCreditorFn(ctx, id)
	}
	return &models.Creditor{ID: id}, nil
}

func (s *bankruptcyRepoStub) ListCreditors(ctx context.Context, caseID uint) ([]*models.Creditor, error) {
	if s.listCreditorsFn != nil {
		return s.listCreditorsFn(ctx, caseID)
	}
	return nil, nil
}

func (s *bankruptcyRepoStub) UpdateCreditor(ctx context.Context, c *models.Creditor) error {
	if s.updateCreditorFn != nil {
		return s.updateCreditorFn(ctx, c)
	}
	return nil
}

func (s *bankruptcyRepoStub) DeleteCreditor(ctx context.Context, id uint) error {
	if s.deleteCreditorFn != nil {
		return s.deleteCreditorFn(ctx, id)
	}
	return nil
}

func (s *bankruptcyRepoStub) AddEvent(ctx context.Context, e *models.BankruptcyEvent) error {
	if s.addEventFn != nil {
		return s.addEventFn(ctx, e)
	}
	return nil
}

func (s *bankruptcyRepoStub) ListEvents(ctx context.Context, caseID uint) ([]*models.BankruptcyEvent, error) {
	if s.listEventsFn != nil {
		return s.listEventsFn(ctx, caseID)
	}
	return nil, nil
}

func (s *bankruptcyRepoStub) UpsertConsumerDetails(ctx context.Context, d *models.ConsumerBankruptcyDetails) error {
	if s.upsertConsumerDetailsFn != nil {
		return s.upsertConsumerDetailsFn(ctx, d)
	}
	return nil
}

func (s *bankruptcyRepoStub) GetConsumerDetails(ctx context.Context, caseID uint) (*models.ConsumerBankruptcyDetails, error) {
	if s.getConsumerDetailsFn != nil {
		return s.getConsumerDetailsFn(ctx, caseID)
	}
	return &models.ConsumerBankruptcyDetails{BankruptcyCaseID: caseID}, nil
}

type restructuringRepoStub struct {
	createFn              func(context.Context, *models.RestructuringCase) error
	getByIDFn             func(context.Context, uint) (*models.RestructuringCase, error)
	caseNumberExistsFn    func(context.Context, string) (bool, error)
	listFn                func(context.Context, repository.CaseFilter) ([]*models.RestructuringCase, int64, error)
	updateFn              func(context.Context, *models.RestructuringCase) error
	deleteCascadeFn       func(context.Context, uint) error
	countByStatusFn       func(context.Context, models.RestructuringStatus) (int64, error)
	countFn               func(context.Context) (int64, error)
	addProposalFn         func(context.Context, *models.ArrangementProposal) error
	getProposalFn         func(context.Context, uint) (*models.ArrangementProposal, error)
	listProposalsFn       func(context.Context, uint) ([]*models.ArrangementProposal, error)
	updateProposalFn      func(context.Context, *models.ArrangementProposal) error
	deactivateProposalsFn func(context.Context, uint, uint) error
	addCreditorFn         func(context.Context, *models.RestructuringCreditor) error
	getCreditorFn         func(context.Context, uint) (*models.RestructuringCreditor, error)
	listCreditorsFn       func(context.Context, uint) ([]*models.RestructuringCreditor, error)
	updateCreditorFn      func(context.Context, *models.RestructuringCreditor) error
	deleteCreditorFn      func(context.Context, uint) error
	addEventFn            func(context.Context, *models.RestructuringEvent) error
	listEventsFn          func(context.Context, uint) ([]*models.RestructuringEvent, error)
	addPaymentFn          func(context.Context, *models.ArrangementPayment) error
	getPaymentFn          func(context.Context, uint) (*models.ArrangementPayment, error)
	listPaymentsFn        func(context.Context, uint) ([]*models.ArrangementPayment, error)
	updatePaymentFn       func(context.Context, *models.ArrangementPayment) error
	deletePaymentFn       func(context.Context, uint) error
}

func (s *restructuringRepoStub) Create(ctx context.Context, rc *models.RestructuringCase) error {
	if s.createFn != nil {
		return s.createFn(ctx, rc)
	}
	return nil
}

func (s *restructuringRepoStub) GetByID(ctx context.Context, id uint) (*models.RestructuringCase, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return &models.RestructuringCase{ID: id}, nil
}

func (s *restructuringRepoStub) CaseNumberExists(ctx context.Context, caseNumber string) (bool, error) {
	if s.caseNumberExistsFn != nil {
		return s.caseNumberExistsFn(ctx, caseNumber)
	}
	return false, nil
}

func (s *restructuringRepoStub) List(ctx context.Context, filter repository.CaseFilter) ([]*models.RestructuringCase, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (s *restructuringRepoStub) Update(ctx context.Context, rc *models.RestructuringCase) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, rc)
	}
	return nil
}

func (s *restructuringRepoStub) DeleteCascade(ctx context.Context, id uint) error {
	if s.deleteCascadeFn != nil {
		return s.deleteCascadeFn(ctx, id)
	}
	return nil
}

func (s *restructuringRepoStub) CountByStatus(ctx context.Context, status models.RestructuringStatus) (int64, error) {
	if s.countByStatusFn != nil {
		return s.countByStatusFn(ctx, status)
	}
	return 0, nil
}

func (s *restructuringRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

func (s *restructuringRepoStub) AddProposal(ctx context.Context, p *models.ArrangementProposal) error {
	if s.addProposalFn != nil {
		return s.addProposalFn(ctx, p)
	}
	return nil
}

func (s *restructuringRepoStub) GetProposal(ctx context.Context, id uint) (*models.ArrangementProposal, error) {
	if s.getProposalFn != nil {
		return s.getProposalFn(ctx, id)
	}
	return &models.ArrangementProposal{ID: id}, nil
}

func (s *restructuringRepoStub) ListProposals(ctx context.Context, caseID uint) ([]*models.ArrangementProposal, error) {
	if s.listProposalsFn != nil {
		return s.listProposalsFn(ctx, caseID)
	}
	return nil, nil
}

func (s *restructuringRepoStub) UpdateProposal(ctx context.Context, p *models.ArrangementProposal) error {
	if s.updateProposalFn != nil {
		return s.updateProposalFn(ctx, p)
	}
	return nil
}

func (s *restructuringRepoStub) DeactivateProposals(ctx context.Context, caseID, exceptID uint) error {
	if s.deactivateProposalsFn != nil {
		return s.deactivateProposalsFn(ctx, caseID, exceptID)
	}
	return nil
}

func (s *restructuringRepoStub) AddCreditor(ctx context.Context, c *models.RestructuringCreditor) error {
	if s.addCreditorFn != nil {
		return s.addCreditorFn(ctx, c)
	}
	return nil
}

func (s *restructuringRepoStub) GetCreditor(ctx context.Context, id uint) (*models.RestructuringCreditor, error) {
	if s.getCreditorFn != nil {
		return s.getCreditorFn(ctx, id)
	}
	return &models.RestructuringCreditor{ID: id}, nil
}

func (s *restructuringRepoStub) ListCreditors(ctx context.Context, caseID uint) ([]*models.RestructuringCreditor, error) {
	if s.listCreditorsFn != nil {
		return s.listCreditorsFn(ctx, caseID)
	}
	return nil, nil
}

func (s *restructuringRepoStub) UpdateCreditor(ctx context.Context, c *models.RestructuringCreditor) error {
	if s.updateCreditorFn != nil {
		return s.updateCreditorFn(ctx, c)
	}
	return nil
}

func (s *restructuringRepoStub) DeleteCreditor(ctx context.Context, id uint) error {
	if s.deleteCreditorFn != nil {
		return s.deleteCreditorFn(ctx, id)
	}
	return nil
}

func (s *restructuringRepoStub) AddEvent(ctx context.Context, e *models.RestructuringEvent) error {
	if s.addEventFn != nil {
		return s.addEventFn(ctx, e)
	}
	return nil
}

func (s *restructuringRepoStub) ListEvents(ctx context.Context, caseID uint) ([]*models.RestructuringEvent, error) {
	if s.listEventsFn != nil {
		return s.listEventsFn(ctx, caseID)
	}
	return nil, nil
}

func (s *restructuringRepoStub) AddPayment(ctx context.Context, p *models.ArrangementPayment) error {
	if s.addPaymentFn != nil {
		return s.addPaymentFn(ctx, p)
	}
	return nil
}

func (s *restructuringRepoStub) GetPayment(ctx context.Context, id uint) (*models.ArrangementPayment, error) {
	if s.getPaymentFn != nil {
		return s.getPaymentFn(ctx, id)
	}
	return &models.ArrangementPayment{ID: id}, nil
}

func (s *restructuringRepoStub) ListPayments(ctx context.Context, caseID uint) ([]*models.ArrangementPayment, error) {
	if s.listPaymentsFn != nil {
		return s.listPaymentsFn(ctx, caseID)
	}
	return nil, nil
}

func (s *restructuringRepoStub) UpdatePayment(ctx context.Context, p *models.ArrangementPayment) error {
	if s.updatePaymentFn != nil {
		return s.updatePaymentFn(ctx, p)
	}
	return nil
}

func (s *restructuringRepoStub) DeletePayment(ctx context.Context, id uint) error {
	if s.deletePaymentFn != nil {
		return s.deletePaymentFn(ctx, id)
	}
	return nil
}
