package service

import (
	"context"

	"kapm/internal/models"
	"kapm/internal/policy"
	"kapm/internal/repository"
)

// DashboardService aggregates counters for the admin dashboard.
type DashboardService struct {
	posts         repository.PostRepository
	comments      repository.CommentRepository
	users         repository.UserRepository
	media         repository.MediaRepository
	bankruptcy    repository.BankruptcyRepository
	restructuring repository.RestructuringRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
	media repository.MediaRepository,
	bankruptcy repository.BankruptcyRepository,
	restructuring repository.RestructuringRepository,
) *DashboardService {
	return &DashboardService{
		posts:         posts,
		comments:      comments,
		users:         users,
		media:         media,
		bankruptcy:    bankruptcy,
		restructuring: restructuring,
	}
}

// DashboardStats is the aggregate served on the dashboard endpoint.
type DashboardStats struct {
	Posts struct {
		Total      int64 `json:"total"`
		Published  int64 `json:"published"`
		Drafts     int64 `json:"drafts"`
		TotalViews int64 `json:"total_views"`
	} `json:"posts"`
	Comments struct {
		Total    int64 `json:"total"`
		Pending  int64 `json:"pending"`
		Approved int64 `json:"approved"`
	} `json:"comments"`
	Users struct {
		Total int64 `json:"total"`
	} `json:"users"`
	Media struct {
		Total int64 `json:"total"`
	} `json:"media"`
	Cases struct {
		BankruptcyTotal       int64            `json:"bankruptcy_total"`
		BankruptcyByStatus    map[string]int64 `json:"bankruptcy_by_status"`
		RestructuringTotal    int64            `json:"restructuring_total"`
		RestructuringByStatus map[string]int64 `json:"restructuring_by_status"`
	} `json:"cases"`
	RecentPosts    []*models.BlogPost `json:"recent_posts"`
	RecentComments []*models.Comment  `json:"recent_comments"`
}

var bankruptcyStatuses = []models.BankruptcyStatus{
	models.BankruptcyStatusPreparation,
	models.BankruptcyStatusFiled,
	models.BankruptcyStatusHearing,
	models.BankruptcyStatusDeclared,
	models.BankruptcyStatusOngoing,
	models.BankruptcyStatusCompleted,
	models.BankruptcyStatusRejected,
}

var restructuringStatuses = []models.RestructuringStatus{
	models.RestructuringStatusPreparation,
	models.RestructuringStatusFiled,
	models.RestructuringStatusOpened,
	models.RestructuringStatusArrangementProposed,
	models.RestructuringStatusVoting,
	models.RestructuringStatusArrangementAccepted,
	models.RestructuringStatusArrangementApproved,
	models.RestructuringStatusExecution,
	models.RestructuringStatusCompleted,
	models.RestructuringStatusDiscontinued,
}

// Stats aggregates counters across all modules. The aggregate is
// recomputed on every call so mutations are visible immediately.
func (s *DashboardService) Stats(ctx context.Context, actor policy.Actor) (*DashboardStats, error) {
	if !actor.Staff() && !actor.IsSuperuser {
		return nil, models.NewForbiddenError("Viewers cannot access the dashboard")
	}
	return s.collect(ctx)
}

// RecentPosts returns the latest posts for the dashboard sidebar.
func (s *DashboardService) RecentPosts(ctx context.Context, actor policy.Actor) ([]*models.BlogPost, error) {
	if !actor.Staff() && !actor.IsSuperuser {
		return nil, models.NewForbiddenError("Viewers cannot access the dashboard")
	}
	posts, err := s.posts.Recent(ctx, 5)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// RecentComments returns the latest comments awaiting moderation.
func (s *DashboardService) RecentComments(ctx context.Context, actor policy.Actor) ([]*models.Comment, error) {
	if !actor.Staff() && !actor.IsSuperuser {
		return nil, models.NewForbiddenError("Viewers cannot access the dashboard")
	}
	pending := false
	comments, _, err := s.comments.List(ctx, repository.CommentFilter{
		Approved: &pending,
		Limit:    10,
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (s *DashboardService) collect(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Posts.Total, err = s.posts.Count(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Posts.Published, err = s.posts.CountByStatus(ctx, models.PostStatusPublished); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Posts.Drafts, err = s.posts.CountByStatus(ctx, models.PostStatusDraft); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Posts.TotalViews, err = s.posts.SumViews(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Comments.Total, err = s.comments.Count(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Comments.Pending, err = s.comments.CountPending(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Comments.Approved, err = s.comments.CountApproved(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Users.Total, err = s.users.Count(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.Media.Total, err = s.media.Count(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}

	if stats.Cases.BankruptcyTotal, err = s.bankruptcy.Count(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	stats.Cases.BankruptcyByStatus = make(map[string]int64, len(bankruptcyStatuses))
	for _, status := range bankruptcyStatuses {
		count, err := s.bankruptcy.CountByStatus(ctx, status)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		stats.Cases.BankruptcyByStatus[string(status)] = count
	}

	if stats.Cases.RestructuringTotal, err = s.restructuring.Count(ctx); err != nil {
		return nil, models.NewInternalError(err)
	}
	stats.Cases.RestructuringByStatus = make(map[string]int64, len(restructuringStatuses))
	for _, status := range restructuringStatuses {
		count, err := s.restructuring.CountByStatus(ctx, status)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		stats.Cases.RestructuringByStatus[string(status)] = count
	}

	if stats.RecentPosts, err = s.posts.Recent(ctx, 5); err != nil {
		return nil, models.NewInternalError(err)
	}
	if stats.RecentComments, err = s.comments.Recent(ctx, 5); err != nil {
		return nil, models.NewInternalError(err)
	}
	return stats, nil
}
