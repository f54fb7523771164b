package service

import (
	"context"
	"strings"

	"kapm/internal/models"
	"kapm/internal/observability"
	"kapm/internal/policy"
	"kapm/internal/repository"
	"kapm/internal/validation"
)

const maxCommentLength = 5000

// CommentService handles comment submission and moderation.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, users repository.UserRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

// CreateCommentInput carries a comment submission. AuthorID is nil for
// anonymous visitors.
type CreateCommentInput struct {
	PostID      uint   `json:"post_id"`
	ParentID    *uint  `json:"parent_id"`
	AuthorID    *uint  `json:"-"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}

// CreateComment submits a comment on a published post. Anonymous
// submissions require a name and email and enter the moderation queue
// unapproved; authenticated submissions are approved immediately.
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLength {
		return nil, models.NewValidationError("Comment is too long")
	}

	if input.AuthorID == nil {
		if strings.TrimSpace(input.AuthorName) == "" {
			return nil, models.NewValidationError("Name is required for anonymous comments")
		}
		if err := validation.ValidateEmail(input.AuthorEmail); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}

	post, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, notFoundOr(err, "Post", input.PostID)
	}
	if !post.IsPublished() {
		return nil, models.NewNotFoundError("Post", input.PostID)
	}
	if !post.AllowComments {
		return nil, models.NewValidationError("Comments are disabled on this post")
	}

	if input.ParentID != nil {
		parent, err := s.comments.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, notFoundOr(err, "Comment", *input.ParentID)
		}
		if parent.PostID != input.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
		if parent.ParentID != nil {
			return nil, models.NewValidationError("Replies cannot be nested")
		}
	}

	authorName := strings.TrimSpace(input.AuthorName)
	authorEmail := strings.TrimSpace(input.AuthorEmail)
	if input.AuthorID != nil {
		// Authenticated submissions display the account identity, not
		// whatever the client put in the form.
		if user, err := s.users.GetByID(ctx, *input.AuthorID); err == nil && user != nil {
			authorName = displayName(user)
			authorEmail = user.Email
		}
	}

	comment := &models.Comment{
		PostID:      input.PostID,
		ParentID:    input.ParentID,
		AuthorID:    input.AuthorID,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Content:     content,
		IsApproved:  input.AuthorID != nil,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comment, nil
}

func displayName(user *models.User) string {
	full := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if full != "" {
		return full
	}
	return user.Username
}

// ListForPost returns the approved top-level comments of a post with
// their approved replies nested.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments, err := s.comments.ListApprovedTopLevel(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

// ListReplies returns the approved replies of an approved comment. The
// parent reads as absent while it is still pending moderation.
func (s *CommentService) ListReplies(ctx context.Context, commentID uint) ([]*models.Comment, error) {
	parent, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, notFoundOr(err, "Comment", commentID)
	}
	if !parent.IsApproved {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	replies, err := s.comments.ListReplies(ctx, commentID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}

// ListCommentsInput narrows the moderation queue listing.
type ListCommentsInput struct {
	Actor    policy.Actor
	PostID   uint
	Approved *bool
	Limit    int
	Offset   int
}

// ListComments returns comments for the moderation queue. Admins and
// editors only.
func (s *CommentService) ListComments(ctx context.Context, input ListCommentsInput) ([]*models.Comment, int64, error) {
	if !policy.CanManagePosts(input.Actor) {
		return nil, 0, models.NewForbiddenError("You cannot moderate comments")
	}
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	comments, total, err := s.comments.List(ctx, repository.CommentFilter{
		PostID:   input.PostID,
		Approved: input.Approved,
		Limit:    limit,
		Offset:   input.Offset,
	})
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return comments, total, nil
}

// ApproveComment marks a comment as approved, making it publicly visible.
func (s *CommentService) ApproveComment(ctx context.Context, actor policy.Actor, commentID uint) (*models.Comment, error) {
	if !policy.CanManagePosts(actor) {
		return nil, models.NewForbiddenError("You cannot moderate comments")
	}
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, notFoundOr(err, "Comment", commentID)
	}
	if !comment.IsApproved {
		comment.IsApproved = true
		if err := s.comments.Update(ctx, comment); err != nil {
			return nil, models.NewInternalError(err)
		}
		observability.CommentsModerated.WithLabelValues("approved").Inc()
	}
	return comment, nil
}

// RejectComment removes a comment from the moderation queue entirely.
// Approved replies of a rejected root vanish with their parent.
func (s *CommentService) RejectComment(ctx context.Context, actor policy.Actor, commentID uint) error {
	if !policy.CanManagePosts(actor) {
		return models.NewForbiddenError("You cannot moderate comments")
	}
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return notFoundOr(err, "Comment", commentID)
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return models.NewInternalError(err)
	}
	observability.CommentsModerated.WithLabelValues("rejected").Inc()
	return nil
}

// DeleteComment removes a comment. The author may delete their own;
// admins and editors may delete any. Anonymous comments have no owner
// and can only be removed by moderators.
func (s *CommentService) DeleteComment(ctx context.Context, actor policy.Actor, commentID uint) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return notFoundOr(err, "Comment", commentID)
	}
	if !policy.CanManage(actor, comment, models.RoleAdmin, models.RoleEditor) {
		return models.NewForbiddenError("You cannot delete this comment")
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
