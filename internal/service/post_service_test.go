package service

import (
	"context"
	"testing"
	"time"

	"kapm/internal/models"
	"kapm/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(&postRepoStub{}, &categoryRepoStub{}, &tagRepoStub{})
	ctx := context.Background()

	t.Run("viewer forbidden", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Actor: viewerActor, Title: "t", Content: "c"})
		assertForbiddenError(t, err)
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Actor: authorActor, Content: "c"})
		assertValidationError(t, err)
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{Actor: authorActor, Title: "t"})
		assertValidationError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreatePost(ctx, CreatePostInput{
			Actor: authorActor, Title: "t", Content: "c", Status: "pending",
		})
		assertValidationError(t, err)
	})
}

func TestPostService_CreatePost_SlugDerivation(t *testing.T) {
	t.Parallel()

	var created *models.BlogPost
	posts := &postRepoStub{
		createFn: func(_ context.Context, p *models.BlogPost) error {
			created = p
			return nil
		},
	}
	svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Actor:   authorActor,
		Title:   "Upadłość konsumencka: krok po kroku",
		Content: "treść",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "upadlosc-konsumencka-krok-po-kroku", created.Slug)
	assert.Equal(t, "Upadłość konsumencka: krok po kroku", created.MetaTitle)
	require.NotNil(t, created.AuthorID)
	assert.Equal(t, authorActor.ID, *created.AuthorID)
	assert.Equal(t, models.PostStatusDraft, created.Status)
	assert.Nil(t, created.PublishedAt)
}

func TestPostService_CreatePost_SlugConflict(t *testing.T) {
	t.Parallel()

	posts := &postRepoStub{
		slugExistsFn: func(_ context.Context, _ string, _ uint) (bool, error) {
			return true, nil
		},
	}
	svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Actor: authorActor, Title: "Taken", Content: "c",
	})
	assertValidationError(t, err)
}

func TestPostService_Publish_StampsPublishedAtOnce(t *testing.T) {
	t.Parallel()

	t.Run("create published stamps timestamp", func(t *testing.T) {
		t.Parallel()
		var created *models.BlogPost
		posts := &postRepoStub{
			createFn: func(_ context.Context, p *models.BlogPost) error {
				created = p
				return nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
		_, err := svc.CreatePost(context.Background(), CreatePostInput{
			Actor: editorActor, Title: "t", Content: "c", Status: models.PostStatusPublished,
		})
		require.NoError(t, err)
		require.NotNil(t, created.PublishedAt)
		assert.WithinDuration(t, time.Now(), *created.PublishedAt, time.Second)
	})

	t.Run("republish keeps original timestamp", func(t *testing.T) {
		t.Parallel()
		original := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		authorID := editorActor.ID
		stored := &models.BlogPost{
			ID:          7,
			Title:       "t",
			Content:     "c",
			Status:      models.PostStatusDraft,
			PublishedAt: &original,
			AuthorID:    &authorID,
		}
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, _ uint) (*models.BlogPost, error) {
				return stored, nil
			},
			updateFn: func(_ context.Context, p *models.BlogPost) error {
				stored = p
				return nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})

		status := models.PostStatusPublished
		updated, err := svc.UpdatePost(context.Background(), UpdatePostInput{
			Actor: editorActor, PostID: 7, Status: &status,
		})
		require.NoError(t, err)
		require.NotNil(t, updated.PublishedAt)
		assert.True(t, updated.PublishedAt.Equal(original))
	})
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	t.Parallel()

	otherAuthor := uint(99)
	posts := &postRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.BlogPost, error) {
			return &models.BlogPost{ID: id, AuthorID: &otherAuthor}, nil
		},
	}
	svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
	ctx := context.Background()
	title := "new"

	t.Run("author cannot edit another author's post", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePost(ctx, UpdatePostInput{Actor: authorActor, PostID: 1, Title: &title})
		assertForbiddenError(t, err)
	})

	t.Run("editor can edit any post", func(t *testing.T) {
		t.Parallel()
		_, err := svc.UpdatePost(ctx, UpdatePostInput{Actor: editorActor, PostID: 1, Title: &title})
		require.NoError(t, err)
	})

	t.Run("admin can delete any post", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, svc.DeletePost(ctx, adminActor, 1))
	})

	t.Run("author cannot delete another author's post", func(t *testing.T) {
		t.Parallel()
		assertForbiddenError(t, svc.DeletePost(ctx, authorActor, 1))
	})
}

func TestPostService_GetPublishedBySlug(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	t.Run("published post is served and view counted", func(t *testing.T) {
		t.Parallel()
		incremented := false
		posts := &postRepoStub{
			getBySlugFn: func(_ context.Context, slug string) (*models.BlogPost, error) {
				return &models.BlogPost{ID: 1, Slug: slug, Status: models.PostStatusPublished, PublishedAt: &past, ViewsCount: 4}, nil
			},
			incrementViewsFn: func(_ context.Context, _ uint) error {
				incremented = true
				return nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
		post, err := svc.GetPublishedBySlug(context.Background(), "hello")
		require.NoError(t, err)
		assert.True(t, incremented)
		assert.Equal(t, uint(5), post.ViewsCount)
	})

	t.Run("draft reads as absent", func(t *testing.T) {
		t.Parallel()
		posts := &postRepoStub{
			getBySlugFn: func(_ context.Context, slug string) (*models.BlogPost, error) {
				return &models.BlogPost{ID: 1, Slug: slug, Status: models.PostStatusDraft}, nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
		_, err := svc.GetPublishedBySlug(context.Background(), "hidden")
		assertNotFoundError(t, err)
	})

	t.Run("future-dated publication reads as absent", func(t *testing.T) {
		t.Parallel()
		posts := &postRepoStub{
			getBySlugFn: func(_ context.Context, slug string) (*models.BlogPost, error) {
				return &models.BlogPost{ID: 1, Slug: slug, Status: models.PostStatusPublished, PublishedAt: &future}, nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
		_, err := svc.GetPublishedBySlug(context.Background(), "scheduled")
		assertNotFoundError(t, err)
	})
}

func TestPostService_GetPublishedByID(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)

	t.Run("published post is served and view counted", func(t *testing.T) {
		t.Parallel()
		incremented := false
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.BlogPost, error) {
				return &models.BlogPost{ID: id, Status: models.PostStatusPublished, PublishedAt: &past, ViewsCount: 7}, nil
			},
			incrementViewsFn: func(_ context.Context, _ uint) error {
				incremented = true
				return nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
		post, err := svc.GetPublishedByID(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, incremented)
		assert.Equal(t, uint(8), post.ViewsCount)
	})

	t.Run("draft reads as absent", func(t *testing.T) {
		t.Parallel()
		posts := &postRepoStub{
			getByIDFn: func(_ context.Context, id uint) (*models.BlogPost, error) {
				return &models.BlogPost{ID: id, Status: models.PostStatusDraft}, nil
			},
		}
		svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
		_, err := svc.GetPublishedByID(context.Background(), 3)
		assertNotFoundError(t, err)
	})
}

func TestPostService_ListPosts_AuthorScoping(t *testing.T) {
	t.Parallel()

	var captured repository.PostFilter
	posts := &postRepoStub{
		listFn: func(_ context.Context, filter repository.PostFilter) ([]*models.BlogPost, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	svc := NewPostService(posts, &categoryRepoStub{}, &tagRepoStub{})
	ctx := context.Background()

	t.Run("authors see only their own posts", func(t *testing.T) {
		_, _, err := svc.ListPosts(ctx, ListPostsInput{Actor: authorActor})
		require.NoError(t, err)
		assert.Equal(t, authorActor.ID, captured.AuthorID)
	})

	t.Run("editors see everything", func(t *testing.T) {
		_, _, err := svc.ListPosts(ctx, ListPostsInput{Actor: editorActor})
		require.NoError(t, err)
		assert.Zero(t, captured.AuthorID)
	})

	t.Run("viewers are rejected", func(t *testing.T) {
		_, _, err := svc.ListPosts(ctx, ListPostsInput{Actor: viewerActor})
		assertForbiddenError(t, err)
	})
}

func TestPostService_CreatePost_UnknownTag(t *testing.T) {
	t.Parallel()

	tags := &tagRepoStub{
		getByIDsFn: func(_ context.Context, _ []uint) ([]models.Tag, error) {
			return []models.Tag{{ID: 1}}, nil
		},
	}
	svc := NewPostService(&postRepoStub{}, &categoryRepoStub{}, tags)
	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		Actor: authorActor, Title: "t", Content: "c", TagIDs: []uint{1, 2},
	})
	assertValidationError(t, err)
}
