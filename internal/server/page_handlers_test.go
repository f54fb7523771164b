package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kapm/internal/models"
	"kapm/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp mounts the server on a fresh app with a middleware that
// pretends the given user is authenticated.
func newTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}

func userWithRole(role models.Role) *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Profile: &models.Profile{UserID: id, Role: role}}, nil
		},
	}
}

func TestGetPublishedPage(t *testing.T) {
	pages := &pageRepoStub{
		getBySlugFn: func(_ context.Context, slug string) (*models.Page, error) {
			if slug == "o-nas" {
				return &models.Page{ID: 1, Slug: slug, Title: "O nas", IsPublished: true}, nil
			}
			return &models.Page{ID: 2, Slug: slug, IsPublished: false}, nil
		},
	}
	s := &Server{pageService: service.NewPageService(pages)}

	app := fiber.New()
	app.Get("/pages/:slug", s.GetPublishedPage)

	t.Run("published page served", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pages/o-nas", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var page models.Page
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
		assert.Equal(t, "O nas", page.Title)
	})

	t.Run("unpublished page reads as absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pages/szkic", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreatePage_RoleEnforcedThroughResolveActor(t *testing.T) {
	tests := []struct {
		name           string
		role           models.Role
		expectedStatus int
	}{
		{"editor may create", models.RoleEditor, http.StatusCreated},
		{"author forbidden", models.RoleAuthor, http.StatusForbidden},
		{"viewer forbidden", models.RoleViewer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Server{
				userService: service.NewUserService(userWithRole(tt.role)),
				pageService: service.NewPageService(&pageRepoStub{}),
			}
			app := newTestApp(s, 3)
			app.Post("/admin/pages", s.ResolveActor, s.CreatePage)

			body := strings.NewReader(`{"title":"Cennik","content":"Stawki i zasady rozliczeń"}`)
			req := httptest.NewRequest(http.MethodPost, "/admin/pages", body)
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestResolveActor_MissingUser(t *testing.T) {
	s := &Server{userService: service.NewUserService(&userRepoStub{})}

	app := fiber.New()
	app.Get("/admin/pages", s.ResolveActor, func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	t.Run("no authentication", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/pages", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("account deleted after token issued", func(t *testing.T) {
		appAuthed := newTestApp(s, 42)
		appAuthed.Get("/admin/pages", s.ResolveActor, func(c *fiber.Ctx) error {
			return c.SendStatus(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/admin/pages", nil)
		resp, err := appAuthed.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPublicPages(t *testing.T) {
	pages := &pageRepoStub{
		listFn: func(_ context.Context, publishedOnly bool) ([]*models.Page, error) {
			require.True(t, publishedOnly)
			return []*models.Page{
				{ID: 1, Slug: "o-nas", IsPublished: true, ShowInMenu: true},
				{ID: 3, Slug: "regulamin", IsPublished: true, ShowInMenu: false},
			}, nil
		},
		listMenuFn: func(_ context.Context) ([]*models.Page, error) {
			return []*models.Page{
				{ID: 1, Slug: "o-nas", MenuOrder: 1},
				{ID: 2, Slug: "kontakt", MenuOrder: 2},
			}, nil
		},
	}
	s := &Server{pageService: service.NewPageService(pages)}

	app := fiber.New()
	app.Get("/pages", s.ListPublishedPages)
	app.Get("/pages/menu", s.GetMenu)

	t.Run("list includes published pages outside the menu", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pages", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var listed []models.Page
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
		require.Len(t, listed, 2)
		assert.Equal(t, "regulamin", listed[1].Slug)
	})

	t.Run("menu serves only flagged pages", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pages/menu", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var menu []models.Page
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&menu))
		require.Len(t, menu, 2)
		assert.Equal(t, "o-nas", menu[0].Slug)
	})
}
