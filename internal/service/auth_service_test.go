package service

import (
	"context"
	"testing"

	"kapm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-signing"

func TestAuthService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("weak password rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(&userRepoStub{}, testSecret)
		_, err := svc.Register(ctx, RegisterInput{
			Username: "jkowalski", Email: "jan@example.com", Password: "short", Password2: "short",
		})
		assertValidationError(t, err)
	})

	t.Run("password confirmation mismatch rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(&userRepoStub{}, testSecret)
		_, err := svc.Register(ctx, RegisterInput{
			Username: "jkowalski", Email: "jan@example.com",
			Password: "Bardzo-Silne-Haslo-123!", Password2: "Inne-Haslo-456!",
		})
		assertValidationError(t, err)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		t.Parallel()
		users := &userRepoStub{
			getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
				return &models.User{ID: 1, Email: email}, nil
			},
		}
		svc := NewAuthService(users, testSecret)
		_, err := svc.Register(ctx, RegisterInput{
			Username: "jkowalski", Email: "jan@example.com",
			Password: "Bardzo-Silne-Haslo-123!", Password2: "Bardzo-Silne-Haslo-123!",
		})
		assertValidationError(t, err)
	})

	t.Run("new accounts start as viewer with hashed password", func(t *testing.T) {
		t.Parallel()
		var created *models.User
		users := &userRepoStub{
			createFn: func(_ context.Context, u *models.User) error {
				created = u
				return nil
			},
		}
		svc := NewAuthService(users, testSecret)
		_, err := svc.Register(ctx, RegisterInput{
			Username: "jkowalski", Email: "jan@example.com",
			Password: "Bardzo-Silne-Haslo-123!", Password2: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		require.NotNil(t, created.Profile)
		assert.Equal(t, models.RoleViewer, created.Profile.Role)
		assert.NotEqual(t, "Bardzo-Silne-Haslo-123!", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("Bardzo-Silne-Haslo-123!")))
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Bardzo-Silne-Haslo-123!"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.User{ID: 42, Username: "jkowalski", Email: "jan@example.com", Password: string(hashed)}

	users := &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, nil
		},
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			if username == account.Username {
				return account, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(users, testSecret)

	t.Run("by email", func(t *testing.T) {
		t.Parallel()
		user, pair, err := svc.Login(ctx, LoginInput{Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!"})
		require.NoError(t, err)
		assert.Equal(t, uint(42), user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	})

	t.Run("by username", func(t *testing.T) {
		t.Parallel()
		_, pair, err := svc.Login(ctx, LoginInput{Identifier: "jkowalski", Password: "Bardzo-Silne-Haslo-123!"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		_, _, err := svc.Login(ctx, LoginInput{Identifier: "jan@example.com", Password: "wrong"})
		assertUnauthorizedError(t, err)
	})

	t.Run("unknown account gets the same error", func(t *testing.T) {
		t.Parallel()
		_, _, err := svc.Login(ctx, LoginInput{Identifier: "nobody@example.com", Password: "whatever"})
		assertUnauthorizedError(t, err)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := &userRepoStub{}
	svc := NewAuthService(users, testSecret)

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		t.Parallel()
		_, pair, err := NewAuthService(loginReadyRepo(t), testSecret).Login(ctx, LoginInput{
			Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)
		_, _, err = svc.Refresh(ctx, pair.AccessToken)
		assertUnauthorizedError(t, err)
	})

	t.Run("valid refresh token issues a new pair", func(t *testing.T) {
		t.Parallel()
		_, pair, err := NewAuthService(loginReadyRepo(t), testSecret).Login(ctx, LoginInput{
			Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)
		user, fresh, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.NotEmpty(t, fresh.AccessToken)
		assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)
	})

	t.Run("deleted account still rotates, token-only", func(t *testing.T) {
		t.Parallel()
		_, pair, err := NewAuthService(loginReadyRepo(t), testSecret).Login(ctx, LoginInput{
			Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)

		gone := &userRepoStub{getByIDFn: func(context.Context, uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", 42)
		}}
		user, fresh, err := NewAuthService(gone, testSecret).Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		assert.Nil(t, user)
		assert.NotEmpty(t, fresh.AccessToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		t.Parallel()
		_, _, err := svc.Refresh(ctx, "not.a.jwt")
		assertUnauthorizedError(t, err)
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		t.Parallel()
		_, pair, err := NewAuthService(loginReadyRepo(t), "different-secret").Login(ctx, LoginInput{
			Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)
		_, _, err = svc.Refresh(ctx, pair.RefreshToken)
		assertUnauthorizedError(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewAuthService(&userRepoStub{}, testSecret)

	t.Run("malformed token is a bad request", func(t *testing.T) {
		t.Parallel()
		err := svc.Logout(ctx, "not-a-jwt")
		assertValidationError(t, err)
	})

	t.Run("access token is a bad request", func(t *testing.T) {
		t.Parallel()
		_, pair, err := NewAuthService(loginReadyRepo(t), testSecret).Login(ctx, LoginInput{
			Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)
		assertValidationError(t, svc.Logout(ctx, pair.AccessToken))
	})

	t.Run("valid refresh token logs out", func(t *testing.T) {
		t.Parallel()
		_, pair, err := NewAuthService(loginReadyRepo(t), testSecret).Login(ctx, LoginInput{
			Identifier: "jan@example.com", Password: "Bardzo-Silne-Haslo-123!",
		})
		require.NoError(t, err)
		assert.NoError(t, svc.Logout(ctx, pair.RefreshToken))
	})
}

func loginReadyRepo(t *testing.T) *userRepoStub {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Bardzo-Silne-Haslo-123!"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.User{ID: 42, Username: "jkowalski", Email: "jan@example.com", Password: string(hashed)}
	return &userRepoStub{
		getByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			if email == account.Email {
				return account, nil
			}
			return nil, nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return account, nil
		},
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Stare-Haslo-123!abc"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &models.User{ID: 1, Password: string(hashed)}
	var saved *models.User

	users := &userRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.User, error) {
			return account, nil
		},
		updateFn: func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		},
	}
	svc := NewAuthService(users, testSecret)

	t.Run("wrong current password", func(t *testing.T) {
		_, err := svc.ChangePassword(ctx, ChangePasswordInput{UserID: 1, OldPassword: "nope", NewPassword: "Nowe-Haslo-123!abc"})
		assertUnauthorizedError(t, err)
	})

	t.Run("weak new password", func(t *testing.T) {
		_, err := svc.ChangePassword(ctx, ChangePasswordInput{UserID: 1, OldPassword: "Stare-Haslo-123!abc", NewPassword: "short"})
		assertValidationError(t, err)
	})

	t.Run("success stores a new hash and reissues tokens", func(t *testing.T) {
		tokens, err := svc.ChangePassword(ctx, ChangePasswordInput{UserID: 1, OldPassword: "Stare-Haslo-123!abc", NewPassword: "Nowe-Haslo-123!abc"})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("Nowe-Haslo-123!abc")))
		require.NotNil(t, tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})
}
