// Package service contains the business logic layer between handlers
// and repositories.
package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"kapm/internal/cache"
	"kapm/internal/models"
	"kapm/internal/repository"
	"kapm/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// AuthService handles registration, login, and token lifecycle.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register creates a new account with the viewer role. Role elevation is
// a separate admin operation.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(input.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(input.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if input.Password != input.Password2 {
		return nil, models.NewValidationError("Passwords do not match")
	}

	if existing, err := s.users.GetByEmail(ctx, input.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Email already registered")
	}
	if existing, err := s.users.GetByUsername(ctx, input.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  string(hashed),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Profile:   &models.Profile{Role: models.RoleViewer},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginInput carries login credentials. Identifier accepts either the
// username or the email address.
type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Login verifies credentials and issues a token pair. The error is the
// same for unknown accounts and wrong passwords so the endpoint does not
// leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.User, *TokenPair, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, nil, models.NewValidationError("Identifier and password are required")
	}

	user, err := s.users.GetByEmail(ctx, input.Identifier)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		user, err = s.users.GetByUsername(ctx, input.Identifier)
		if err != nil {
			return nil, nil, err
		}
	}
	if user == nil {
		return nil, nil, models.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, nil, models.NewUnauthorizedError("Invalid credentials")
	}

	pair, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The spent
// refresh token is blacklisted so each one is single-use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.User, *TokenPair, error) {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return nil, nil, err
	}

	jti, _ := claims["jti"].(string)
	if cache.IsTokenBlacklisted(ctx, jti) {
		return nil, nil, models.NewUnauthorizedError("Refresh token revoked")
	}

	userID, err := subjectID(claims)
	if err != nil {
		return nil, nil, err
	}
	// The account lookup only enriches the response. The token itself
	// authorizes the rotation; a failed lookup degrades to token-only.
	user, lookupErr := s.users.GetByID(ctx, userID)
	if lookupErr != nil {
		user = nil
	}

	if err := cache.BlacklistToken(ctx, jti, remainingTTL(claims)); err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	pair, err := s.issueTokens(userID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout revokes the refresh token. Access tokens are short-lived and
// expire on their own. A token that cannot be parsed is a bad request,
// not a failed authentication; the caller is already authenticated.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.parseToken(refreshToken, "refresh")
	if err != nil {
		return models.NewValidationError("Invalid refresh token")
	}
	jti, _ := claims["jti"].(string)
	if err := cache.BlacklistToken(ctx, jti, remainingTTL(claims)); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ChangePasswordInput carries a password change request.
type ChangePasswordInput struct {
	UserID      uint
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ChangePassword verifies the current password before storing a new hash.
// A fresh token pair is issued so the client does not keep working on
// tokens minted before the change.
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) (*TokenPair, error) {
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return nil, models.NewUnauthorizedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(input.NewPassword); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user.Password = string(hashed)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.issueTokens(user.ID)
}

func (s *AuthService) issueTokens(userID uint) (*TokenPair, error) {
	access, err := s.signToken(userID, "access", accessTokenTTL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	refresh, err := s.signToken(userID, "refresh", refreshTokenTTL)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *AuthService) signToken(userID uint, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"typ": typ,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(tokenString, wantTyp string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid token claims")
	}
	if typ, _ := claims["typ"].(string); typ != wantTyp {
		return nil, models.NewUnauthorizedError("Wrong token type")
	}
	return claims, nil
}

func subjectID(claims jwt.MapClaims) (uint, error) {
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, models.NewUnauthorizedError("Invalid token subject")
	}
	return uint(id), nil
}

func remainingTTL(claims jwt.MapClaims) time.Duration {
	exp, _ := claims["exp"].(float64)
	ttl := time.Until(time.Unix(int64(exp), 0))
	if ttl < 0 {
		return 0
	}
	return ttl
}
