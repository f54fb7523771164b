// Package bootstrap initializes runtime dependencies shared by the
// server and the seeder commands.
package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"kapm/internal/cache"
	"kapm/internal/config"
	"kapm/internal/database"
	"kapm/internal/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitRuntime connects to the database and Redis. In development it can
// also bootstrap an admin account so a fresh install is usable without
// manual SQL.
func InitRuntime(cfg *config.Config) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May yield a nil client when Redis is unreachable; callers degrade
	// gracefully.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
	}

	return db, r, nil
}

// ensureDevAdmin creates or repairs the development admin account. It
// only runs when APP_ENV is development and DEV_BOOTSTRAP_ADMIN is set.
func ensureDevAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") || !cfg.DevBootstrapAdmin {
		return nil
	}

	username := strings.TrimSpace(cfg.DevAdminUsername)
	if username == "" {
		username = "admin"
	}
	password := cfg.DevAdminPassword
	if password == "" {
		return errors.New("DEV_ADMIN_PASSWORD must be set when DEV_BOOTSTRAP_ADMIN is enabled")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Preload("Profile").Where("username = ?", username).First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Username:    username,
				Email:       username + "@kapm.local",
				Password:    string(hashed),
				IsSuperuser: true,
				Profile:     &models.Profile{Role: models.RoleAdmin},
			}
			return tx.Create(&admin).Error
		case findErr != nil:
			return findErr
		}

		if err := tx.Model(&admin).Update("is_superuser", true).Error; err != nil {
			return err
		}
		if admin.Profile == nil {
			return tx.Create(&models.Profile{UserID: admin.ID, Role: models.RoleAdmin}).Error
		}
		if admin.Profile.Role != models.RoleAdmin {
			return tx.Model(admin.Profile).Update("role", models.RoleAdmin).Error
		}
		return nil
	})
}
