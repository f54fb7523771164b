package bootstrap

import (
	"testing"

	"kapm/internal/config"
	"kapm/internal/database"
	"kapm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupBootstrapDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestEnsureDevAdmin_CreatesAccount(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{
		Env:               "development",
		DevBootstrapAdmin: true,
		DevAdminUsername:  "admin",
		DevAdminPassword:  "let-me-in",
	}

	require.NoError(t, ensureDevAdmin(cfg, db))

	var admin models.User
	require.NoError(t, db.Preload("Profile").Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsSuperuser)
	assert.Equal(t, models.RoleAdmin, admin.Role())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("let-me-in")))
}

func TestEnsureDevAdmin_RepairsDemotedAccount(t *testing.T) {
	db := setupBootstrapDB(t)
	require.NoError(t, db.Create(&models.User{
		Username: "admin",
		Email:    "admin@kapm.local",
		Password: "x",
		Profile:  &models.Profile{Role: models.RoleViewer},
	}).Error)

	cfg := &config.Config{
		Env:               "development",
		DevBootstrapAdmin: true,
		DevAdminUsername:  "admin",
		DevAdminPassword:  "let-me-in",
	}
	require.NoError(t, ensureDevAdmin(cfg, db))

	var admin models.User
	require.NoError(t, db.Preload("Profile").Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsSuperuser)
	assert.Equal(t, models.RoleAdmin, admin.Role())
}

func TestEnsureDevAdmin_SkippedOutsideDevelopment(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{
		Env:               "production",
		DevBootstrapAdmin: true,
		DevAdminPassword:  "let-me-in",
	}

	require.NoError(t, ensureDevAdmin(cfg, db))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnsureDevAdmin_RequiresPassword(t *testing.T) {
	db := setupBootstrapDB(t)
	cfg := &config.Config{
		Env:               "development",
		DevBootstrapAdmin: true,
	}
	assert.Error(t, ensureDevAdmin(cfg, db))
}
