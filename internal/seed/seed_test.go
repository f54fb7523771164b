package seed

import (
	"testing"

	"kapm/internal/database"
	"kapm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSeeder_Run(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)
	require.NoError(t, s.ClearAll())

	require.NoError(t, s.Run(Options{Users: 5, Clients: 3, Posts: 6, Cases: 2, Seed: 11}))

	var userCount, clientCount, postCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.Client{}).Count(&clientCount).Error)
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&postCount).Error)
	assert.Equal(t, int64(5), userCount)
	assert.Equal(t, int64(3), clientCount)
	assert.Equal(t, int64(6), postCount)

	var admin models.User
	require.NoError(t, db.Preload("Profile").Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role())
	assert.True(t, admin.IsSuperuser)

	var bankruptcyCount, restructuringCount, paymentCount int64
	require.NoError(t, db.Model(&models.BankruptcyCase{}).Count(&bankruptcyCount).Error)
	require.NoError(t, db.Model(&models.RestructuringCase{}).Count(&restructuringCount).Error)
	require.NoError(t, db.Model(&models.ArrangementPayment{}).Count(&paymentCount).Error)
	assert.Equal(t, int64(2), bankruptcyCount)
	assert.Equal(t, int64(2), restructuringCount)
	assert.Positive(t, paymentCount)

	// Every restructuring case gets exactly one active version-1 proposal.
	var proposals []models.ArrangementProposal
	require.NoError(t, db.Find(&proposals).Error)
	require.Len(t, proposals, 2)
	for _, p := range proposals {
		assert.Equal(t, 1, p.Version)
		assert.True(t, p.IsActive)
	}
}

func TestSeeder_ClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{Users: 4, Clients: 2, Posts: 3, Cases: 1, Seed: 7}))
	require.NoError(t, s.ClearAll())

	var userCount, caseCount int64
	require.NoError(t, db.Unscoped().Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.BankruptcyCase{}).Count(&caseCount).Error)
	assert.Zero(t, userCount)
	assert.Zero(t, caseCount)
}
