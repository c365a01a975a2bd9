package services

import (
	"testing"
	"time"

	"github.com/corems/corems-backend/internal/config"
	"github.com/corems/corems-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupDB creates a disposable in-memory database per test.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection to ":memory:" would see a different empty
	// database, so pin the pool to one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.CategoryAssignment{},
		&models.Complaint{},
		&models.StatusUpdate{},
		&models.RefreshToken{},
	))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	cat := &models.Category{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func assignCategory(t *testing.T, db *gorm.DB, user *models.User, cat *models.Category) {
	t.Helper()
	require.NoError(t, db.Create(&models.CategoryAssignment{
		UserID:     user.ID,
		CategoryID: cat.ID,
	}).Error)
}

func createComplaint(t *testing.T, db *gorm.DB, author *models.User, title, category string) *models.Complaint {
	t.Helper()
	complaint := &models.Complaint{
		ID:          uuid.New(),
		UserID:      author.ID,
		Title:       title,
		Description: "description of " + title,
		Category:    category,
		Status:      models.StatusPending,
	}
	require.NoError(t, db.Create(complaint).Error)
	return complaint
}
