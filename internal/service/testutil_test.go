package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/leon37/FinLedger/internal/infrastructure/database"
	"github.com/leon37/FinLedger/internal/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的 SQLite 库，表结构和生产保持一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.expire_minutes", 30)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Email:          username + "@example.com",
		Username:       username,
		HashedPassword: string(hash),
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, userID uint, name, categoryType string) *model.Category {
	t.Helper()

	c := &model.Category{
		UserID:       userID,
		Name:         name,
		CategoryType: categoryType,
		IsActive:     true,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func testCtx() context.Context {
	return context.Background()
}
