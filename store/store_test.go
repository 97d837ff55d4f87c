package store

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/config"
	"restaurant-api/models"
)

// newTestDB opens a per-test in-memory database with foreign keys
// enforced, migrated to the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: "x",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedMenuItem(t *testing.T, db *gorm.DB, title string, price float64) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Title:       title,
		Description: title + " description",
		Price:       price,
		CategoryID:  1, // seeded by Migrate
		IsAvailable: true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
