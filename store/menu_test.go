package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"restaurant-api/models"
)

func TestMenuItemsIncludeCategory(t *testing.T) {
	db := newTestDB(t)
	seedMenuItem(t, db, "Burger", 12.50)

	items, err := MenuItems(db)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Burger", items[0].Title)
	assert.NotEmpty(t, items[0].Category.Name)
}

func TestFeaturedMenuItemsThreeNewestAvailable(t *testing.T) {
	db := newTestDB(t)
	hidden := seedMenuItem(t, db, "Secret", 1.00)
	require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", hidden.ID).
		Update("is_available", false).Error)

	var ids []uint
	for i, title := range []string{"A", "B", "C", "D"} {
		item := seedMenuItem(t, db, title, float64(i+1))
		require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", item.ID).
			Update("created_at", time.Now().Add(time.Duration(i)*time.Second)).Error)
		ids = append(ids, item.ID)
	}

	featured, err := FeaturedMenuItems(db)
	require.NoError(t, err)
	require.Len(t, featured, 3)
	// Newest first: D, C, B. The unavailable item never appears.
	assert.Equal(t, ids[3], featured[0].ID)
	assert.Equal(t, ids[2], featured[1].ID)
	assert.Equal(t, ids[1], featured[2].ID)
}

func TestUpdateMenuItemPatchSemantics(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Burger", 12.50)

	price := 14.00
	updated, err := UpdateMenuItem(db, item.ID, MenuPatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 14.00, updated.Price)
	assert.Equal(t, "Burger", updated.Title)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	db := newTestDB(t)
	title := "Ghost"
	_, err := UpdateMenuItem(db, 99, MenuPatch{Title: &title})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMenuItem(t *testing.T) {
	db := newTestDB(t)
	item := seedMenuItem(t, db, "Burger", 12.50)
	require.NoError(t, DeleteMenuItem(db, item.ID))

	var count int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
