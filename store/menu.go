package store

import (
	"gorm.io/gorm"

	"restaurant-api/models"
)

// MenuItems returns the whole menu with categories, newest first.
func MenuItems(db *gorm.DB) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	err := db.Preload("Category").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FeaturedMenuItems returns the three newest available items.
func FeaturedMenuItems(db *gorm.DB) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	err := db.Preload("Category").
		Where("is_available = ?", true).
		Order("created_at DESC").
		Limit(3).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func CreateMenuItem(db *gorm.DB, item *models.MenuItem) error {
	if err := db.Create(item).Error; err != nil {
		return err
	}
	return db.Preload("Category").First(item, item.ID).Error
}

// MenuPatch carries partial menu item updates; nil fields keep their
// stored value.
type MenuPatch struct {
	Title       *string
	Description *string
	Price       *float64
	CategoryID  *uint
	ImageURL    *string
	IsAvailable *bool
}

func UpdateMenuItem(db *gorm.DB, id uint, patch MenuPatch) (*models.MenuItem, error) {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.IsAvailable != nil {
		updates["is_available"] = *patch.IsAvailable
	}

	if len(updates) > 0 {
		res := db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}

	var item models.MenuItem
	if err := db.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func DeleteMenuItem(db *gorm.DB, id uint) error {
	return db.Delete(&models.MenuItem{}, id).Error
}
