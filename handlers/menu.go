package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"gorm.io/gorm"

	"restaurant-api/config"
	"restaurant-api/models"
	"restaurant-api/store"
)

type categoryRef struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name"`
}

type CreateMenuItemRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description" binding:"required"`
	Price       *float64    `json:"price" binding:"required,gte=0"`
	Category    categoryRef `json:"category" binding:"required"`
	ImageURL    string      `json:"imageUrl"`
	IsAvailable *bool       `json:"isAvailable"`
}

type UpdateMenuItemRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price" binding:"omitempty,gte=0"`
	Category    *categoryRef `json:"category"`
	ImageURL    *string      `json:"imageUrl"`
	IsAvailable *bool        `json:"isAvailable"`
}

// GetMenu returns the full menu, publicly.
func GetMenu(c *gin.Context) {
	items, err := store.MenuItems(config.DB)
	if err != nil {
		rlog.Errorf("listing menu: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, items)
}

// GetFeaturedMenu returns the three newest available items.
func GetFeaturedMenu(c *gin.Context) {
	items, err := store.FeaturedMenuItems(config.DB)
	if err != nil {
		rlog.Errorf("listing featured menu: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, items)
}

// CreateMenuItem adds a menu item (admin only).
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	item := models.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.Category.ID,
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	}
	if err := store.CreateMenuItem(config.DB, &item); err != nil {
		rlog.Errorf("creating menu item: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusCreated, item)
}

// UpdateMenuItem patches a menu item (admin only), leaving omitted
// fields unchanged.
func UpdateMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid menu item id")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	patch := store.MenuPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: req.IsAvailable,
	}
	if req.Category != nil {
		patch.CategoryID = &req.Category.ID
	}

	item, err := store.UpdateMenuItem(config.DB, uint(id), patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "Menu item not found")
		return
	}
	if err != nil {
		rlog.Errorf("updating menu item %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, item)
}

// DeleteMenuItem removes a menu item (admin only).
func DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid menu item id")
		return
	}
	if err := store.DeleteMenuItem(config.DB, uint(id)); err != nil {
		rlog.Errorf("deleting menu item %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondMessage(c, http.StatusOK, "Menu item deleted")
}
