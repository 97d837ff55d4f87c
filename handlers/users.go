package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"
)

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

// UpdateUser patches a profile. Admins may touch any user's restricted
// fields (email, active flag); everyone else may only rename themselves
// or change their phone.
func UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	callerID := middleware.GetUserID(c)
	isAdmin := middleware.GetRole(c) == models.RoleAdmin
	if uint(userID) != callerID && !isAdmin {
		respondError(c, http.StatusForbidden, "You cannot update this profile")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	patch := store.UserPatch{Name: req.Name, Phone: req.Phone}
	if isAdmin {
		patch.Email = req.Email
		patch.IsActive = req.IsActive
	}

	user, err := store.UpdateUser(config.DB, uint(userID), patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		rlog.Errorf("updating user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, user)
}

// GetClients lists CLIENT-role users (admin only).
func GetClients(c *gin.Context) {
	limit, offset := pagination(c)
	clients, err := store.Clients(config.DB, limit, offset)
	if err != nil {
		rlog.Errorf("listing clients: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusOK, clients)
}

// CreateClient lets an admin open a CLIENT account directly.
func CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := store.UserByEmail(config.DB, req.Email); err == nil {
		respondError(c, http.StatusBadRequest, "Email is already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		rlog.Errorf("hashing password: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleClient,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := store.CreateUser(config.DB, &user); err != nil {
		rlog.Errorf("creating client: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondData(c, http.StatusCreated, user)
}

// DeleteUser removes an account (admin only).
func DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	err = store.DeleteUser(config.DB, uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		rlog.Errorf("deleting user %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	respondMessage(c, http.StatusOK, "User deleted")
}
