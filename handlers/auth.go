package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/romana/rlog"
	"golang.org/x/crypto/bcrypt"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"
)

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
	Phone    string          `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and returns a fresh token.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleAdmin && role != models.RoleClient {
		respondError(c, http.StatusBadRequest, "Invalid role. Must be ADMIN or CLIENT")
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
		Role:     role,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := store.CreateUser(config.DB, &user); err != nil {
		rlog.Errorf("creating user: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		rlog.Errorf("signing token: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(c, http.StatusCreated, gin.H{"token": token, "user": user.Summary()})
}

// Login checks credentials and returns a token plus user summary.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := store.UserByEmail(config.DB, req.Email)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !user.IsActive {
		respondError(c, http.StatusUnauthorized, "Account disabled. Contact an administrator")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		rlog.Errorf("signing token: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(c, http.StatusOK, gin.H{"token": token, "user": user.Summary()})
}

// Verify echoes the authenticated caller's summary; the middleware has
// already validated the token.
func Verify(c *gin.Context) {
	user, err := store.UserByID(config.DB, middleware.GetUserID(c))
	if err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{"user": user.Summary()})
}
