package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
	"github.com/studylink/studylink-backend/internal/middleware"
	"github.com/studylink/studylink-backend/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "registration data"
// @Success 201 {object} common.APIResponse{data=domain.UserResponse}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "Email is already in use", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	common.CreatedResponse(c, user)
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.LoginRequest true "credentials"
// @Success 200 {object} common.APIResponse{data=service.LoginResponse}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// RefreshToken handles POST /auth/refresh
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} common.APIResponse{data=service.TokenPair}
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	pair, err := h.service.RefreshToken(req.RefreshToken)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid refresh token", err)
		return
	}

	common.SuccessResponse(c, pair, nil)
}

// GetMe handles GET /auth/me
// @Summary Return the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=domain.UserResponse}
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	user, err := h.service.GetMe(userID)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load user", err)
		return
	}

	common.SuccessResponse(c, user, nil)
}
