package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studylink/studylink-backend/internal/common"
	"github.com/studylink/studylink-backend/internal/domain"
	"github.com/studylink/studylink-backend/internal/middleware"
	"github.com/studylink/studylink-backend/internal/service"
)

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetMyProfile handles GET /users/me/profile
// @Summary Return the caller's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Router /users/me/profile [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	h.respondProfile(c, userID)
}

// GetProfile handles GET /users/:id/profile
// @Summary Return another user's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Router /users/{id}/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid user id", err)
		return
	}

	h.respondProfile(c, targetID)
}

func (h *ProfileHandler) respondProfile(c *gin.Context, userID int64) {
	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Profile not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}

// UpdateMyProfile handles PUT /users/me/profile
// @Summary Update the caller's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.UpdateProfileRequest true "profile fields"
// @Success 200 {object} common.APIResponse{data=domain.UserProfile}
// @Router /users/me/profile [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := h.service.UpdateProfile(userID, &req)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}
