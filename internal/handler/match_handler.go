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

// MatchHandler handles swipe and match HTTP requests
type MatchHandler struct {
	service service.MatchService
}

// NewMatchHandler creates a new MatchHandler
func NewMatchHandler(service service.MatchService) *MatchHandler {
	return &MatchHandler{service: service}
}

// Swipe handles POST /matches/swipe
// @Summary Record a swipe and report whether it completed a mutual match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.SwipeRequest true "swipe decision"
// @Success 200 {object} common.APIResponse{data=domain.SwipeResponse}
// @Router /matches/swipe [post]
func (h *MatchHandler) Swipe(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req domain.SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	isMatch, err := h.service.ProcessSwipe(userID, req.SwipedUserID, req.SwipeType)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrSelfSwipe), errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, err.Error(), err)
		case errors.Is(err, common.ErrUserNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to process swipe", err)
		}
		return
	}

	if isMatch {
		middleware.CountMatch()
	}

	common.SuccessResponse(c, &domain.SwipeResponse{Match: isMatch}, nil)
}

// GetMyMatches handles GET /matches/me
// @Summary List the caller's matches
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]domain.MatchResponse}
// @Router /matches/me [get]
func (h *MatchHandler) GetMyMatches(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	matches, err := h.service.GetUserMatches(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load matches", err)
		return
	}

	common.SuccessResponse(c, matches, nil)
}
