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

// ChatHandler handles chat room and message HTTP requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// GetMyChatRooms handles GET /chat/rooms
// @Summary List the caller's chat rooms
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} common.APIResponse{data=[]domain.ChatRoomResponse}
// @Router /chat/rooms [get]
func (h *ChatHandler) GetMyChatRooms(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	rooms, err := h.service.GetUserChatRooms(userID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load chat rooms", err)
		return
	}

	common.SuccessResponse(c, rooms, nil)
}

// GetMessages handles GET /chat/rooms/:id/messages
// @Summary Read the full message history of a room
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path int true "chat room id"
// @Success 200 {object} common.APIResponse{data=[]domain.MessageResponse}
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /chat/rooms/{id}/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	chatRoomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid chat room id", err)
		return
	}

	messages, err := h.service.GetMessages(chatRoomID, userID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrChatRoomNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Chat room not found", err)
		case errors.Is(err, common.ErrNotParticipant):
			common.ErrorResponse(c, http.StatusForbidden, "You are not a participant of this chat room", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load messages", err)
		}
		return
	}

	common.SuccessResponse(c, messages, nil)
}

// SendMessage handles POST /chat/send
// @Summary Send a message to a chat room
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.SendMessageRequest true "message"
// @Success 201 {object} common.APIResponse{data=domain.MessageResponse}
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /chat/send [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	msg, err := h.service.SendMessage(req.ChatRoomID, userID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrChatRoomNotFound), errors.Is(err, common.ErrUserNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Chat room not found", err)
		case errors.Is(err, common.ErrNotParticipant):
			common.ErrorResponse(c, http.StatusForbidden, "You are not a participant of this chat room", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to send message", err)
		}
		return
	}

	common.CreatedResponse(c, msg)
}
