package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/studylink/studylink-backend/internal/handler"
	"github.com/studylink/studylink-backend/internal/middleware"
	"github.com/studylink/studylink-backend/pkg/jwt"
)

// Handlers groups the API handlers for route registration
type Handlers struct {
	Auth    *handler.AuthHandler
	Match   *handler.MatchHandler
	Chat    *handler.ChatHandler
	Profile *handler.ProfileHandler
}

// Setup registers all API routes
func Setup(router *gin.Engine, h *Handlers, jwtManager *jwt.Manager, redisClient *redis.Client) {
	api := router.Group("/api")
	auth := middleware.JWTAuth(jwtManager)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.RefreshToken)
	authGroup.GET("/me", auth, h.Auth.GetMe)

	// Matches
	matches := api.Group("/matches")
	matches.Use(auth)
	matches.POST("/swipe", middleware.RateLimitPerUser(redisClient, 60), h.Match.Swipe)
	matches.GET("/me", h.Match.GetMyMatches)

	// Chat
	chat := api.Group("/chat")
	chat.Use(auth)
	chat.GET("/rooms", h.Chat.GetMyChatRooms)
	chat.GET("/rooms/:id/messages", h.Chat.GetMessages)
	chat.POST("/send", h.Chat.SendMessage)

	// Profiles
	users := api.Group("/users")
	users.Use(auth)
	users.GET("/me/profile", h.Profile.GetMyProfile)
	users.PUT("/me/profile", h.Profile.UpdateMyProfile)
	users.GET("/:id/profile", h.Profile.GetProfile)
}
