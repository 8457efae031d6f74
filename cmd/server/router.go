package main

import (
	"github.com/gin-gonic/gin"

	"github.com/thereayou/classlink/internal/handlers"
	"github.com/thereayou/classlink/internal/middleware"
	"github.com/thereayou/classlink/internal/services"
	"github.com/thereayou/classlink/pkg/auth"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Messages *handlers.HTTPMessageHandler
	WS       *handlers.WebSocketHandler
	Health   *handlers.HealthHandler
}

func APIEndpoints(r *gin.Engine, h Handlers, jwtManager *auth.JWTManager, blacklist services.TokenBlacklist) {
	requireAuth := middleware.AuthMiddleware(jwtManager, blacklist)

	r.GET("/healthz", h.Health.Health)
	r.GET("/ws", middleware.WSAuthMiddleware(jwtManager, blacklist), h.WS.HandleWebSocket)

	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", requireAuth, h.Auth.Logout)
		authGroup.GET("/verify", requireAuth, h.Auth.Verify)
	}

	// API endpoints
	messages := r.Group("/api/messages", requireAuth)
	{
		messages.POST("", h.Messages.CreateMessage)
		messages.GET("/classroom/:classroomId", h.Messages.GetClassroomMessages)
		messages.GET("/private/:receiverId", h.Messages.GetPrivateMessages)
	}
}
