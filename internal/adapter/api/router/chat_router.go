package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/handler"
	"chattie/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(authMiddleware.Authenticate)

	chats.POST("/group", chatHandler.CreateGroupChat)
	chats.GET("", chatHandler.ListChats)
	chats.GET("/stores", chatHandler.ListStores)
	chats.GET("/:id", chatHandler.GetChat)
	chats.PUT("/:id", chatHandler.UpdateGroupChat)
	chats.PATCH("/:id/background", chatHandler.UpdateChatBackground)
	chats.GET("/:id/messages", chatHandler.ListMessages)
	chats.POST("/:id/messages", chatHandler.SendMessage)
}
