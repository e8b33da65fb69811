package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/handler"
	"chattie/internal/adapter/api/middleware"
)

func SetupStoryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	storyHandler := handler.GetStoryHandler()

	stories := e.Group("/v1/stories")
	stories.Use(authMiddleware.Authenticate)

	stories.POST("", storyHandler.AddStory)
	stories.GET("", storyHandler.ListStories)
}
