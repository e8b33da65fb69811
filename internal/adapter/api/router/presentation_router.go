package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/handler"
	"chattie/internal/adapter/api/middleware"
)

func SetupPresentationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	presentationHandler := handler.GetPresentationHandler()

	presentations := e.Group("/v1/presentations")
	presentations.Use(authMiddleware.Authenticate)

	presentations.POST("", presentationHandler.AddPresentation)
	presentations.GET("", presentationHandler.ListMyPresentations)
}
