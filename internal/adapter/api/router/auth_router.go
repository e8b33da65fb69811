package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/handler"
	"chattie/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, ipLimiter *middleware.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	// Public routes, IP rate limited
	public := e.Group("/v1/auth", ipLimiter.RateLimitMiddleware())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
}
