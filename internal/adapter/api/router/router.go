package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, ipLimiter *middleware.RateLimiter) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, authMiddleware, ipLimiter)
	SetupUserRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupStoryRouter(e, authMiddleware)
	SetupPresentationRouter(e, authMiddleware)
	SetupWebSocketRouter(e, authMiddleware)
}
