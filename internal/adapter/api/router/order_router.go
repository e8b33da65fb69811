package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/handler"
	"chattie/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.POST("/:id/confirm", orderHandler.ConfirmOrder)
	orders.POST("/:id/payment-proof", orderHandler.UploadPaymentProof)
	orders.POST("/:id/ship", orderHandler.ShipOrder)
	orders.POST("/:id/complete", orderHandler.CompleteOrder)
}
