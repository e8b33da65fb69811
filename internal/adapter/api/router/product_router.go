package router

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/adapter/api/handler"
	"chattie/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/v1/products")
	products.Use(authMiddleware.Authenticate)

	products.POST("", productHandler.AddProduct)
	products.GET("/recent", productHandler.ListRecentProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)
}
