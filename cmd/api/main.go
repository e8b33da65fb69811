package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"chattie/internal/adapter/api"
	"chattie/internal/adapter/api/handler"
	apimiddleware "chattie/internal/adapter/api/middleware"
	"chattie/internal/adapter/api/router"
	"chattie/internal/adapter/repository"
	"chattie/internal/infrastructure/auth"
	"chattie/internal/infrastructure/websocket"
	"chattie/internal/seed"
	"chattie/internal/usecase"
	"chattie/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// In-memory store: everything resets on restart.
	userRepo := repository.NewMemoryUserRepository()
	chatRepo := repository.NewMemoryChatRepository()
	productRepo := repository.NewMemoryProductRepository()
	orderRepo := repository.NewMemoryOrderRepository()
	storyRepo := repository.NewMemoryStoryRepository()
	presentationRepo := repository.NewMemoryPresentationRepository()

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, productRepo, wsManager)
	productUseCase := usecase.NewProductUseCase(productRepo, chatRepo, wsManager)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, userRepo, wsManager)
	storyUseCase := usecase.NewStoryUseCase(storyRepo, userRepo)
	presentationUseCase := usecase.NewPresentationUseCase(presentationRepo, userRepo)

	seeder := seed.NewSeeder(userRepo, chatRepo, productRepo, storyRepo, presentationRepo)
	if err := seeder.Run(ctx); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	handler.Setup(
		authUseCase,
		userUseCase,
		chatUseCase,
		productUseCase,
		orderUseCase,
		storyUseCase,
		presentationUseCase,
	)
	handler.SetupHealthHandler()
	handler.SetupWebSocketHandler(wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenManager)
	ipLimiter := apimiddleware.NewRateLimiter(30, time.Minute)

	router.Setup(e, authMiddleware, ipLimiter)

	log.Printf("Starting server on port %s (%s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
