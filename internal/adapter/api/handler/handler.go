package handler

import (
	"chattie/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	chatHandler         *ChatHandler
	productHandler      *ProductHandler
	orderHandler        *OrderHandler
	storyHandler        *StoryHandler
	presentationHandler *PresentationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	chatUseCase *usecase.ChatUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	storyUseCase *usecase.StoryUseCase,
	presentationUseCase *usecase.PresentationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	storyHandler = NewStoryHandler(storyUseCase)
	presentationHandler = NewPresentationHandler(presentationUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetStoryHandler() *StoryHandler {
	return storyHandler
}

func GetPresentationHandler() *PresentationHandler {
	return presentationHandler
}
