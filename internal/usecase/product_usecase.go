package usecase

import (
	"context"
	"fmt"
	"time"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	ws "chattie/internal/infrastructure/websocket"
	"chattie/pkg/errors"
	"chattie/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	chatRepo    repository.ChatRepository
	wsManager   *ws.Manager
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	chatRepo repository.ChatRepository,
	wsManager *ws.Manager,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		chatRepo:    chatRepo,
		wsManager:   wsManager,
	}
}

type AddProductInput struct {
	ChatID      string
	Name        string
	Description string
	Price       int64
	ImageURL    string
}

type UpdateProductInput struct {
	Name        string
	Description string
	Price       int64
	ImageURL    string
}

// AddProduct lists a product in a group chat. The caller becomes the seller,
// and a companion "product" message announces the listing in the chat.
func (uc *ProductUseCase) AddProduct(ctx context.Context, sellerID string, input AddProductInput) (*entity.Product, error) {
	chat, err := uc.chatRepo.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if chat.Type != "group" {
		return nil, errors.BadRequest("Products can only be listed in group chats", nil)
	}
	if !chat.HasParticipant(sellerID) {
		return nil, errors.Forbidden("Seller is not a participant in this chat", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	product := &entity.Product{
		ChatID:      input.ChatID,
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	announcement := &entity.Message{
		ChatID:   input.ChatID,
		SenderID: sellerID,
		Body:     fmt.Sprintf("New item for sale: %s", input.Name),
		Type:     "product",
		Meta: map[string]interface{}{
			"product_id": product.ID,
			"price":      product.Price,
			"image_url":  product.ImageURL,
		},
		Delivered: true,
		CreatedAt: time.Now(),
	}
	if err := uc.chatRepo.CreateMessage(ctx, announcement); err != nil {
		logger.Warn("Failed to announce product %s in chat %s: %v", product.ID, input.ChatID, err)
	} else {
		chat.LastMessage = announcement.Body
		chat.LastMessageAt = announcement.CreatedAt
		if err := uc.chatRepo.Update(ctx, chat); err == nil {
			if err := uc.chatRepo.MoveToFront(ctx, chat.ID); err != nil {
				logger.Warn("Failed to promote chat %s after listing: %v", chat.ID, err)
			}
		}
		uc.wsManager.NotifyNewMessage(input.ChatID, announcement, sellerID)
	}

	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, sellerID, productID string, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != sellerID {
		return nil, errors.Forbidden("Only the seller can edit this product", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Price must not be negative", nil)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.ImageURL = input.ImageURL

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes the listing. Orders already placed keep their
// snapshot untouched.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, sellerID, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	if product.SellerID != sellerID {
		return errors.Forbidden("Only the seller can delete this product", nil)
	}

	return uc.productRepo.Delete(ctx, productID)
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, productID string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, productID)
}

func (uc *ProductUseCase) ListByChatID(ctx context.Context, chatID string) ([]*entity.Product, error) {
	return uc.productRepo.ListByChatID(ctx, chatID)
}

// ListRecentProducts returns the newest listings across all chats.
func (uc *ProductUseCase) ListRecentProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	return uc.productRepo.ListRecent(ctx, limit)
}
