package repository

import (
	"context"

	"chattie/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// ListByChatID returns a chat's products newest first.
	ListByChatID(ctx context.Context, chatID string) ([]*entity.Product, error)
	// ListRecent returns all products across chats ordered by CreatedAt descending.
	ListRecent(ctx context.Context, limit int) ([]*entity.Product, error)
	CountByChatID(ctx context.Context, chatID string) (int, error)
}
