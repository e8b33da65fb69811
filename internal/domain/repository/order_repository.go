package repository

import (
	"context"

	"chattie/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// ListByUserID returns orders where the user is buyer or seller,
	// newest first.
	ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error)
}
