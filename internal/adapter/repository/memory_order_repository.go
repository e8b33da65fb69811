package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/pkg/errors"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
}

func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[string]*entity.Order),
	}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	stored := *order
	r.orders[order.ID] = &stored

	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}

	result := *order
	return &result, nil
}

func (r *memoryOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.orders[order.ID]
	if !ok {
		return errors.NotFound("Order", nil)
	}

	order.CreatedAt = existing.CreatedAt
	order.UpdatedAt = time.Now()
	stored := *order
	r.orders[order.ID] = &stored

	return nil
}

func (r *memoryOrderRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []*entity.Order
	for _, order := range r.orders {
		if order.BuyerID == userID || order.SellerID == userID {
			result := *order
			orders = append(orders, &result)
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}
