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

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	byChat   map[string][]string // newest first
}

func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]*entity.Product),
		byChat:   make(map[string][]string),
	}
}

func (r *memoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	stored := *product
	r.products[product.ID] = &stored
	r.byChat[product.ChatID] = append([]string{product.ID}, r.byChat[product.ChatID]...)

	return nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}

	result := *product
	return &result, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return errors.NotFound("Product", nil)
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	stored := *product
	r.products[product.ID] = &stored

	return nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}

	delete(r.products, id)
	ids := r.byChat[product.ChatID]
	for i, pid := range ids {
		if pid == id {
			r.byChat[product.ChatID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	return nil
}

func (r *memoryProductRepository) ListByChatID(ctx context.Context, chatID string) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byChat[chatID]
	products := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		result := *r.products[id]
		products = append(products, &result)
	}

	return products, nil
}

func (r *memoryProductRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		result := *product
		products = append(products, &result)
	}

	// Explicit creation timestamp ordering, newest first.
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}

	return products, nil
}

func (r *memoryProductRepository) CountByChatID(ctx context.Context, chatID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byChat[chatID]), nil
}
