package usecase

import (
	"context"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/internal/infrastructure/ratelimit"
	ws "chattie/internal/infrastructure/websocket"
	"chattie/pkg/errors"
	"chattie/pkg/logger"
)

// Flat shipping fee in IDR, applied to every order.
const shippingCost = 15000

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	wsManager   *ws.Manager
	rateLimiter *ratelimit.RateLimiter
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	wsManager *ws.Manager,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		wsManager:   wsManager,
		rateLimiter: ratelimit.NewRateLimiter(),
	}
}

type CreateOrderInput struct {
	ProductID     string
	Qty           int
	PaymentMethod string
}

// CreateOrder snapshots the product into the order so later edits or
// deletion of the listing never rewrite order history.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	allowed, waitTime := uc.rateLimiter.Allow(buyerID, "create_order")
	if !allowed {
		logger.Warn("CreateOrder rate limited: user %s must wait %v", buyerID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before placing another order", waitTime)
	}

	if input.Qty <= 0 {
		return nil, errors.BadRequest("Quantity must be positive", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if product.SellerID == buyerID {
		return nil, errors.BadRequest("Cannot order your own product", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, buyerID); err != nil {
		return nil, errors.NotFound("Buyer", err)
	}

	snapshot := entity.ProductSnapshot{
		ProductID:   product.ID,
		ChatID:      product.ChatID,
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
	}

	order := &entity.Order{
		BuyerID:         buyerID,
		SellerID:        product.SellerID,
		ProductSnapshot: snapshot,
		Qty:             input.Qty,
		ShippingCost:    shippingCost,
		TotalPrice:      snapshot.Price*int64(input.Qty) + shippingCost,
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   entity.PaymentPending,
		ShippingStatus:  entity.ShippingAwaitingConfirmation,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s created: buyer=%s seller=%s product=%s qty=%d total=%d",
		order.ID, buyerID, order.SellerID, snapshot.Name, order.Qty, order.TotalPrice)

	uc.wsManager.NotifyNewOrder(order.SellerID, order)

	return order, nil
}

// ConfirmOrder is the seller accepting the order. Menunggu Konfirmasi →
// Menunggu Pembayaran.
func (uc *OrderUseCase) ConfirmOrder(ctx context.Context, callerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.SellerID != callerID {
		return nil, errors.Forbidden("Only the seller can confirm this order", nil)
	}
	if order.ShippingStatus != entity.ShippingAwaitingConfirmation {
		return nil, errors.BadRequest("Order is not awaiting confirmation", nil)
	}

	order.ShippingStatus = entity.ShippingAwaitingPayment

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.wsManager.NotifyNewOrder(order.BuyerID, order)

	return order, nil
}

// UploadPaymentProof is the buyer submitting payment. Menunggu Pembayaran →
// Dikemas; payment moves pending → paid.
func (uc *OrderUseCase) UploadPaymentProof(ctx context.Context, callerID, orderID, proofURL string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID {
		return nil, errors.Forbidden("Only the buyer can upload payment proof", nil)
	}
	if order.ShippingStatus != entity.ShippingAwaitingPayment {
		return nil, errors.BadRequest("Order is not awaiting payment", nil)
	}
	if proofURL == "" {
		return nil, errors.BadRequest("Payment proof is required", nil)
	}

	order.PaymentProof = proofURL
	order.PaymentStatus = entity.PaymentPaid
	order.ShippingStatus = entity.ShippingPacking

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.wsManager.NotifyNewOrder(order.SellerID, order)

	return order, nil
}

// ShipOrder is the seller handing the package over, which also confirms the
// payment proof. Dikemas → Dikirim.
func (uc *OrderUseCase) ShipOrder(ctx context.Context, callerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.SellerID != callerID {
		return nil, errors.Forbidden("Only the seller can ship this order", nil)
	}
	if order.ShippingStatus != entity.ShippingPacking {
		return nil, errors.BadRequest("Order is not being packed", nil)
	}

	order.PaymentStatus = entity.PaymentConfirmed
	order.ShippingStatus = entity.ShippingShipped

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.wsManager.NotifyNewOrder(order.BuyerID, order)

	return order, nil
}

// CompleteOrder is the buyer acknowledging delivery. Dikirim → Selesai.
func (uc *OrderUseCase) CompleteOrder(ctx context.Context, callerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID {
		return nil, errors.Forbidden("Only the buyer can complete this order", nil)
	}
	if order.ShippingStatus != entity.ShippingShipped {
		return nil, errors.BadRequest("Order has not been shipped", nil)
	}

	order.ShippingStatus = entity.ShippingCompleted

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.wsManager.NotifyNewOrder(order.SellerID, order)

	return order, nil
}

func (uc *OrderUseCase) GetOrderByID(ctx context.Context, callerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID && order.SellerID != callerID {
		return nil, errors.Forbidden("You are not a party to this order", nil)
	}

	return order, nil
}

// ListOrdersByUser returns orders where the user is buyer or seller,
// newest first.
func (uc *OrderUseCase) ListOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByUserID(ctx, userID)
}
