package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chattie/internal/adapter/repository"
	"chattie/internal/domain/entity"
	ws "chattie/internal/infrastructure/websocket"
	"chattie/pkg/errors"
)

type orderTestEnv struct {
	uc       *OrderUseCase
	products *ProductUseCase
	buyer    *entity.User
	seller   *entity.User
	product  *entity.Product
}

func newOrderTestEnv(t *testing.T) *orderTestEnv {
	t.Helper()
	ctx := context.Background()

	userRepo := repository.NewMemoryUserRepository()
	chatRepo := repository.NewMemoryChatRepository()
	productRepo := repository.NewMemoryProductRepository()
	orderRepo := repository.NewMemoryOrderRepository()
	wsManager := ws.NewManager()

	seller := &entity.User{Email: "tania@chattie.id", Name: "Tania Kusuma", Role: "business"}
	buyer := &entity.User{Email: "eliza@chattie.id", Name: "Eliza Sari", Role: "regular"}
	require.NoError(t, userRepo.Create(ctx, seller))
	require.NoError(t, userRepo.Create(ctx, buyer))

	chat := &entity.Chat{
		Type:         "group",
		Name:         "Toko Satu",
		Participants: []string{seller.ID, buyer.ID},
	}
	require.NoError(t, chatRepo.Create(ctx, chat))

	products := NewProductUseCase(productRepo, chatRepo, wsManager)
	product, err := products.AddProduct(ctx, seller.ID, AddProductInput{
		ChatID: chat.ID,
		Name:   "Mug",
		Price:  50000,
	})
	require.NoError(t, err)

	return &orderTestEnv{
		uc:       NewOrderUseCase(orderRepo, productRepo, userRepo, wsManager),
		products: products,
		buyer:    buyer,
		seller:   seller,
		product:  product,
	}
}

func TestCreateOrderComputesTotals(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	order, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           2,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, env.buyer.ID, order.BuyerID)
	assert.Equal(t, env.seller.ID, order.SellerID)
	assert.Equal(t, int64(15000), order.ShippingCost)
	assert.Equal(t, int64(50000*2+15000), order.TotalPrice)
	assert.Equal(t, entity.PaymentPending, order.PaymentStatus)
	assert.Equal(t, entity.ShippingAwaitingConfirmation, order.ShippingStatus)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	env := newOrderTestEnv(t)

	_, err := env.uc.CreateOrder(context.Background(), env.buyer.ID, CreateOrderInput{
		ProductID:     "no-such-product",
		Qty:           1,
		PaymentMethod: "transfer",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestOrderLifecycle(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	order, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           1,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	order, err = env.uc.ConfirmOrder(ctx, env.seller.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingAwaitingPayment, order.ShippingStatus)

	order, err = env.uc.UploadPaymentProof(ctx, env.buyer.ID, order.ID, "https://example.com/proof.jpg")
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingPacking, order.ShippingStatus)
	assert.Equal(t, entity.PaymentPaid, order.PaymentStatus)
	assert.Equal(t, "https://example.com/proof.jpg", order.PaymentProof)

	order, err = env.uc.ShipOrder(ctx, env.seller.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingShipped, order.ShippingStatus)
	assert.Equal(t, entity.PaymentConfirmed, order.PaymentStatus)

	order, err = env.uc.CompleteOrder(ctx, env.buyer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShippingCompleted, order.ShippingStatus)
}

func TestOrderTransitionGuards(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	order, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           1,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	// Wrong caller
	_, err = env.uc.ConfirmOrder(ctx, env.buyer.ID, order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	// Out of order: proof before confirmation
	_, err = env.uc.UploadPaymentProof(ctx, env.buyer.ID, order.ID, "https://example.com/proof.jpg")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Out of order: ship before payment
	_, err = env.uc.ShipOrder(ctx, env.seller.ID, order.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Unknown order
	_, err = env.uc.ConfirmOrder(ctx, env.seller.ID, "no-such-order")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	// Confirm twice
	_, err = env.uc.ConfirmOrder(ctx, env.seller.ID, order.ID)
	require.NoError(t, err)
	_, err = env.uc.ConfirmOrder(ctx, env.seller.ID, order.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOrderSnapshotSurvivesProductDeletion(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	order, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           1,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	require.NoError(t, env.products.DeleteProduct(ctx, env.seller.ID, env.product.ID))

	got, err := env.uc.GetOrderByID(ctx, env.buyer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.ProductSnapshot.Name)
	assert.Equal(t, int64(50000), got.ProductSnapshot.Price)
}

func TestListOrdersByUser(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	first, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           1,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           3,
		PaymentMethod: "cod",
	})
	require.NoError(t, err)

	// Newest first, for buyer and seller views alike
	buyerOrders, err := env.uc.ListOrdersByUser(ctx, env.buyer.ID)
	require.NoError(t, err)
	require.Len(t, buyerOrders, 2)
	assert.Equal(t, second.ID, buyerOrders[0].ID)
	assert.Equal(t, first.ID, buyerOrders[1].ID)

	sellerOrders, err := env.uc.ListOrdersByUser(ctx, env.seller.ID)
	require.NoError(t, err)
	require.Len(t, sellerOrders, 2)
	assert.Equal(t, second.ID, sellerOrders[0].ID)

	other, err := env.uc.ListOrdersByUser(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGetOrderRequiresParty(t *testing.T) {
	env := newOrderTestEnv(t)
	ctx := context.Background()

	order, err := env.uc.CreateOrder(ctx, env.buyer.ID, CreateOrderInput{
		ProductID:     env.product.ID,
		Qty:           1,
		PaymentMethod: "transfer",
	})
	require.NoError(t, err)

	_, err = env.uc.GetOrderByID(ctx, "stranger", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
