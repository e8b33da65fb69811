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

type productTestEnv struct {
	uc     *ProductUseCase
	chats  *ChatUseCase
	seller *entity.User
	member *entity.User
	chat   *entity.Chat
}

func newProductTestEnv(t *testing.T) *productTestEnv {
	t.Helper()
	ctx := context.Background()

	userRepo := repository.NewMemoryUserRepository()
	chatRepo := repository.NewMemoryChatRepository()
	productRepo := repository.NewMemoryProductRepository()
	wsManager := ws.NewManager()

	seller := &entity.User{Email: "tania@chattie.id", Name: "Tania Kusuma", Role: "business"}
	member := &entity.User{Email: "eliza@chattie.id", Name: "Eliza Sari", Role: "regular"}
	require.NoError(t, userRepo.Create(ctx, seller))
	require.NoError(t, userRepo.Create(ctx, member))

	chat := &entity.Chat{
		Type:         "group",
		Name:         "Toko Satu",
		Participants: []string{seller.ID, member.ID},
	}
	require.NoError(t, chatRepo.Create(ctx, chat))

	return &productTestEnv{
		uc:     NewProductUseCase(productRepo, chatRepo, wsManager),
		chats:  NewChatUseCase(chatRepo, userRepo, productRepo, wsManager),
		seller: seller,
		member: member,
		chat:   chat,
	}
}

func TestAddProductAnnouncesListing(t *testing.T) {
	env := newProductTestEnv(t)
	ctx := context.Background()

	product, err := env.uc.AddProduct(ctx, env.seller.ID, AddProductInput{
		ChatID:      env.chat.ID,
		Name:        "Mug",
		Description: "Mug keramik",
		Price:       50000,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, env.seller.ID, product.SellerID)
	assert.Equal(t, env.chat.ID, product.ChatID)

	messages, _, err := env.chats.ListMessages(ctx, env.member.ID, env.chat.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "product", messages[0].Type)
	assert.Equal(t, "New item for sale: Mug", messages[0].Body)
	assert.Equal(t, product.ID, messages[0].Meta["product_id"])
}

func TestAddProductRequiresGroupParticipant(t *testing.T) {
	env := newProductTestEnv(t)
	ctx := context.Background()

	_, err := env.uc.AddProduct(ctx, "stranger", AddProductInput{
		ChatID: env.chat.ID,
		Name:   "Mug",
		Price:  50000,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = env.uc.AddProduct(ctx, env.seller.ID, AddProductInput{
		ChatID: "no-such-chat",
		Name:   "Mug",
		Price:  50000,
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateProductSellerOnly(t *testing.T) {
	env := newProductTestEnv(t)
	ctx := context.Background()

	product, err := env.uc.AddProduct(ctx, env.seller.ID, AddProductInput{
		ChatID: env.chat.ID,
		Name:   "Mug",
		Price:  50000,
	})
	require.NoError(t, err)

	_, err = env.uc.UpdateProduct(ctx, env.member.ID, product.ID, UpdateProductInput{
		Name:  "Mug Baru",
		Price: 60000,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := env.uc.UpdateProduct(ctx, env.seller.ID, product.ID, UpdateProductInput{
		Name:  "Mug Baru",
		Price: 60000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mug Baru", updated.Name)
	assert.Equal(t, int64(60000), updated.Price)
}

func TestDeleteProductSellerOnly(t *testing.T) {
	env := newProductTestEnv(t)
	ctx := context.Background()

	product, err := env.uc.AddProduct(ctx, env.seller.ID, AddProductInput{
		ChatID: env.chat.ID,
		Name:   "Mug",
		Price:  50000,
	})
	require.NoError(t, err)

	err = env.uc.DeleteProduct(ctx, env.member.ID, product.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, env.uc.DeleteProduct(ctx, env.seller.ID, product.ID))

	_, err = env.uc.GetProductByID(ctx, product.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListRecentProductsNewestFirst(t *testing.T) {
	env := newProductTestEnv(t)
	ctx := context.Background()

	first, err := env.uc.AddProduct(ctx, env.seller.ID, AddProductInput{
		ChatID: env.chat.ID,
		Name:   "Mug",
		Price:  50000,
	})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second, err := env.uc.AddProduct(ctx, env.seller.ID, AddProductInput{
		ChatID: env.chat.ID,
		Name:   "Gelas",
		Price:  30000,
	})
	require.NoError(t, err)

	recent, err := env.uc.ListRecentProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].ID)
	assert.Equal(t, first.ID, recent[1].ID)
}
