package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chattie/internal/adapter/repository"
	"chattie/internal/domain/entity"
	domainrepo "chattie/internal/domain/repository"
	ws "chattie/internal/infrastructure/websocket"
	"chattie/pkg/errors"
)

type chatTestEnv struct {
	uc       *ChatUseCase
	chatRepo domainrepo.ChatRepository
	tania    *entity.User
	melati   *entity.User
	eliza    *entity.User
}

func newChatTestEnv(t *testing.T) *chatTestEnv {
	t.Helper()
	ctx := context.Background()

	userRepo := repository.NewMemoryUserRepository()
	chatRepo := repository.NewMemoryChatRepository()
	productRepo := repository.NewMemoryProductRepository()

	tania := &entity.User{Email: "tania@chattie.id", Name: "Tania Kusuma", Role: "business"}
	melati := &entity.User{Email: "melati@chattie.id", Name: "Melati Anggraeni", Role: "business"}
	eliza := &entity.User{Email: "eliza@chattie.id", Name: "Eliza Sari", Role: "regular"}
	require.NoError(t, userRepo.Create(ctx, tania))
	require.NoError(t, userRepo.Create(ctx, melati))
	require.NoError(t, userRepo.Create(ctx, eliza))

	return &chatTestEnv{
		uc:       NewChatUseCase(chatRepo, userRepo, productRepo, ws.NewManager()),
		chatRepo: chatRepo,
		tania:    tania,
		melati:   melati,
		eliza:    eliza,
	}
}

func TestSendMessageAppendsToChat(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	chat := &entity.Chat{Type: "private", Participants: []string{env.tania.ID, env.melati.ID}}
	require.NoError(t, env.chatRepo.Create(ctx, chat))

	msg, err := env.uc.SendMessage(ctx, env.tania.ID, SendMessageInput{
		ChatID: chat.ID,
		Body:   "Halo, apa kabar?",
		Type:   "text",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, env.tania.ID, msg.SenderID)
	assert.True(t, msg.Delivered)
	assert.False(t, msg.Read)
	assert.Equal(t, env.tania.ID, msg.Sender.ID)

	messages, total, err := env.uc.ListMessages(ctx, env.melati.ID, chat.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, messages, 1)
	assert.Equal(t, "Halo, apa kabar?", messages[0].Body)
}

func TestSendMessagePromotesChat(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	first := &entity.Chat{Type: "private", Participants: []string{env.tania.ID, env.melati.ID}}
	second := &entity.Chat{Type: "private", Participants: []string{env.tania.ID, env.eliza.ID}}
	require.NoError(t, env.chatRepo.Create(ctx, first))
	require.NoError(t, env.chatRepo.Create(ctx, second))

	_, err := env.uc.SendMessage(ctx, env.tania.ID, SendMessageInput{
		ChatID: first.ID,
		Body:   "ping",
		Type:   "text",
	})
	require.NoError(t, err)

	chats, _, err := env.uc.ListChats(ctx, env.tania.ID, 20, 0)
	require.NoError(t, err)
	require.NotEmpty(t, chats)
	assert.Equal(t, first.ID, chats[0].ID)
}

func TestSendMessageUnknownChat(t *testing.T) {
	env := newChatTestEnv(t)

	_, err := env.uc.SendMessage(context.Background(), env.tania.ID, SendMessageInput{
		ChatID: "no-such-chat",
		Body:   "hello",
		Type:   "text",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendMessageRequiresParticipant(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	chat := &entity.Chat{Type: "private", Participants: []string{env.tania.ID, env.melati.ID}}
	require.NoError(t, env.chatRepo.Create(ctx, chat))

	_, err := env.uc.SendMessage(ctx, env.eliza.ID, SendMessageInput{
		ChatID: chat.ID,
		Body:   "hi",
		Type:   "text",
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreateGroupChatSeedsWelcomeMessage(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	chat, err := env.uc.CreateGroupChat(ctx, env.tania.ID, CreateGroupChatInput{
		Name:           "Toko Satu",
		ParticipantIDs: []string{env.melati.ID, env.eliza.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, "group", chat.Type)
	assert.True(t, chat.HasParticipant(env.tania.ID))
	assert.Equal(t, "Selamat datang di Toko Satu!", chat.LastMessage)

	messages, _, err := env.uc.ListMessages(ctx, env.tania.ID, chat.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Selamat datang di Toko Satu!", messages[0].Body)
}

func TestListStoresRequiresProducts(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	store, err := env.uc.CreateGroupChat(ctx, env.tania.ID, CreateGroupChatInput{
		Name:           "Toko Satu",
		ParticipantIDs: []string{env.melati.ID},
	})
	require.NoError(t, err)

	_, err = env.uc.CreateGroupChat(ctx, env.tania.ID, CreateGroupChatInput{
		Name:           "Toko Kosong",
		ParticipantIDs: []string{env.eliza.ID},
	})
	require.NoError(t, err)

	products := NewProductUseCase(env.uc.productRepo, env.uc.chatRepo, env.uc.wsManager)
	_, err = products.AddProduct(ctx, env.tania.ID, AddProductInput{
		ChatID: store.ID,
		Name:   "Mug",
		Price:  50000,
	})
	require.NoError(t, err)

	stores, err := env.uc.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, store.ID, stores[0].ID)
	require.Len(t, stores[0].Products, 1)
	assert.Equal(t, "Mug", stores[0].Products[0].Name)
}

func TestUpdateGroupChatRejectsPrivate(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	chat := &entity.Chat{Type: "private", Participants: []string{env.tania.ID, env.melati.ID}}
	require.NoError(t, env.chatRepo.Create(ctx, chat))

	_, err := env.uc.UpdateGroupChat(ctx, env.tania.ID, chat.ID, UpdateGroupChatInput{
		Name:           "Renamed",
		ParticipantIDs: []string{env.tania.ID, env.melati.ID},
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
