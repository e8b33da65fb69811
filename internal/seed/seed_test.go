package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chattie/internal/adapter/repository"
)

func TestSeedPopulatesDemoWorld(t *testing.T) {
	ctx := context.Background()

	userRepo := repository.NewMemoryUserRepository()
	chatRepo := repository.NewMemoryChatRepository()
	productRepo := repository.NewMemoryProductRepository()
	storyRepo := repository.NewMemoryStoryRepository()
	presentationRepo := repository.NewMemoryPresentationRepository()

	seeder := NewSeeder(userRepo, chatRepo, productRepo, storyRepo, presentationRepo)
	require.NoError(t, seeder.Run(ctx))

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 11)

	tania, err := userRepo.GetByEmail(ctx, "tania.kusuma@chattie.id")
	require.NoError(t, err)
	assert.Equal(t, "business", tania.Role)

	groups, err := chatRepo.ListByType(ctx, "group")
	require.NoError(t, err)
	assert.Len(t, groups, 4)

	store, err := chatRepo.GetByID(ctx, "store-1")
	require.NoError(t, err)
	assert.Equal(t, "Toko Satu", store.Name)
	assert.Equal(t, "Selamat datang di Toko Satu!", store.LastMessage)

	products, err := productRepo.ListByChatID(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, products, 2)

	stories, err := storyRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stories, 2)

	presentations, err := presentationRepo.ListByUserID(ctx, tania.ID)
	require.NoError(t, err)
	require.Len(t, presentations, 1)
	assert.Equal(t, "Q3-roadmap.pptx", presentations[0].FileName)
}
