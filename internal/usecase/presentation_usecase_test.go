package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chattie/internal/adapter/repository"
	"chattie/internal/domain/entity"
	"chattie/pkg/errors"
)

func TestAddAndListPresentations(t *testing.T) {
	ctx := context.Background()
	userRepo := repository.NewMemoryUserRepository()
	uc := NewPresentationUseCase(repository.NewMemoryPresentationRepository(), userRepo)

	user := &entity.User{Email: "tania@chattie.id", Name: "Tania Kusuma", Role: "business"}
	require.NoError(t, userRepo.Create(ctx, user))

	first, err := uc.AddPresentation(ctx, user.ID, AddPresentationInput{
		FileName: "Q3-roadmap.pptx",
		FileURL:  "https://example.com/q3-roadmap.pptx",
	})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second, err := uc.AddPresentation(ctx, user.ID, AddPresentationInput{
		FileName: "analisis-kompetitor.pptx",
		FileURL:  "https://example.com/analisis.pptx",
	})
	require.NoError(t, err)

	list, err := uc.ListPresentationsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestAddPresentationValidation(t *testing.T) {
	ctx := context.Background()
	userRepo := repository.NewMemoryUserRepository()
	uc := NewPresentationUseCase(repository.NewMemoryPresentationRepository(), userRepo)

	user := &entity.User{Email: "tania@chattie.id", Name: "Tania Kusuma", Role: "business"}
	require.NoError(t, userRepo.Create(ctx, user))

	_, err := uc.AddPresentation(ctx, user.ID, AddPresentationInput{FileName: "", FileURL: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
