package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chattie/internal/adapter/repository"
	"chattie/internal/infrastructure/auth"
	"chattie/pkg/errors"
)

func newAuthUseCase() *AuthUseCase {
	return NewAuthUseCase(
		repository.NewMemoryUserRepository(),
		auth.NewTokenManager("test-secret", 3600),
	)
}

func TestRegisterAndLogin(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	result, err := uc.Register(ctx, RegisterInput{
		Email:    "tania@chattie.id",
		Password: "password123",
		Name:     "Tania Kusuma",
		Role:     "business",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "tania@chattie.id", result.User.Email)
	assert.Equal(t, "business", result.User.Role)

	login, err := uc.Login(ctx, "tania@chattie.id", "password123")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
	assert.True(t, login.User.Online)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{
		Email:    "tania@chattie.id",
		Password: "password123",
		Name:     "Tania Kusuma",
		Role:     "business",
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{
		Email:    "tania@chattie.id",
		Password: "password456",
		Name:     "Tania K",
		Role:     "regular",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginWrongPassword(t *testing.T) {
	uc := newAuthUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, RegisterInput{
		Email:    "tania@chattie.id",
		Password: "password123",
		Name:     "Tania Kusuma",
		Role:     "business",
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, "tania@chattie.id", "wrong-password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestRegisterInvalidRole(t *testing.T) {
	uc := newAuthUseCase()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "tania@chattie.id",
		Password: "password123",
		Name:     "Tania Kusuma",
		Role:     "admin",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
