package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/internal/infrastructure/auth"
	"chattie/pkg/errors"
	"chattie/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tokenManager *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenManager *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != "business" && input.Role != "regular" {
		return nil, errors.BadRequest("Role must be business or regular", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		Avatar:       "https://placehold.co/100x100.png",
		Status:       "New user!",
		Online:       false,
		Role:         input.Role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Duplicate email surfaces as a Conflict from the repository; this is
	// the one registration failure the caller must distinguish.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	user.Online = true
	if err := uc.userRepo.Update(ctx, user); err != nil {
		logger.Warn("Failed to mark user %s online: %v", user.ID, err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
