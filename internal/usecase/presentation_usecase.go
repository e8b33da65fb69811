package usecase

import (
	"context"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/pkg/errors"
)

type PresentationUseCase struct {
	presentationRepo repository.PresentationRepository
	userRepo         repository.UserRepository
}

func NewPresentationUseCase(
	presentationRepo repository.PresentationRepository,
	userRepo repository.UserRepository,
) *PresentationUseCase {
	return &PresentationUseCase{
		presentationRepo: presentationRepo,
		userRepo:         userRepo,
	}
}

type AddPresentationInput struct {
	FileName string
	FileURL  string
}

func (uc *PresentationUseCase) AddPresentation(ctx context.Context, userID string, input AddPresentationInput) (*entity.Presentation, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if input.FileName == "" || input.FileURL == "" {
		return nil, errors.BadRequest("File name and URL are required", nil)
	}

	presentation := &entity.Presentation{
		UserID:   userID,
		FileName: input.FileName,
		FileURL:  input.FileURL,
	}

	if err := uc.presentationRepo.Create(ctx, presentation); err != nil {
		return nil, err
	}

	return presentation, nil
}

// ListPresentationsByUser returns the user's uploads, newest first.
func (uc *PresentationUseCase) ListPresentationsByUser(ctx context.Context, userID string) ([]*entity.Presentation, error) {
	return uc.presentationRepo.ListByUserID(ctx, userID)
}
