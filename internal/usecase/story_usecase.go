package usecase

import (
	"context"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
)

type StoryUseCase struct {
	storyRepo repository.StoryRepository
	userRepo  repository.UserRepository
}

func NewStoryUseCase(storyRepo repository.StoryRepository, userRepo repository.UserRepository) *StoryUseCase {
	return &StoryUseCase{
		storyRepo: storyRepo,
		userRepo:  userRepo,
	}
}

type StoryResponse struct {
	*entity.Story
	User *entity.User `json:"user,omitempty"`
}

// AddStory posts a story that expires 24 hours after creation.
func (uc *StoryUseCase) AddStory(ctx context.Context, userID, imageURL string) (*entity.Story, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	story := &entity.Story{
		UserID:   userID,
		ImageURL: imageURL,
	}

	if err := uc.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}

	return story, nil
}

func (uc *StoryUseCase) ListStories(ctx context.Context) ([]*StoryResponse, error) {
	stories, err := uc.storyRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*StoryResponse, 0, len(stories))
	for _, story := range stories {
		resp := &StoryResponse{Story: story}
		if user, err := uc.userRepo.GetByID(ctx, story.UserID); err == nil {
			resp.User = user
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

func (uc *StoryUseCase) ListStoriesByUser(ctx context.Context, userID string) ([]*entity.Story, error) {
	return uc.storyRepo.ListByUserID(ctx, userID)
}
