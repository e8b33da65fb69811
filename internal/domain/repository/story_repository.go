package repository

import (
	"context"

	"chattie/internal/domain/entity"
)

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	// List returns non-expired stories newest first.
	List(ctx context.Context) ([]*entity.Story, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Story, error)
}
