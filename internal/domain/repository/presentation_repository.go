package repository

import (
	"context"

	"chattie/internal/domain/entity"
)

type PresentationRepository interface {
	Create(ctx context.Context, presentation *entity.Presentation) error
	// ListByUserID returns the user's presentations newest first.
	ListByUserID(ctx context.Context, userID string) ([]*entity.Presentation, error)
}
