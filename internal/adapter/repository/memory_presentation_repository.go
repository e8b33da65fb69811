package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
)

type memoryPresentationRepository struct {
	mu            sync.RWMutex
	presentations map[string]*entity.Presentation
}

func NewMemoryPresentationRepository() repository.PresentationRepository {
	return &memoryPresentationRepository{
		presentations: make(map[string]*entity.Presentation),
	}
}

func (r *memoryPresentationRepository) Create(ctx context.Context, presentation *entity.Presentation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if presentation.ID == "" {
		presentation.ID = uuid.New().String()
	}
	if presentation.UploadedAt.IsZero() {
		presentation.UploadedAt = time.Now()
	}

	stored := *presentation
	r.presentations[presentation.ID] = &stored

	return nil
}

func (r *memoryPresentationRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Presentation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var presentations []*entity.Presentation
	for _, presentation := range r.presentations {
		if presentation.UserID == userID {
			result := *presentation
			presentations = append(presentations, &result)
		}
	}

	sort.Slice(presentations, func(i, j int) bool {
		return presentations[i].UploadedAt.After(presentations[j].UploadedAt)
	})

	return presentations, nil
}
