package repository

import (
	"context"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/google/uuid"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
)

const storyTTL = 24 * time.Hour

// memoryStoryRepository keeps stories in a TTL cache so they disappear a day
// after posting without a sweeper of our own.
type memoryStoryRepository struct {
	cache *gocache.Cache
}

func NewMemoryStoryRepository() repository.StoryRepository {
	return &memoryStoryRepository{
		cache: gocache.New(storyTTL, time.Hour),
	}
}

func (r *memoryStoryRepository) Create(ctx context.Context, story *entity.Story) error {
	if story.ID == "" {
		story.ID = uuid.New().String()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now()
	}

	stored := *story
	r.cache.Set(story.ID, &stored, gocache.DefaultExpiration)

	return nil
}

func (r *memoryStoryRepository) List(ctx context.Context) ([]*entity.Story, error) {
	items := r.cache.Items()
	stories := make([]*entity.Story, 0, len(items))
	for _, item := range items {
		story := *item.Object.(*entity.Story)
		stories = append(stories, &story)
	}

	sort.Slice(stories, func(i, j int) bool {
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})

	return stories, nil
}

func (r *memoryStoryRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Story, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var stories []*entity.Story
	for _, story := range all {
		if story.UserID == userID {
			stories = append(stories, story)
		}
	}

	return stories, nil
}
