package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/pkg/errors"
)

// memoryChatRepository keeps chats indexed by id plus an explicit recency
// order; sending a message moves its chat to the head of that order, which
// is the only reordering rule.
type memoryChatRepository struct {
	mu       sync.RWMutex
	chats    map[string]*entity.Chat
	order    []string
	messages map[string][]*entity.Message
}

func NewMemoryChatRepository() repository.ChatRepository {
	return &memoryChatRepository{
		chats:    make(map[string]*entity.Chat),
		messages: make(map[string][]*entity.Message),
	}
}

func (r *memoryChatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if chat.ID == "" {
		chat.ID = uuid.New().String()
	}
	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.LastMessageAt.IsZero() {
		chat.LastMessageAt = now
	}

	stored := *chat
	stored.Participants = append([]string(nil), chat.Participants...)
	r.chats[chat.ID] = &stored
	r.order = append([]string{chat.ID}, r.order...)

	return nil
}

func (r *memoryChatRepository) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chat, ok := r.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}

	return copyChat(chat), nil
}

func (r *memoryChatRepository) Update(ctx context.Context, chat *entity.Chat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[chat.ID]; !ok {
		return errors.NotFound("Chat", nil)
	}

	chat.UpdatedAt = time.Now()
	stored := *chat
	stored.Participants = append([]string(nil), chat.Participants...)
	r.chats[chat.ID] = &stored

	return nil
}

func (r *memoryChatRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Chat
	for _, id := range r.order {
		chat := r.chats[id]
		if chat.HasParticipant(userID) {
			matched = append(matched, copyChat(chat))
		}
	}

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

func (r *memoryChatRepository) ListByType(ctx context.Context, chatType string) ([]*entity.Chat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Chat
	for _, id := range r.order {
		chat := r.chats[id]
		if chat.Type == chatType {
			matched = append(matched, copyChat(chat))
		}
	}

	return matched, nil
}

func (r *memoryChatRepository) MoveToFront(ctx context.Context, chatID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[chatID]; !ok {
		return errors.NotFound("Chat", nil)
	}

	for i, id := range r.order {
		if id == chatID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.order = append([]string{chatID}, r.order...)

	return nil
}

func (r *memoryChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.chats[message.ChatID]; !ok {
		return errors.NotFound("Chat", nil)
	}

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	stored := *message
	r.messages[message.ChatID] = append(r.messages[message.ChatID], &stored)

	return nil
}

func (r *memoryChatRepository) ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.chats[chatID]; !ok {
		return nil, 0, errors.NotFound("Chat", nil)
	}

	all := r.messages[chatID]
	total := int64(len(all))

	if offset > 0 {
		if offset >= len(all) {
			return nil, total, nil
		}
		all = all[offset:]
	}
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	messages := make([]*entity.Message, 0, len(all))
	for _, m := range all {
		result := *m
		messages = append(messages, &result)
	}

	return messages, total, nil
}

func copyChat(chat *entity.Chat) *entity.Chat {
	result := *chat
	result.Participants = append([]string(nil), chat.Participants...)
	if chat.Theme != nil {
		theme := *chat.Theme
		result.Theme = &theme
	}
	return &result
}
