package repository

import (
	"context"

	"chattie/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	Update(ctx context.Context, chat *entity.Chat) error
	// ListByUserID returns the user's chats most-recently-active first.
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error)
	ListByType(ctx context.Context, chatType string) ([]*entity.Chat, error)
	// MoveToFront promotes a chat to the head of the recency order.
	MoveToFront(ctx context.Context, chatID string) error

	// Message methods. Messages are append-only per chat.
	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error)
}
