package usecase

import (
	"context"
	"fmt"
	"time"

	"chattie/internal/domain/entity"
	"chattie/internal/domain/repository"
	"chattie/internal/infrastructure/ratelimit"
	ws "chattie/internal/infrastructure/websocket"
	"chattie/pkg/errors"
	"chattie/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	wsManager   *ws.Manager
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	wsManager *ws.Manager,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		chatRepo:    chatRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		wsManager:   wsManager,
		rateLimiter: rateLimiter,
	}
}

type SendMessageInput struct {
	ChatID string
	Body   string
	Type   string // "text", "image", "file", "location", "presentation", "product", "order"
	Meta   map[string]interface{}
}

type CreateGroupChatInput struct {
	Name           string
	ParticipantIDs []string
	Avatar         string
}

type UpdateGroupChatInput struct {
	Name           string
	Avatar         string
	ParticipantIDs []string
}

type UpdateChatBackgroundInput struct {
	BackgroundURL string
	Theme         *entity.ChatTheme
}

type ChatResponse struct {
	*entity.Chat
	Participants []*entity.User    `json:"participant_details,omitempty"`
	Products     []*entity.Product `json:"products,omitempty"`
}

type MessageResponse struct {
	*entity.Message
	Sender *entity.User `json:"sender,omitempty"`
}

// SendMessage appends a fully-formed message to the chat and moves the chat
// to the head of the recency order, which is the only reordering rule.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID string, input SendMessageInput) (*MessageResponse, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		logger.Warn("SendMessage rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", waitTime)
	}

	chat, err := uc.chatRepo.GetByID(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this chat", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("Sender", err)
	}

	message := &entity.Message{
		ChatID:    input.ChatID,
		SenderID:  userID,
		Body:      input.Body,
		Type:      input.Type,
		Meta:      input.Meta,
		Delivered: true,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := uc.chatRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	chat.LastMessage = input.Body
	chat.LastMessageAt = message.CreatedAt
	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		logger.Error("Failed to update chat %s with last message: %v", chat.ID, err)
		return nil, err
	}
	if err := uc.chatRepo.MoveToFront(ctx, chat.ID); err != nil {
		logger.Warn("Failed to promote chat %s in recency order: %v", chat.ID, err)
	}

	uc.wsManager.NotifyNewMessage(input.ChatID, message, userID)

	return &MessageResponse{Message: message, Sender: sender}, nil
}

func (uc *ChatUseCase) CreateGroupChat(ctx context.Context, creatorID string, input CreateGroupChatInput) (*ChatResponse, error) {
	allowed, waitTime := uc.rateLimiter.Allow(creatorID, "create_chat")
	if !allowed {
		logger.Warn("CreateGroupChat rate limited: user %s must wait %v", creatorID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before creating another group", waitTime)
	}

	participantIDs := input.ParticipantIDs
	if !containsString(participantIDs, creatorID) {
		participantIDs = append([]string{creatorID}, participantIDs...)
	}

	participants := make([]*entity.User, 0, len(participantIDs))
	for _, id := range participantIDs {
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, errors.NotFound("Participant", err)
		}
		participants = append(participants, user)
	}

	chat := &entity.Chat{
		Type:         "group",
		Name:         input.Name,
		Avatar:       input.Avatar,
		Participants: participantIDs,
	}

	if err := uc.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}

	welcome := &entity.Message{
		ChatID:    chat.ID,
		SenderID:  creatorID,
		Body:      fmt.Sprintf("Selamat datang di %s!", input.Name),
		Type:      "text",
		Delivered: true,
		Read:      true,
		CreatedAt: time.Now(),
	}
	if err := uc.chatRepo.CreateMessage(ctx, welcome); err != nil {
		logger.Error("Failed to seed welcome message for chat %s: %v", chat.ID, err)
	} else {
		chat.LastMessage = welcome.Body
		chat.LastMessageAt = welcome.CreatedAt
		if err := uc.chatRepo.Update(ctx, chat); err != nil {
			logger.Warn("Failed to update chat %s with welcome message: %v", chat.ID, err)
		}
	}

	return &ChatResponse{Chat: chat, Participants: participants}, nil
}

func (uc *ChatUseCase) UpdateGroupChat(ctx context.Context, userID, chatID string, input UpdateGroupChatInput) (*ChatResponse, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if chat.Type != "group" {
		return nil, errors.BadRequest("Only group chats can be edited", nil)
	}
	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this chat", nil)
	}

	participants := make([]*entity.User, 0, len(input.ParticipantIDs))
	for _, id := range input.ParticipantIDs {
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, errors.NotFound("Participant", err)
		}
		participants = append(participants, user)
	}

	chat.Name = input.Name
	chat.Avatar = input.Avatar
	chat.Participants = input.ParticipantIDs

	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		return nil, err
	}

	return &ChatResponse{Chat: chat, Participants: participants}, nil
}

func (uc *ChatUseCase) UpdateChatBackground(ctx context.Context, userID, chatID string, input UpdateChatBackgroundInput) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this chat", nil)
	}

	chat.BackgroundURL = input.BackgroundURL
	chat.Theme = input.Theme

	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

func (uc *ChatUseCase) GetChatByID(ctx context.Context, userID, chatID string) (*ChatResponse, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this chat", nil)
	}

	return uc.buildChatResponse(ctx, chat), nil
}

// ListChats returns the user's chats most-recently-active first.
func (uc *ChatUseCase) ListChats(ctx context.Context, userID string, limit, offset int) ([]*ChatResponse, int64, error) {
	chats, total, err := uc.chatRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*ChatResponse, 0, len(chats))
	for _, chat := range chats {
		responses = append(responses, uc.buildChatResponse(ctx, chat))
	}

	return responses, total, nil
}

// ListMessages returns a chat's messages in insertion (chronological) order.
func (uc *ChatUseCase) ListMessages(ctx context.Context, userID, chatID string, limit, offset int) ([]*MessageResponse, int64, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, 0, err
	}

	if !chat.HasParticipant(userID) {
		return nil, 0, errors.Forbidden("User is not a participant in this chat", nil)
	}

	messages, total, err := uc.chatRepo.ListMessages(ctx, chatID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		resp := &MessageResponse{Message: message}
		if sender, err := uc.userRepo.GetByID(ctx, message.SenderID); err == nil {
			resp.Sender = sender
		}
		responses = append(responses, resp)
	}

	return responses, total, nil
}

// ListStores returns group chats that sell something. The qualification rule
// is a non-empty product list; name heuristics are not consulted.
func (uc *ChatUseCase) ListStores(ctx context.Context) ([]*ChatResponse, error) {
	groups, err := uc.chatRepo.ListByType(ctx, "group")
	if err != nil {
		return nil, err
	}

	var stores []*ChatResponse
	for _, chat := range groups {
		count, err := uc.productRepo.CountByChatID(ctx, chat.ID)
		if err != nil {
			logger.Warn("Failed to count products for chat %s: %v", chat.ID, err)
			continue
		}
		if count > 0 {
			stores = append(stores, uc.buildChatResponse(ctx, chat))
		}
	}

	return stores, nil
}

func (uc *ChatUseCase) buildChatResponse(ctx context.Context, chat *entity.Chat) *ChatResponse {
	resp := &ChatResponse{Chat: chat}

	for _, id := range chat.Participants {
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("Participant %s not found for chat %s: %v", id, chat.ID, err)
			continue
		}
		resp.Participants = append(resp.Participants, user)
	}

	products, err := uc.productRepo.ListByChatID(ctx, chat.ID)
	if err == nil {
		resp.Products = products
	}

	return resp
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
