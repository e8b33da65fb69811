package handler

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/domain/entity"
	"chattie/internal/usecase"
	"chattie/pkg/response"
	"chattie/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createGroupChatRequest struct {
	Name           string   `json:"name" validate:"required,min=1"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1"`
	Avatar         string   `json:"avatar" validate:"omitempty,url"`
}

type updateGroupChatRequest struct {
	Name           string   `json:"name" validate:"required,min=1"`
	Avatar         string   `json:"avatar" validate:"omitempty,url"`
	ParticipantIDs []string `json:"participant_ids" validate:"required,min=1"`
}

type updateBackgroundRequest struct {
	BackgroundURL string            `json:"background_url" validate:"omitempty,url"`
	Theme         *entity.ChatTheme `json:"theme"`
}

type sendMessageRequest struct {
	Body string                 `json:"body" validate:"required"`
	Type string                 `json:"type" validate:"required,oneof=text image file location presentation product order"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func (h *ChatHandler) CreateGroupChat(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createGroupChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.CreateGroupChat(c.Request().Context(), uid, usecase.CreateGroupChatInput{
		Name:           req.Name,
		ParticipantIDs: req.ParticipantIDs,
		Avatar:         req.Avatar,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, chat)
}

func (h *ChatHandler) UpdateGroupChat(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateGroupChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.UpdateGroupChat(c.Request().Context(), uid, c.Param("id"), usecase.UpdateGroupChatInput{
		Name:           req.Name,
		Avatar:         req.Avatar,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) UpdateChatBackground(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateBackgroundRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.UpdateChatBackground(c.Request().Context(), uid, c.Param("id"), usecase.UpdateChatBackgroundInput{
		BackgroundURL: req.BackgroundURL,
		Theme:         req.Theme,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) GetChat(c echo.Context) error {
	uid := c.Get("uid").(string)

	chat, err := h.chatUseCase.GetChatByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	chats, total, err := h.chatUseCase.ListChats(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessPaginated(c, chats, total, pagination.PageSize, pagination.Offset)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.ListMessages(c.Request().Context(), uid, c.Param("id"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessPaginated(c, messages, total, pagination.PageSize, pagination.Offset)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, usecase.SendMessageInput{
		ChatID: c.Param("id"),
		Body:   req.Body,
		Type:   req.Type,
		Meta:   req.Meta,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ListStores(c echo.Context) error {
	stores, err := h.chatUseCase.ListStores(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stores)
}
