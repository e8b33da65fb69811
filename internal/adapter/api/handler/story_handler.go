package handler

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/usecase"
	"chattie/pkg/response"
)

type StoryHandler struct {
	storyUseCase *usecase.StoryUseCase
}

func NewStoryHandler(storyUseCase *usecase.StoryUseCase) *StoryHandler {
	return &StoryHandler{
		storyUseCase: storyUseCase,
	}
}

type addStoryRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

func (h *StoryHandler) AddStory(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addStoryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	story, err := h.storyUseCase.AddStory(c.Request().Context(), uid, req.ImageURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, story)
}

func (h *StoryHandler) ListStories(c echo.Context) error {
	stories, err := h.storyUseCase.ListStories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stories)
}
