package handler

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/usecase"
	"chattie/pkg/response"
)

type PresentationHandler struct {
	presentationUseCase *usecase.PresentationUseCase
}

func NewPresentationHandler(presentationUseCase *usecase.PresentationUseCase) *PresentationHandler {
	return &PresentationHandler{
		presentationUseCase: presentationUseCase,
	}
}

type addPresentationRequest struct {
	FileName string `json:"file_name" validate:"required"`
	FileURL  string `json:"file_url" validate:"required,url"`
}

func (h *PresentationHandler) AddPresentation(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addPresentationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	presentation, err := h.presentationUseCase.AddPresentation(c.Request().Context(), uid, usecase.AddPresentationInput{
		FileName: req.FileName,
		FileURL:  req.FileURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, presentation)
}

func (h *PresentationHandler) ListMyPresentations(c echo.Context) error {
	uid := c.Get("uid").(string)

	presentations, err := h.presentationUseCase.ListPresentationsByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, presentations)
}
