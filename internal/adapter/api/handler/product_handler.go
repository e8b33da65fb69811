package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"chattie/internal/usecase"
	"chattie/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type addProductRequest struct {
	ChatID      string `json:"chat_id" validate:"required"`
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"min=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type updateProductRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"min=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

func (h *ProductHandler) AddProduct(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.AddProduct(c.Request().Context(), uid, usecase.AddProductInput{
		ChatID:      req.ChatID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), uid, c.Param("id"), usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.productUseCase.DeleteProduct(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, product)
}

func (h *ProductHandler) ListRecentProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	products, err := h.productUseCase.ListRecentProducts(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, products)
}
