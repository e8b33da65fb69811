package handler

import (
	"github.com/labstack/echo/v4"

	"chattie/internal/usecase"
	"chattie/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type createOrderRequest struct {
	ProductID     string `json:"product_id" validate:"required"`
	Qty           int    `json:"qty" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type paymentProofRequest struct {
	ProofURL string `json:"proof_url" validate:"required,url"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), uid, usecase.CreateOrderInput{
		ProductID:     req.ProductID,
		Qty:           req.Qty,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) ConfirmOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.ConfirmOrder(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) UploadPaymentProof(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req paymentProofRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UploadPaymentProof(c.Request().Context(), uid, c.Param("id"), req.ProofURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ShipOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.ShipOrder(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) CompleteOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.CompleteOrder(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrderByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListOrdersByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}
