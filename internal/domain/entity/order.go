package entity

import (
	"time"
)

// Shipping status progression. Forward-only; no cancellation or refund states.
const (
	ShippingAwaitingConfirmation = "Menunggu Konfirmasi"
	ShippingAwaitingPayment      = "Menunggu Pembayaran"
	ShippingPacking              = "Dikemas"
	ShippingShipped              = "Dikirim"
	ShippingCompleted            = "Selesai"
)

const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentConfirmed = "confirmed"
)

// ProductSnapshot is copied from the Product at order creation and never
// mutated afterwards, so later product edits or deletion do not rewrite
// order history.
type ProductSnapshot struct {
	ProductID   string `json:"product_id"`
	ChatID      string `json:"chat_id"`
	SellerID    string `json:"seller_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
}

type Order struct {
	ID              string          `json:"id"`
	BuyerID         string          `json:"buyer_id"`
	SellerID        string          `json:"seller_id"`
	ProductSnapshot ProductSnapshot `json:"product_snapshot"`
	Qty             int             `json:"qty"`
	ShippingCost    int64           `json:"shipping_cost"`
	TotalPrice      int64           `json:"total_price"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   string          `json:"payment_status"`
	ShippingStatus  string          `json:"shipping_status"`
	PaymentProof    string          `json:"payment_proof,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
