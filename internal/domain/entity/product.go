package entity

import (
	"time"
)

// Price is stored in the smallest currency unit (IDR has no subunit).
type Product struct {
	ID          string    `json:"id"`
	ChatID      string    `json:"chat_id"`
	SellerID    string    `json:"seller_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
