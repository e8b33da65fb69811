package entity

import "time"

type Story struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ImageURL  string    `json:"image_url"`
	Viewed    bool      `json:"viewed"`
	CreatedAt time.Time `json:"created_at"`
}
