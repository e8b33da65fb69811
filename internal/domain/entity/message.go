package entity

import "time"

type Message struct {
	ID        string                 `json:"id"`
	ChatID    string                 `json:"chat_id"`
	SenderID  string                 `json:"sender_id"`
	Body      string                 `json:"body"`
	Type      string                 `json:"type"` // "text", "image", "file", "location", "presentation", "product", "order"
	Meta      map[string]interface{} `json:"meta,omitempty"`
	Delivered bool                   `json:"delivered"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"created_at"`
}
