package entity

import (
	"time"
)

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Status string `json:"status,omitempty"`
	Online bool   `json:"online"`
	Role   string `json:"role"` // "business", "regular"

	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
