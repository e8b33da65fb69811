package entity

import "time"

type ChatTheme struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	TextColor  string `json:"text_color,omitempty"`
	BubbleSelf string `json:"bubble_self,omitempty"`
}

type Chat struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"` // "private", "group"
	Name          string     `json:"name,omitempty"`
	Avatar        string     `json:"avatar,omitempty"`
	Participants  []string   `json:"participants"`
	BackgroundURL string     `json:"background_url,omitempty"`
	Theme         *ChatTheme `json:"theme,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastMessageAt time.Time  `json:"last_message_at"`
	LastMessage   string     `json:"last_message,omitempty"`
}

func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
