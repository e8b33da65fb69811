package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/spf13/cast"
)

// Relay event types
const (
	EventPing                 = "ping"
	EventPong                 = "pong"
	EventJoinChat             = "join-chat"
	EventLeaveChat            = "leave-chat"
	EventJoinUserRoom         = "join-user-room"
	EventChatMessage          = "chat-message"
	EventNewMessage           = "new-message"
	EventNewOrderNotification = "new-order-notification"
)

// Frame is the wire envelope for relay events
type Frame struct {
	Type      string                 `json:"type"`
	ChatID    string                 `json:"chat_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// HandleClientMessage processes incoming relay frames
func (m *Manager) HandleClientMessage(client *Client, messageBytes []byte) {
	var frame Frame

	if err := json.Unmarshal(messageBytes, &frame); err != nil {
		log.Printf("WebSocket: Failed to unmarshal frame from client %s: %v", client.UserID, err)
		m.sendErrorToClient(client, "Invalid message format")
		return
	}

	// Some clients put chat_id inside data rather than on the envelope.
	chatID := frame.ChatID
	if chatID == "" && frame.Data != nil {
		chatID = cast.ToString(frame.Data["chat_id"])
	}

	switch frame.Type {
	case EventPing:
		m.sendToClient(client, Frame{
			Type:      EventPong,
			Data:      map[string]interface{}{"status": "alive"},
			Timestamp: time.Now().Format(time.RFC3339),
		})

	case EventJoinChat:
		if chatID == "" {
			m.sendErrorToClient(client, "Missing chat_id")
			return
		}
		m.JoinChatRoom(chatID, client.UserID)
		log.Printf("WebSocket: Client %s joined chat room %s", client.UserID, chatID)

	case EventLeaveChat:
		if chatID == "" {
			m.sendErrorToClient(client, "Missing chat_id")
			return
		}
		m.LeaveChatRoom(chatID, client.UserID)
		log.Printf("WebSocket: Client %s left chat room %s", client.UserID, chatID)

	case EventJoinUserRoom:
		// Per-user delivery is keyed by the authenticated connection, so
		// joining the user room is a no-op kept for client compatibility.
		log.Printf("WebSocket: Client %s joined user room", client.UserID)

	case EventChatMessage:
		m.handleChatMessage(client, chatID, frame)

	default:
		log.Printf("WebSocket: Unknown frame type '%s' from client %s", frame.Type, client.UserID)
		m.sendErrorToClient(client, "Unknown message type")
	}
}

// handleChatMessage relays an already-persisted message to the other room
// members. Clients send messages through the HTTP API first; this path only
// fans the payload out.
func (m *Manager) handleChatMessage(client *Client, chatID string, frame Frame) {
	if chatID == "" {
		m.sendErrorToClient(client, "Missing chat_id")
		return
	}

	out := Frame{
		Type:      EventNewMessage,
		ChatID:    chatID,
		Data:      frame.Data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if out.Data == nil {
		out.Data = map[string]interface{}{}
	}
	out.Data["sender_id"] = client.UserID

	payload, err := json.Marshal(out)
	if err != nil {
		log.Printf("WebSocket: Failed to marshal relay frame: %v", err)
		return
	}

	m.SendToChatRoom(chatID, payload, client.UserID)
	log.Printf("WebSocket: Relayed chat-message from %s to room %s", client.UserID, chatID)
}

// NotifyNewMessage pushes a persisted message to the chat room, excluding the sender
func (m *Manager) NotifyNewMessage(chatID string, message interface{}, senderID string) {
	frame := Frame{
		Type:      EventNewMessage,
		ChatID:    chatID,
		Data:      map[string]interface{}{"message": message},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		log.Printf("WebSocket: Failed to marshal new-message frame: %v", err)
		return
	}

	m.SendToChatRoom(chatID, payload, senderID)
}

// NotifyNewOrder pushes an order notification to a specific user
func (m *Manager) NotifyNewOrder(userID string, order interface{}) {
	frame := Frame{
		Type:      EventNewOrderNotification,
		Data:      map[string]interface{}{"order": order},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		log.Printf("WebSocket: Failed to marshal order frame: %v", err)
		return
	}

	m.SendToUser(userID, payload)
}

func (m *Manager) sendToClient(client *Client, frame Frame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		log.Printf("WebSocket: Failed to marshal frame for client %s: %v", client.UserID, err)
		return
	}

	select {
	case client.Send <- payload:
	default:
		log.Printf("WebSocket: Client %s send channel full, dropping frame", client.UserID)
	}
}

func (m *Manager) sendErrorToClient(client *Client, errorMsg string) {
	m.sendToClient(client, Frame{
		Type: "error",
		Data: map[string]interface{}{
			"error":   errorMsg,
			"user_id": client.UserID,
		},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
