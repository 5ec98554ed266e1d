// Package protocol defines the entities and event frames exchanged with the
// chat backend, over both the HTTP API and the websocket.
package protocol

import "time"

// ChatRoom is a named channel grouping messages and participants.
// Server-assigned and read-only on the client; MemberCount only changes
// on re-fetch.
type ChatRoom struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	MemberCount int       `json:"memberCount"`
}

// Message is a single chat message. Created by the backend on send and never
// mutated by the client after receipt. Content is untrusted text and must be
// rendered as plain text.
type Message struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
