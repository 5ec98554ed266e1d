package protocol

import (
	"encoding/json"
	"fmt"
)

// Event names carried in the websocket envelope.
const (
	EventJoinRoom    = "join_room"
	EventSendMessage = "send_message"
	EventMessage     = "message"
	EventUserJoined  = "user_joined"
	EventUserLeft    = "user_left"
)

// Envelope is the framing for every websocket event, in either direction.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// JoinRoom is the payload of an outbound join_room event.
type JoinRoom struct {
	RoomID string `json:"roomId"`
}

// SendMessage is the payload of an outbound send_message event.
type SendMessage struct {
	RoomID   string `json:"roomId"`
	Content  string `json:"content"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// Presence is the payload of inbound user_joined and user_left events.
type Presence struct {
	Username string `json:"username"`
}

// EncodeJoinRoom encodes a join_room event frame.
func EncodeJoinRoom(roomID string) ([]byte, error) {
	return encodeEvent(EventJoinRoom, JoinRoom{RoomID: roomID})
}

// EncodeSendMessage encodes a send_message event frame.
func EncodeSendMessage(roomID, content, userID, username string) ([]byte, error) {
	return encodeEvent(EventSendMessage, SendMessage{
		RoomID:   roomID,
		Content:  content,
		UserID:   userID,
		Username: username,
	})
}

func encodeEvent(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", event, err)
	}
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", event, err)
	}
	return frame, nil
}

// DecodeEnvelope decodes a raw frame into its envelope. The payload stays
// raw; use the typed accessors to decode it.
func DecodeEnvelope(data []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode event frame: %w", err)
	}
	return env, nil
}

// DecodeMessage decodes the payload of a message event.
func (e Envelope) DecodeMessage() (Message, error) {
	var msg Message
	if err := json.Unmarshal(e.Data, &msg); err != nil {
		return Message{}, fmt.Errorf("failed to decode message payload: %w", err)
	}
	return msg, nil
}

// DecodePresence decodes the payload of a user_joined or user_left event.
func (e Envelope) DecodePresence() (Presence, error) {
	var p Presence
	if err := json.Unmarshal(e.Data, &p); err != nil {
		return Presence{}, fmt.Errorf("failed to decode presence payload: %w", err)
	}
	return p, nil
}
