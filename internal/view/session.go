// Package view holds the chat session state and the plain-text rendering of
// rooms, messages, and connection status.
package view

import (
	"strings"

	"roomchat/internal/identity"
	"roomchat/pkg/protocol"
)

// Session is the state of one open chat room: the append-only message list,
// seeded once from history and extended by one entry per inbound message
// event, plus the connection flag. Driven from a single event loop; not safe
// for concurrent use.
type Session struct {
	Room protocol.ChatRoom
	ID   identity.Identity

	messages  []protocol.Message
	seeded    bool
	connected bool
}

// NewSession creates the state for one chat session.
func NewSession(room protocol.ChatRoom, id identity.Identity) *Session {
	return &Session{Room: room, ID: id}
}

// SeedHistory installs the fetched history as the initial message list.
// Only the first call has an effect; a seed arriving after live messages
// would otherwise clobber them.
func (s *Session) SeedHistory(history []protocol.Message) {
	if s.seeded {
		return
	}
	s.seeded = true
	s.messages = append(history[:len(history):len(history)], s.messages...)
}

// Append adds exactly one inbound message, preserving all prior entries and
// their order. No dedup: the backend is trusted for identity and order.
func (s *Session) Append(msg protocol.Message) {
	s.messages = append(s.messages, msg)
}

// Messages returns the current message list.
func (s *Session) Messages() []protocol.Message {
	return s.messages
}

// SetConnected records a connection state change.
func (s *Session) SetConnected(connected bool) {
	s.connected = connected
}

// OnConnected marks the session connected and returns the room id to join.
// Called once per connected event, it yields exactly one join per successful
// handshake.
func (s *Session) OnConnected() string {
	s.connected = true
	return s.Room.ID
}

// OnDisconnected marks the session disconnected.
func (s *Session) OnDisconnected() {
	s.connected = false
}

// Connected reports the current connection state.
func (s *Session) Connected() bool {
	return s.connected
}

// IsOwn reports whether the message was authored by this session.
func (s *Session) IsOwn(msg protocol.Message) bool {
	return msg.UserID == s.ID.UserID
}

// PrepareSend validates composer input. It returns the trimmed content and
// whether the send path may run: rejected while disconnected, and
// whitespace-only input is a no-op.
func (s *Session) PrepareSend(input string) (string, bool) {
	if !s.connected {
		return "", false
	}
	content := strings.TrimSpace(input)
	if content == "" {
		return "", false
	}
	return content, true
}
