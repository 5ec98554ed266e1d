// Package session owns the persistent websocket connection for one chat
// session: connect with handshake credentials, join, send, receive, and a
// bounded fixed-delay reconnect after an unexpected drop.
package session

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"roomchat/internal/identity"
	"roomchat/pkg/logger"
	"roomchat/pkg/protocol"
)

const (
	defaultReconnectAttempts = 5
	defaultReconnectDelay    = time.Second
)

// Config carries the connection settings for a Manager. Zero values fall
// back to the defaults above.
type Config struct {
	URL               string
	ReconnectAttempts int
	ReconnectDelay    time.Duration
	Logger            *logger.Logger
}

// Manager maintains exactly one websocket connection for one chat session.
// Each session owns its own Manager; two sessions never share a connection.
type Manager struct {
	url      string
	id       identity.Identity
	attempts int
	delay    time.Duration
	log      *logger.Logger

	mu     sync.RWMutex
	conn   *websocket.Conn
	closed bool
	done   chan struct{}

	events chan Event
	wg     sync.WaitGroup
}

// NewManager creates a Manager. It does not dial; call Connect.
func NewManager(cfg Config, id identity.Identity) *Manager {
	if cfg.ReconnectAttempts <= 0 {
		cfg.ReconnectAttempts = defaultReconnectAttempts
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = defaultReconnectDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default
	}
	return &Manager{
		url:      cfg.URL,
		id:       id,
		attempts: cfg.ReconnectAttempts,
		delay:    cfg.ReconnectDelay,
		log:      cfg.Logger,
		done:     make(chan struct{}),
		events:   make(chan Event, 16),
	}
}

// Connect dials the server with the session identity attached as handshake
// credentials and starts the receive loop. Idempotent: an already-connected
// Manager returns nil without dialing again. A failed dial leaves the
// Manager usable for a later Connect.
func (m *Manager) Connect() error {
	m.mu.Lock()
	if m.conn != nil {
		m.mu.Unlock()
		return nil
	}
	if m.closed {
		// Fresh lifecycle after a deliberate Disconnect.
		m.closed = false
		m.done = make(chan struct{})
	}
	m.mu.Unlock()

	conn, err := m.dial()
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}

	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()

	m.emit(Event{Type: EventConnected})

	m.wg.Add(1)
	go m.receiveLoop(conn)

	return nil
}

// Current returns the active connection, if any. It never dials.
func (m *Manager) Current() (*websocket.Conn, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.conn, m.conn != nil
}

// IsConnected reports whether a connection is currently established.
func (m *Manager) IsConnected() bool {
	_, ok := m.Current()
	return ok
}

// Disconnect tears down the connection and stops the reconnect loop. Safe to
// call more than once. A later Connect starts a fresh lifecycle.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	conn := m.conn
	m.conn = nil
	done := m.done
	m.mu.Unlock()

	if conn != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}
	close(done)
	m.wg.Wait()

	if conn != nil {
		// The consumer may already be gone at teardown; never block on it.
		select {
		case m.events <- Event{Type: EventDisconnected}:
		default:
		}
	}
}

// JoinRoom emits a join_room event for the given room.
func (m *Manager) JoinRoom(roomID string) error {
	frame, err := protocol.EncodeJoinRoom(roomID)
	if err != nil {
		return err
	}
	return m.write(frame)
}

// Send emits a send_message event carrying the session identity.
func (m *Manager) Send(roomID, content string) error {
	frame, err := protocol.EncodeSendMessage(roomID, content, m.id.UserID, m.id.Username)
	if err != nil {
		return err
	}
	return m.write(frame)
}

// Events returns the channel on which connection and chat events are
// delivered. The channel is never closed; consumers stop on their own
// signal.
func (m *Manager) Events() <-chan Event {
	return m.events
}

func (m *Manager) dial() (*websocket.Conn, error) {
	u, err := url.Parse(m.url)
	if err != nil {
		return nil, fmt.Errorf("invalid socket URL: %w", err)
	}
	q := u.Query()
	q.Set("userId", m.id.UserID)
	q.Set("username", m.id.Username)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (m *Manager) write(frame []byte) error {
	m.mu.RLock()
	conn := m.conn
	m.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected to server")
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	return nil
}

func (m *Manager) receiveLoop(conn *websocket.Conn) {
	defer m.wg.Done()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if m.isClosed() {
				return
			}

			m.mu.Lock()
			m.conn = nil
			m.mu.Unlock()
			m.emit(Event{Type: EventDisconnected})

			next, ok := m.reconnect()
			if !ok {
				return
			}
			conn = next
			m.emit(Event{Type: EventConnected})
			continue
		}

		m.dispatch(data)
	}
}

// reconnect retries the dial a bounded number of times with a fixed delay.
// After exhausting all attempts the Manager stays disconnected until the
// caller re-initiates.
func (m *Manager) reconnect() (*websocket.Conn, bool) {
	m.mu.RLock()
	done := m.done
	m.mu.RUnlock()

	for attempt := 1; attempt <= m.attempts; attempt++ {
		select {
		case <-done:
			return nil, false
		case <-time.After(m.delay):
		}

		conn, err := m.dial()
		if err != nil {
			m.log.Error("Reconnect attempt %d/%d failed: %v", attempt, m.attempts, err)
			continue
		}

		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			conn.Close()
			return nil, false
		}
		m.conn = conn
		m.mu.Unlock()
		return conn, true
	}

	m.log.Error("Giving up after %d reconnect attempts", m.attempts)
	return nil, false
}

func (m *Manager) dispatch(data []byte) {
	env, err := protocol.DecodeEnvelope(data)
	if err != nil {
		m.log.Error("Failed to decode event frame: %v", err)
		return
	}

	switch env.Event {
	case protocol.EventMessage:
		msg, err := env.DecodeMessage()
		if err != nil {
			m.log.Error("Failed to decode message payload: %v", err)
			return
		}
		m.emit(Event{Type: EventMessage, Message: msg})
	case protocol.EventUserJoined:
		p, err := env.DecodePresence()
		if err != nil {
			m.log.Error("Failed to decode presence payload: %v", err)
			return
		}
		m.emit(Event{Type: EventUserJoined, Username: p.Username})
	case protocol.EventUserLeft:
		p, err := env.DecodePresence()
		if err != nil {
			m.log.Error("Failed to decode presence payload: %v", err)
			return
		}
		m.emit(Event{Type: EventUserLeft, Username: p.Username})
	default:
		m.log.Debug("Ignoring unknown event %q", env.Event)
	}
}

func (m *Manager) emit(ev Event) {
	m.mu.RLock()
	done := m.done
	m.mu.RUnlock()

	select {
	case m.events <- ev:
	case <-done:
	}
}

func (m *Manager) isClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}
