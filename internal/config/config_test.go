package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.API.BaseURL != "http://localhost:3001/api" {
		t.Errorf("Expected default API base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Socket.URL != "ws://localhost:3001/ws" {
		t.Errorf("Expected default socket URL, got %q", cfg.Socket.URL)
	}
	if cfg.Socket.ReconnectAttempts != 5 {
		t.Errorf("Expected 5 reconnect attempts, got %d", cfg.Socket.ReconnectAttempts)
	}
	if cfg.Socket.ReconnectDelay != time.Second {
		t.Errorf("Expected 1s reconnect delay, got %v", cfg.Socket.ReconnectDelay)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Expected 10s HTTP timeout, got %v", cfg.API.Timeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CHAT_API_URL", "http://chat.example.com/api")
	t.Setenv("CHAT_SOCKET_URL", "wss://chat.example.com/ws")
	t.Setenv("CHAT_RECONNECT_ATTEMPTS", "3")
	t.Setenv("CHAT_RECONNECT_DELAY", "250ms")

	cfg := Load()

	if cfg.API.BaseURL != "http://chat.example.com/api" {
		t.Errorf("Expected overridden API base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.Socket.URL != "wss://chat.example.com/ws" {
		t.Errorf("Expected overridden socket URL, got %q", cfg.Socket.URL)
	}
	if cfg.Socket.ReconnectAttempts != 3 {
		t.Errorf("Expected 3 reconnect attempts, got %d", cfg.Socket.ReconnectAttempts)
	}
	if cfg.Socket.ReconnectDelay != 250*time.Millisecond {
		t.Errorf("Expected 250ms reconnect delay, got %v", cfg.Socket.ReconnectDelay)
	}
}
