// Package api implements the one-shot HTTP fetchers for the room directory,
// room detail, and message history endpoints.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roomchat/pkg/protocol"
)

// Client issues single request/response calls against the chat HTTP API.
// No caching, no pagination; every call is all-or-nothing.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL, e.g.
// "http://localhost:3001/api".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Rooms fetches the list of available rooms.
func (c *Client) Rooms(ctx context.Context) ([]protocol.ChatRoom, error) {
	var rooms []protocol.ChatRoom
	if err := c.getJSON(ctx, "/rooms", &rooms); err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}

// Room fetches a single room's metadata.
func (c *Client) Room(ctx context.Context, roomID string) (protocol.ChatRoom, error) {
	var room protocol.ChatRoom
	if err := c.getJSON(ctx, "/rooms/"+url.PathEscape(roomID), &room); err != nil {
		return protocol.ChatRoom{}, fmt.Errorf("failed to fetch room %s: %w", roomID, err)
	}
	return room, nil
}

// Messages fetches a room's historical messages.
func (c *Client) Messages(ctx context.Context, roomID string) ([]protocol.Message, error) {
	var messages []protocol.Message
	if err := c.getJSON(ctx, "/rooms/"+url.PathEscape(roomID)+"/messages", &messages); err != nil {
		return nil, fmt.Errorf("failed to fetch messages for room %s: %w", roomID, err)
	}
	return messages, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
