package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"roomchat/internal/api"
	"roomchat/internal/config"
	"roomchat/internal/identity"
	"roomchat/internal/session"
	"roomchat/internal/view"
	"roomchat/pkg/logger"
	"roomchat/pkg/protocol"
)

func main() {
	cfg := config.Load()

	apiURL := flag.String("api", cfg.API.BaseURL, "Chat HTTP API base URL")
	socketURL := flag.String("socket", cfg.Socket.URL, "Chat websocket URL")
	roomID := flag.String("room", "", "Room id to join directly, skipping the room list")
	flag.Parse()

	id := identity.New()
	logger.Info("Session identity: %s (%s)", id.Username, id.UserID)

	client := api.NewClient(*apiURL, cfg.API.Timeout)
	stdin := bufio.NewScanner(os.Stdin)

	room, ok := chooseRoom(client, stdin, *roomID)
	if !ok {
		return
	}

	mgr := session.NewManager(session.Config{
		URL:               *socketURL,
		ReconnectAttempts: cfg.Socket.ReconnectAttempts,
		ReconnectDelay:    cfg.Socket.ReconnectDelay,
	}, id)

	runChat(client, mgr, stdin, room, id)
}

// chooseRoom shows the room directory and reads a selection. Fetch failures
// offer a retry; "r" re-issues the same request.
func chooseRoom(client *api.Client, stdin *bufio.Scanner, directRoomID string) (protocol.ChatRoom, bool) {
	if directRoomID != "" {
		room, err := fetchRoomWithRetry(client, stdin, directRoomID)
		if err != nil {
			return protocol.ChatRoom{}, false
		}
		return room, true
	}

	for {
		rooms, err := client.Rooms(context.Background())
		if err != nil {
			fmt.Printf("Unable to load chat rooms: %v\n", err)
			fmt.Println("Press 'r' to retry, anything else to quit.")
			if !stdin.Scan() || strings.TrimSpace(stdin.Text()) != "r" {
				return protocol.ChatRoom{}, false
			}
			continue
		}

		if len(rooms) == 0 {
			fmt.Println("No rooms available.")
			return protocol.ChatRoom{}, false
		}

		fmt.Printf("Chat rooms (%d):\n", len(rooms))
		for i, room := range rooms {
			fmt.Println(view.RenderRoom(i+1, room))
		}
		fmt.Print("Select a room number: ")

		if !stdin.Scan() {
			return protocol.ChatRoom{}, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(stdin.Text()))
		if err != nil || choice < 1 || choice > len(rooms) {
			fmt.Println("Invalid selection.")
			continue
		}
		return rooms[choice-1], true
	}
}

// fetchRoomWithRetry fetches one room's metadata with the same retry
// affordance the room list has.
func fetchRoomWithRetry(client *api.Client, stdin *bufio.Scanner, roomID string) (protocol.ChatRoom, error) {
	for {
		room, err := client.Room(context.Background(), roomID)
		if err == nil {
			return room, nil
		}
		fmt.Printf("Unable to load room %s: %v\n", roomID, err)
		fmt.Println("Press 'r' to retry, anything else to quit.")
		if !stdin.Scan() || strings.TrimSpace(stdin.Text()) != "r" {
			return protocol.ChatRoom{}, err
		}
	}
}

type detailResult struct {
	room protocol.ChatRoom
	err  error
}

func runChat(client *api.Client, mgr *session.Manager, stdin *bufio.Scanner, room protocol.ChatRoom, id identity.Identity) {
	state := view.NewSession(room, id)

	// Room detail, history fetch, and connection setup run concurrently;
	// none depends on another.
	historyCh := make(chan []protocol.Message, 1)
	go func() {
		history, err := client.Messages(context.Background(), room.ID)
		if err != nil {
			logger.Error("Failed to fetch history for room %s: %v", room.ID, err)
			historyCh <- nil
			return
		}
		historyCh <- history
	}()

	detailCh := make(chan detailResult, 1)
	go func() {
		detail, err := client.Room(context.Background(), room.ID)
		detailCh <- detailResult{room: detail, err: err}
	}()

	if err := mgr.Connect(); err != nil {
		logger.Error("Initial connect failed: %v", err)
	}
	defer mgr.Disconnect()

	detail := <-detailCh
	if detail.err != nil {
		// Same visible retry the room list gets.
		fmt.Printf("Could not load room details: %v\n", detail.err)
		fmt.Println("Press 'r' to retry, anything else to continue with what we have.")
		if stdin.Scan() && strings.TrimSpace(stdin.Text()) == "r" {
			if retried, err := client.Room(context.Background(), room.ID); err == nil {
				detail = detailResult{room: retried}
			} else {
				logger.Error("Room detail retry failed: %v", err)
			}
		}
	}
	if detail.err == nil {
		room = detail.room
		state.Room = room
	}

	history := <-historyCh
	if history == nil {
		fmt.Println("Could not load message history. Press 'r' to retry, anything else to continue without it.")
		if stdin.Scan() && strings.TrimSpace(stdin.Text()) == "r" {
			if retried, err := client.Messages(context.Background(), room.ID); err == nil {
				history = retried
			} else {
				logger.Error("History retry failed: %v", err)
			}
		}
	}
	state.SeedHistory(history)

	fmt.Printf("\n== %s ==\n", room.Name)
	if room.Description != "" {
		fmt.Println(room.Description)
	}
	for _, msg := range state.Messages() {
		fmt.Println(view.RenderMessage(msg, state.IsOwn(msg)))
	}
	if len(state.Messages()) == 0 {
		fmt.Println("No messages yet. Start the conversation!")
	}
	fmt.Println("Type a message and press Enter. '/quit' leaves the room.")

	lines := make(chan string)
	go func() {
		defer close(lines)
		for stdin.Scan() {
			lines <- stdin.Text()
		}
	}()

	for {
		select {
		case ev := <-mgr.Events():
			handleEvent(state, mgr, ev)
		case line, ok := <-lines:
			if !ok || strings.TrimSpace(line) == "/quit" {
				return
			}
			content, ok := state.PrepareSend(line)
			if !ok {
				if !state.Connected() {
					fmt.Printf("%s cannot send while disconnected\n", view.RenderStatus(false))
				}
				continue
			}
			if err := mgr.Send(room.ID, content); err != nil {
				logger.Error("Failed to send message: %v", err)
			}
			// The message renders when the server rebroadcasts it.
		}
	}
}

func handleEvent(state *view.Session, mgr *session.Manager, ev session.Event) {
	switch ev.Type {
	case session.EventConnected:
		// One join per successful handshake, before anything can be sent.
		joinID := state.OnConnected()
		fmt.Println(view.RenderStatus(true))
		if err := mgr.JoinRoom(joinID); err != nil {
			logger.Error("Failed to join room %s: %v", joinID, err)
		}
	case session.EventDisconnected:
		state.OnDisconnected()
		fmt.Println(view.RenderStatus(false))
	case session.EventMessage:
		state.Append(ev.Message)
		fmt.Println(view.RenderMessage(ev.Message, state.IsOwn(ev.Message)))
	case session.EventUserJoined:
		logger.Info("%s joined the room", ev.Username)
	case session.EventUserLeft:
		logger.Info("%s left the room", ev.Username)
	}
}
