package view

import (
	"fmt"
	"strings"

	"roomchat/pkg/protocol"
)

// Width of the message column. Own messages are pushed to the right edge so
// the two directions read apart in a plain terminal.
const renderWidth = 72

// RenderMessage formats one message. Own messages are right-aligned with the
// author label suppressed; other messages show the author name. The
// timestamp renders as a local hour:minute.
func RenderMessage(msg protocol.Message, own bool) string {
	ts := msg.Timestamp.Local().Format("15:04")
	if own {
		line := fmt.Sprintf("%s  [%s]", msg.Content, ts)
		if pad := renderWidth - len(line); pad > 0 {
			return strings.Repeat(" ", pad) + line
		}
		return line
	}
	return fmt.Sprintf("[%s] %s: %s", ts, msg.Username, msg.Content)
}

// RenderRoom formats one room directory entry.
func RenderRoom(index int, room protocol.ChatRoom) string {
	line := fmt.Sprintf("%2d. %-20s %d members", index, room.Name, room.MemberCount)
	if room.Description != "" {
		line += "  - " + room.Description
	}
	return line
}

// RenderStatus formats the connection indicator shown above the composer.
func RenderStatus(connected bool) string {
	if connected {
		return "[connected]"
	}
	return "[disconnected]"
}
