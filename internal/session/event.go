package session

import "roomchat/pkg/protocol"

// EventType identifies the kind of event surfaced by a Manager.
type EventType int

const (
	EventConnected EventType = iota
	EventDisconnected
	EventMessage
	EventUserJoined
	EventUserLeft
)

// String returns the string representation of EventType.
func (et EventType) String() string {
	switch et {
	case EventConnected:
		return "CONNECTED"
	case EventDisconnected:
		return "DISCONNECTED"
	case EventMessage:
		return "MESSAGE"
	case EventUserJoined:
		return "USER_JOINED"
	case EventUserLeft:
		return "USER_LEFT"
	default:
		return "UNKNOWN"
	}
}

// Event is a single occurrence on the session connection. Message is set for
// EventMessage; Username is set for the presence events.
type Event struct {
	Type     EventType
	Message  protocol.Message
	Username string
}
