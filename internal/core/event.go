package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventHistory delivers recent room messages to a client upon joining.
	EventHistory EventKind = iota
	// EventStatus announces a join or leave to a room.
	EventStatus
	// EventUserList carries the room's presence list after a membership change.
	EventUserList
	// EventMessage notifies clients about a chat message in a room.
	EventMessage
	// EventTyping relays a member's typing indicator.
	EventTyping
)

// Event is sent to clients to describe what happened in the system.
// Kind decides which fields are meaningful.
type Event struct {
	Kind     EventKind
	Room     string
	User     string    // message/typing sender
	Status   string    // EventStatus text
	Typing   bool      // EventTyping flag
	Message  Message   // EventMessage payload
	Messages []Message // EventHistory payload
	Users    []string  // EventUserList payload
}
