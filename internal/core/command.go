package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoin subscribes the client to a room under a display name.
	CommandJoin CommandKind = iota
	// CommandLeave unsubscribes the client from a room.
	CommandLeave
	// CommandMessage delivers a chat message to room participants.
	CommandMessage
	// CommandTyping relays a typing indicator to the rest of the room.
	CommandTyping
)

// Command represents an action requested by a client. Connect and
// disconnect are not commands; they are the register/unregister edges of
// the client's lifetime.
type Command struct {
	Kind   CommandKind
	User   string
	Room   string
	Text   string
	Typing bool
}
