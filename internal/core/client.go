package core

// DefaultClientBuffer is the per-client channel depth for commands and events.
const DefaultClientBuffer = 16

// Client is one live connection as seen by the core layer. The transport
// writes parsed commands into Commands and drains Events onto the wire;
// the hub never blocks on either.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with buffered channels.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = DefaultClientBuffer
	}
	return &Client{
		ID:       id,
		Commands: make(chan *Command, buffer),
		Events:   make(chan *Event, buffer),
	}
}
