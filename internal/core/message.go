package core

// Message is the domain model for a chat message kept in room history.
type Message struct {
	User string
	Text string
}
