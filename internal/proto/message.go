package proto

import "encoding/json"

// Inbound is the envelope for frames coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeJoin   = "join"
	InboundTypeLeave  = "leave"
	InboundTypeMsg    = "msg"
	InboundTypeTyping = "typing"

	OutboundTypeHistory  = "history"
	OutboundTypeStatus   = "status"
	OutboundTypeUserList = "user_list"
	OutboundTypeMessage  = "message"
	OutboundTypeTyping   = "typing"
	OutboundTypeError    = "error"
)

// JoinData requests to join a room under a display name. Leave frames use
// the same shape.
type JoinData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

// MsgData is a chat message from the client.
type MsgData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
	Msg      string `json:"msg"`
}

// TypingData signals that the client started or stopped typing.
type TypingData struct {
	Username string `json:"username"`
	Room     string `json:"room"`
	Typing   bool   `json:"typing"`
}

// Outbound is the envelope for frames sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// HistoryEntry is one replayed message inside a history frame.
type HistoryEntry struct {
	Username string `json:"username"`
	Msg      string `json:"msg"`
}

// StatusData announces a join or leave to a room.
type StatusData struct {
	Msg string `json:"msg"`
}

// MessageData is a chat message relayed to room members.
type MessageData struct {
	Username string `json:"username"`
	Msg      string `json:"msg"`
}

// TypingEvent relays a member's typing indicator to the rest of the room.
type TypingEvent struct {
	Username string `json:"username"`
	Typing   bool   `json:"typing"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
