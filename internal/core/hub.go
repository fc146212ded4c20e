package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Hub routes inbound client commands to room state and fans resulting
// events out to room members. It owns the Registry, the Directory, and the
// per-room histories; all of them are touched only from the Run goroutine,
// one command at a time, so a broadcast always reflects the state left by
// the mutation that triggered it.
type Hub struct {
	registry  *Registry
	directory *Directory
	histories map[string]*History

	clients map[string]*Client // conn id -> client

	register     chan *Client
	unregister   chan *Client
	inbound      chan inbound
	historyLimit int
	log          zerolog.Logger
}

type inbound struct {
	client *Client
	cmd    *Command
}

// NewHub constructs a hub. historyLimit bounds per-room history; zero or
// negative means DefaultHistoryLimit. logger may be nil.
func NewHub(historyLimit int, logger *zerolog.Logger) *Hub {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	lg := zerolog.Nop()
	if logger != nil {
		lg = *logger
	}
	return &Hub{
		registry:     NewRegistry(),
		directory:    NewDirectory(),
		histories:    make(map[string]*History),
		clients:      make(map[string]*Client),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		inbound:      make(chan inbound),
		historyLimit: historyLimit,
		log:          lg,
	}
}

// RegisterClient hands a freshly connected client to the hub.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
}

// UnregisterClient tells the hub the client's transport is gone. The caller
// should close c.Commands afterwards so the command pump terminates.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

// Run processes connects, disconnects, and commands until ctx is done.
// Each item is handled to completion before the next one is picked up.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.handleConnect(ctx, c)
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case in := <-h.inbound:
			h.handleCommand(in.client, in.cmd)
		}
	}
}

func (h *Hub) handleConnect(ctx context.Context, c *Client) {
	h.registry.RegisterConnect(c.ID)
	h.clients[c.ID] = c
	h.log.Debug().Str("conn_id", c.ID).Msg("client connected")

	// Pump this client's commands into the single inbound channel so the
	// select above stays the only place commands enter the state machine.
	// Once Run's context ends nobody drains inbound anymore, so the pump
	// bails out instead of blocking on the send.
	go func() {
		for cmd := range c.Commands {
			select {
			case h.inbound <- inbound{client: c, cmd: cmd}:
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) handleCommand(c *Client, cmd *Command) {
	if cmd == nil {
		return
	}
	// Commands raced against a disconnect are dropped.
	if _, known := h.clients[c.ID]; !known {
		return
	}
	switch cmd.Kind {
	case CommandJoin:
		h.handleJoin(c, cmd)
	case CommandLeave:
		h.handleLeave(c, cmd)
	case CommandMessage:
		h.handleMessage(c, cmd)
	case CommandTyping:
		h.handleTyping(c, cmd)
	}
}

func (h *Hub) handleJoin(c *Client, cmd *Command) {
	name := strings.TrimSpace(cmd.User)
	room := strings.TrimSpace(cmd.Room)
	if name == "" || room == "" {
		h.log.Debug().Str("conn_id", c.ID).Msg("join dropped: blank user or room")
		return
	}

	// A client is in at most one room. If it joins somewhere new without
	// leaving first, evict it from the old room and tell that room.
	if prev, wasBound := h.registry.Unassign(c.ID); wasBound && prev.Room != room {
		if prevName, removed := h.directory.Leave(prev.Room, c.ID); removed {
			h.reclaimRoom(prev.Room)
			h.announceLeft(prev.Room, prevName)
		}
	}

	h.registry.Assign(c.ID, room, name)
	h.directory.Join(room, c.ID, name)

	// History goes to the joiner only, and reflects the room before this
	// join; joining never appends a history entry.
	h.sendTo(c, &Event{Kind: EventHistory, Room: room, Messages: h.snapshotHistory(room)})
	h.broadcast(room, &Event{Kind: EventStatus, Room: room, Status: name + " joined the room."}, nil)
	h.broadcast(room, &Event{Kind: EventUserList, Room: room, Users: h.directory.Members(room)}, nil)

	h.log.Debug().Str("conn_id", c.ID).Str("room", room).Str("user", name).Msg("joined room")
}

func (h *Hub) handleLeave(c *Client, cmd *Command) {
	room := strings.TrimSpace(cmd.Room)
	if room == "" || !h.directory.IsMember(room, c.ID) {
		return
	}

	h.registry.Unassign(c.ID)
	name, _ := h.directory.Leave(room, c.ID)
	h.reclaimRoom(room)
	h.announceLeft(room, name)

	h.log.Debug().Str("conn_id", c.ID).Str("room", room).Str("user", name).Msg("left room")
}

func (h *Hub) handleMessage(c *Client, cmd *Command) {
	room := strings.TrimSpace(cmd.Room)
	text := strings.TrimSpace(cmd.Text)
	if room == "" || text == "" {
		return
	}

	msg := Message{User: cmd.User, Text: text}
	hist, ok := h.histories[room]
	if !ok {
		hist = NewHistory(h.historyLimit)
		h.histories[room] = hist
	}
	hist.Append(msg)

	h.broadcast(room, &Event{Kind: EventMessage, Room: room, User: msg.User, Message: msg}, nil)
}

func (h *Hub) handleTyping(c *Client, cmd *Command) {
	room := strings.TrimSpace(cmd.Room)
	if room == "" {
		return
	}
	// No state change; the sender never hears its own indicator.
	h.broadcast(room, &Event{Kind: EventTyping, Room: room, User: cmd.User, Typing: cmd.Typing}, c)
}

func (h *Hub) handleDisconnect(c *Client) {
	delete(h.clients, c.ID)
	h.registry.Forget(c.ID)

	// One room normally. Sweeping every room the directory still lists the
	// connection in keeps membership consistent even if the one-room
	// invariant was somehow broken.
	for _, room := range h.directory.RoomsOf(c.ID) {
		name, removed := h.directory.Leave(room, c.ID)
		if !removed {
			continue
		}
		h.reclaimRoom(room)
		h.announceLeft(room, name)
		h.log.Debug().Str("conn_id", c.ID).Str("room", room).Str("user", name).Msg("disconnected from room")
	}
	h.log.Debug().Str("conn_id", c.ID).Msg("client disconnected")
}

// announceLeft broadcasts the departure and the post-removal presence list.
func (h *Hub) announceLeft(room, name string) {
	h.broadcast(room, &Event{Kind: EventStatus, Room: room, Status: name + " left the room."}, nil)
	h.broadcast(room, &Event{Kind: EventUserList, Room: room, Users: h.directory.Members(room)}, nil)
}

// reclaimRoom drops the history of a room that has no members and nothing
// buffered. A room that still holds history survives so a later joiner can
// replay it.
func (h *Hub) reclaimRoom(room string) {
	if len(h.directory.MemberIDs(room)) != 0 {
		return
	}
	if hist, ok := h.histories[room]; ok && hist.Len() == 0 {
		delete(h.histories, room)
	}
}

func (h *Hub) snapshotHistory(room string) []Message {
	hist, ok := h.histories[room]
	if !ok {
		return []Message{}
	}
	return hist.Snapshot()
}

// broadcast fans the event out to the room's members, skipping exclude.
// Delivery is best-effort: a slow consumer has the event dropped rather
// than stalling the hub or the rest of the room.
func (h *Hub) broadcast(room string, ev *Event, exclude *Client) {
	for _, id := range h.directory.MemberIDs(room) {
		c, ok := h.clients[id]
		if !ok || c == exclude {
			continue
		}
		h.sendTo(c, ev)
	}
}

func (h *Hub) sendTo(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		h.log.Warn().Str("conn_id", c.ID).Int("kind", int(ev.Kind)).Msg("event dropped, slow consumer")
	}
}
