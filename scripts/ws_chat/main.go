// Command ws_chat is an interactive probe speaking the relay protocol.
// It joins a room, prints everything the server emits, and sends stdin
// lines as chat messages. "/typing on|off" and "/leave" map to the
// corresponding frames.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/roomcast-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "username")
	room := flag.String("room", "general", "room to join")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(frameType string, payload any) {
		data, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			log.Printf("marshal %s: %v", frameType, marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: frameType, Data: data}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	send(proto.InboundTypeJoin, proto.JoinData{Username: *user, Room: *room})

	fmt.Printf("Connected to %s as %s in room %s\n", *addr, *user, *room)
	fmt.Println("Type messages and press Enter to send. /typing on|off, /leave, Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/leave":
			send(proto.InboundTypeLeave, proto.JoinData{Username: *user, Room: *room})
		case line == "/typing on" || line == "/typing off":
			send(proto.InboundTypeTyping, proto.TypingData{
				Username: *user,
				Room:     *room,
				Typing:   strings.HasSuffix(line, "on"),
			})
		default:
			send(proto.InboundTypeMsg, proto.MsgData{Username: *user, Room: *room, Msg: line})
		}
	}

	cancel()
	return scanner.Err()
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}
		printOutbound(outbound)
	}
}

func printOutbound(outbound proto.Outbound) {
	raw, err := json.Marshal(outbound.Data)
	if err != nil {
		log.Printf("marshal outbound data: %v", err)
		return
	}

	switch outbound.Type {
	case proto.OutboundTypeHistory:
		var entries []proto.HistoryEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			log.Printf("unmarshal history: %v", err)
			return
		}
		for _, e := range entries {
			fmt.Printf("(history) %s: %s\n", e.Username, e.Msg)
		}
	case proto.OutboundTypeStatus:
		var status proto.StatusData
		if err := json.Unmarshal(raw, &status); err != nil {
			log.Printf("unmarshal status: %v", err)
			return
		}
		fmt.Printf("* %s\n", status.Msg)
	case proto.OutboundTypeUserList:
		var users []string
		if err := json.Unmarshal(raw, &users); err != nil {
			log.Printf("unmarshal user_list: %v", err)
			return
		}
		fmt.Printf("* online: %s\n", strings.Join(users, ", "))
	case proto.OutboundTypeMessage:
		var msg proto.MessageData
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("unmarshal message: %v", err)
			return
		}
		fmt.Printf("%s: %s\n", msg.Username, msg.Msg)
	case proto.OutboundTypeTyping:
		var typing proto.TypingEvent
		if err := json.Unmarshal(raw, &typing); err != nil {
			log.Printf("unmarshal typing: %v", err)
			return
		}
		if typing.Typing {
			fmt.Printf("* %s is typing...\n", typing.Username)
		} else {
			fmt.Printf("* %s stopped typing\n", typing.Username)
		}
	case proto.OutboundTypeError:
		if outbound.Error != nil {
			fmt.Printf("! error %s: %s\n", outbound.Error.Code, outbound.Error.Msg)
		}
	}
}
