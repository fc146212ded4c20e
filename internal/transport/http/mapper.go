package http

import (
	"encoding/json"

	"github.com/vovakirdan/roomcast-server/internal/core"
	"github.com/vovakirdan/roomcast-server/internal/proto"
)

func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error, error) {
	switch inbound.Type {
	case proto.InboundTypeJoin:
		var join proto.JoinData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandJoin,
			User: join.Username,
			Room: join.Room,
		}, nil, nil
	case proto.InboundTypeLeave:
		var leave proto.JoinData
		if err := json.Unmarshal(inbound.Data, &leave); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandLeave,
			User: leave.Username,
			Room: leave.Room,
		}, nil, nil
	case proto.InboundTypeMsg:
		var msg proto.MsgData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind: core.CommandMessage,
			User: msg.Username,
			Room: msg.Room,
			Text: msg.Msg,
		}, nil, nil
	case proto.InboundTypeTyping:
		var typing proto.TypingData
		if err := json.Unmarshal(inbound.Data, &typing); err != nil {
			return nil, nil, err
		}
		return &core.Command{
			Kind:   core.CommandTyping,
			User:   typing.Username,
			Room:   typing.Room,
			Typing: typing.Typing,
		}, nil, nil
	default:
		return nil, &proto.Error{Code: "invalid_message", Msg: "unknown message type"}, nil
	}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventHistory:
		entries := make([]proto.HistoryEntry, 0, len(event.Messages))
		for _, msg := range event.Messages {
			entries = append(entries, proto.HistoryEntry{Username: msg.User, Msg: msg.Text})
		}
		return proto.Outbound{Type: proto.OutboundTypeHistory, Data: entries}
	case core.EventStatus:
		return proto.Outbound{
			Type: proto.OutboundTypeStatus,
			Data: proto.StatusData{Msg: event.Status},
		}
	case core.EventUserList:
		users := event.Users
		if users == nil {
			users = []string{}
		}
		return proto.Outbound{Type: proto.OutboundTypeUserList, Data: users}
	case core.EventMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: proto.MessageData{Username: event.Message.User, Msg: event.Message.Text},
		}
	case core.EventTyping:
		return proto.Outbound{
			Type: proto.OutboundTypeTyping,
			Data: proto.TypingEvent{Username: event.User, Typing: event.Typing},
		}
	default:
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: "unknown_event", Msg: "unmapped event kind"},
		}
	}
}
