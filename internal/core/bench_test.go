package core

import (
	"context"
	"strconv"
	"testing"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(0, nil)
	go hub.Run(ctx)

	sender := NewClient("sender", 0)
	hub.RegisterClient(sender)
	sender.Commands <- &Command{Kind: CommandJoin, User: "sender", Room: "bench"}

	// The observed client gets a deep buffer so join chatter from the other
	// recipients is queued rather than dropped.
	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		buffer := 0
		if i == 0 {
			buffer = recipients*2 + 32
		}
		c := NewClient("c"+strconv.Itoa(i), buffer)
		hub.RegisterClient(c)
		c.Commands <- &Command{Kind: CommandJoin, User: "client" + strconv.Itoa(i), Room: "bench"}
		clients = append(clients, c)
	}

	// Drain events for all but the first recipient to avoid channel backpressure.
	target := clients[0]
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}
	go func() {
		for range sender.Events {
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sender.Commands <- &Command{
			Kind: CommandMessage,
			User: "sender",
			Room: "bench",
			Text: "payload",
		}
		for ev := <-target.Events; ev.Kind != EventMessage; ev = <-target.Events {
		}
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
