package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, "pool-1")
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Registration travels through the Run loop; give it a moment to land.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast(Event{Type: EventMemberJoined, PoolID: "pool-1", UserID: 1})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var event Event
	err = conn.ReadJSON(&event)
	require.NoError(t, err)
	assert.Equal(t, EventMemberJoined, event.Type)
	assert.Equal(t, "pool-1", event.PoolID)
	assert.Equal(t, 1, event.UserID)
}

func TestHubBroadcastOtherPool(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, "pool-1")
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	// Events for a different pool are not delivered to this subscriber.
	hub.Broadcast(Event{Type: EventRoundStarted, PoolID: "pool-2"})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	var event Event
	err = conn.ReadJSON(&event)
	assert.Error(t, err)
}

func TestBroadcastDoesNotBlock(t *testing.T) {
	hub := NewHub()
	// No Run loop: the buffered channel fills and further events are dropped.

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Broadcast(Event{Type: EventMemberJoined, PoolID: "pool-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked on a full event buffer")
	}
}
