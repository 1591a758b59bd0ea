package realtime

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type client struct {
	poolID string
	conn   *websocket.Conn
}

// Hub fans pool events out to websocket subscribers. All connection state is
// owned by the Run goroutine; other goroutines talk to it through channels.
type Hub struct {
	register   chan *client
	unregister chan *client
	events     chan Event
	clients    map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan Event, 100),
		clients:    make(map[string]map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for _, conns := range h.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			return
		case c := <-h.register:
			if h.clients[c.poolID] == nil {
				h.clients[c.poolID] = make(map[*websocket.Conn]struct{})
			}
			h.clients[c.poolID][c.conn] = struct{}{}
		case c := <-h.unregister:
			if conns, ok := h.clients[c.poolID]; ok {
				delete(conns, c.conn)
				if len(conns) == 0 {
					delete(h.clients, c.poolID)
				}
			}
			c.conn.Close()
		case event := <-h.events:
			for conn := range h.clients[event.PoolID] {
				if err := conn.WriteJSON(event); err != nil {
					zap.L().Debug("dropping websocket client", zap.Error(err))
					delete(h.clients[event.PoolID], conn)
					conn.Close()
				}
			}
		}
	}
}

// Broadcast hands an event to the Run loop. Slow consumers do not block the
// caller: when the buffer is full the event is dropped.
func (h *Hub) Broadcast(event Event) {
	select {
	case h.events <- event:
	default:
		zap.L().Warn("event buffer full, dropping event", zap.String("type", event.Type))
	}
}

// ServeWS upgrades the request and subscribes it to the pool's event stream.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, poolID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("failed to upgrade to websocket", zap.Error(err))
		return
	}

	c := &client{poolID: poolID, conn: conn}
	h.register <- c

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- c
				return
			}
		}
	}()
}
