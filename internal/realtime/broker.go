package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const eventsChannel = "numpool.pool.events"

// Broker publishes pool events through redis pub/sub so every server
// instance's hub sees them, including the publishing instance's own.
type Broker struct {
	client *redis.Client
	hub    *Hub
}

func NewBroker(client *redis.Client, hub *Hub) *Broker {
	return &Broker{
		client: client,
		hub:    hub,
	}
}

func (b *Broker) Publish(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal event", zap.Error(err))
		return
	}
	if err := b.client.Publish(ctx, eventsChannel, data).Err(); err != nil {
		zap.L().Error("can't publish event", zap.Error(err))
	}
}

// Run consumes the redis channel and feeds the local hub until ctx is done.
func (b *Broker) Run(ctx context.Context) {
	sub := b.client.Subscribe(ctx, eventsChannel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				zap.L().Error("can't unmarshal event", zap.Error(err))
				continue
			}
			b.hub.Broadcast(event)
		}
	}
}
