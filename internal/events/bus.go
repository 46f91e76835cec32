package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/provreg/provreg/internal/config"
	"github.com/provreg/provreg/internal/usecase"
)

// Bus fans registry events out over a Redis pub/sub channel so that every
// API instance can stream them to its websocket clients.
type Bus struct {
	rdb *redis.Client
}

func NewBus(addr, password string) *Bus {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &Bus{rdb: rdb}
}

func (b *Bus) Publish(ctx context.Context, ev usecase.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, config.REDIS_CHANNEL_EVENTS, payload).Err()
}

// Subscribe returns a channel of registry events and a cancel function
// that tears the subscription down.
func (b *Bus) Subscribe(ctx context.Context) (<-chan usecase.Event, func()) {
	sub := b.rdb.Subscribe(ctx, config.REDIS_CHANNEL_EVENTS)
	out := make(chan usecase.Event, 16)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev usecase.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				fmt.Printf("[Events] skipping malformed event: %v\n", err)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }
}

func (b *Bus) Close() error {
	return b.rdb.Close()
}

// Fanout publishes each event to every underlying publisher, reporting
// the first error.
func Fanout(publishers ...usecase.EventPublisher) usecase.EventPublisher {
	return fanout(publishers)
}

type fanout []usecase.EventPublisher

func (f fanout) Publish(ctx context.Context, ev usecase.Event) error {
	var first error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}
