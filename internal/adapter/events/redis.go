package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bytebonds-backend/internal/domain/event"

	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

// RedisSink publishes events on a pub/sub channel for external indexers.
// Delivery is fire-and-forget: failures are logged, never returned, and a
// dead redis must not fail the ledger operation that emitted the event.
type RedisSink struct {
	rdb     *redis.Client
	channel string
}

func NewRedisSink(rdb *redis.Client, channel string) *RedisSink {
	return &RedisSink{rdb: rdb, channel: channel}
}

func (s *RedisSink) Publish(_ context.Context, e event.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		log.Printf("events: marshal %s: %v", e.Kind, err)
		return
	}
	// detach from the request context; the operation already committed
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.rdb.Publish(ctx, s.channel, payload).Err(); err != nil {
		log.Printf("events: publish %s: %v", e.Kind, err)
	}
}

// LogSink writes events to the standard logger. Useful when no redis is
// configured and in tests.
type LogSink struct{}

func (LogSink) Publish(_ context.Context, e event.Event) {
	log.Printf("event %s bond=%s amount=%d", e.Kind, e.BondID, e.Amount)
}
