package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"servicehub/models"

	"github.com/go-redis/redis/v8"
)

// RedisRatingNotifier publishes rating events as JSON on a Redis channel.
type RedisRatingNotifier struct {
	client  *redis.Client
	channel string
	timeout time.Duration
}

// NewRedisRatingNotifier returns a notifier publishing on channel.
func NewRedisRatingNotifier(client *redis.Client, channel string) *RedisRatingNotifier {
	return &RedisRatingNotifier{client: client, channel: channel, timeout: 2 * time.Second}
}

func (n *RedisRatingNotifier) NotifyRating(ctx context.Context, event models.RatingEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode rating event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish rating event on %s: %w", n.channel, err)
	}
	return nil
}

// Subscribe streams decoded events from channel until ctx is done.
// Malformed payloads are skipped.
func Subscribe(ctx context.Context, client *redis.Client, channel string) (<-chan models.RatingEvent, error) {
	sub := client.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	out := make(chan models.RatingEvent)
	go func() {
		defer close(out)
		defer sub.Close()
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event models.RatingEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
