package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/scan-history/internal/logger"
)

// RedisNotifier publishes changes on a redis pub/sub channel so that every
// server instance can wake its own subscribers. Run must be running for
// Subscribe to receive anything.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	local   *MemoryNotifier

	logger *logger.Logger
}

// NewRedisNotifier returns a notifier publishing on channel.
func NewRedisNotifier(client *redis.Client, channel string, log *logger.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		local:   NewMemoryNotifier(log),
		logger:  log,
	}
}

// Publish sends deviceID to the channel.
func (n *RedisNotifier) Publish(ctx context.Context, deviceID string) error {
	if err := n.client.Publish(ctx, n.channel, deviceID).Err(); err != nil {
		return fmt.Errorf("publish change of %s: %w", deviceID, err)
	}
	return nil
}

// Subscribe implements [ChangeNotifier].
func (n *RedisNotifier) Subscribe(ctx context.Context, deviceID string) <-chan struct{} {
	return n.local.Subscribe(ctx, deviceID)
}

// Run relays channel messages to local subscribers until ctx is done.
func (n *RedisNotifier) Run(ctx context.Context) error {
	pubsub := n.client.Subscribe(ctx, n.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		n.logger.Err(err).Str("channel", n.channel).Msg("error subscribing to change channel")
		return fmt.Errorf("subscribe %s: %w", n.channel, err)
	}
	n.logger.Info().Str("channel", n.channel).Msg("listening for scan changes")

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			n.handle(msg)
		}
	}
}

func (n *RedisNotifier) handle(msg *redis.Message) {
	if msg.Payload == "" {
		n.logger.Warn().Str("channel", msg.Channel).Msg("empty change notification ignored")
		return
	}
	n.local.notify(msg.Payload)
}
