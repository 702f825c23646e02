package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/langowen/cnbrates/internal/entities"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Notifier publishes fetch events to a Redis channel.
type Notifier struct {
	rdb     *redis.Client
	channel string
}

func NewNotifier(client *redis.Client, channel string) *Notifier {
	return &Notifier{
		rdb:     client,
		channel: channel,
	}
}

func InitNotifier(ctx context.Context, options *redis.Options, channel string) (*Notifier, error) {
	const op = "notifier.redis.InitNotifier"

	redisClient := redis.NewClient(options)

	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		_ = redisClient.Close()
		return nil, errors.Wrap(err, op)
	}

	return NewNotifier(redisClient, channel), nil
}

func (n *Notifier) PublishFetched(ctx context.Context, event entities.FetchEvent) error {
	const op = "notifier.redis.PublishFetched"

	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, op)
	}

	receivers, err := n.rdb.Publish(ctx, n.channel, payload).Result()
	if err != nil {
		return errors.Wrap(err, op)
	}

	slog.Debug("Published fetch event", "op", op, "channel", n.channel, "day", event.Day, "receivers", receivers)

	return nil
}

func (n *Notifier) Close() error {
	return n.rdb.Close()
}
