// Package redis relays poll updates between server instances over Redis pub/sub.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vncsmyrnk/livepoll/internal/core/domain"
	"github.com/vncsmyrnk/livepoll/internal/core/ports"
	"github.com/vncsmyrnk/livepoll/internal/lib/logger"
)

const DefaultChannel = "livepoll:poll-updates"

// Relay publishes results to a Redis channel and, through Run, hands every
// result seen on that channel to the local broadcaster. With a relay in place
// each instance's own votes reach its own subscribers through Redis too.
type Relay struct {
	client  *goredis.Client
	channel string
	local   ports.ResultsBroadcaster
	log     *slog.Logger
}

func NewRelay(client *goredis.Client, channel string, local ports.ResultsBroadcaster, log *slog.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Relay{
		client:  client,
		channel: channel,
		local:   local,
		log:     log,
	}
}

func (r *Relay) Broadcast(ctx context.Context, results *domain.PollResults) error {
	const op = "redis.Relay.Broadcast"

	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		// Other instances miss this update, local subscribers still get it.
		r.log.Warn("publish failed, delivering locally only",
			slog.String("op", op),
			slog.Int64("poll_id", results.PollID),
			logger.Err(err),
		)
		if err := r.local.Broadcast(ctx, results); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return nil
}

// Run subscribes to the channel and blocks until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	const op = "redis.Relay.Run"

	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	r.log.Info("relay subscribed", slog.String("channel", r.channel))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var results domain.PollResults
			if err := json.Unmarshal([]byte(msg.Payload), &results); err != nil {
				r.log.Warn("dropping malformed relay message", slog.String("op", op), logger.Err(err))
				continue
			}
			if err := r.local.Broadcast(ctx, &results); err != nil {
				r.log.Warn("local broadcast failed", slog.String("op", op), logger.Err(err))
			}
		}
	}
}
