// Package notifications delivers live thread events over Redis pub/sub and websockets.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"strings"

	"forumapi/internal/cache"
	"forumapi/internal/middleware"
	"forumapi/internal/models"

	"github.com/redis/go-redis/v9"
)

// Notifier publishes thread events into Redis channels.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
// A nil client turns every operation into a no-op.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishThreadEvent sends ev to the channel of its thread.
func (n *Notifier) PublishThreadEvent(ctx context.Context, ev models.ThreadEvent) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal thread event: %w", err)
	}
	return n.rdb.Publish(ctx, cache.ThreadEventsChannel(ev.ThreadID), payload).Err()
}

// StartThreadSubscriber subscribes to every thread events channel and calls
// onMessage with the thread ID and raw payload until ctx is cancelled.
func (n *Notifier) StartThreadSubscriber(
	ctx context.Context, onMessage func(threadID string, payload string),
) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, cache.ThreadEventsPattern)
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				threadID, ok := threadIDFromChannel(msg.Channel)
				if !ok {
					middleware.Logger.Warn("invalid thread events channel", "channel", msg.Channel)
					continue
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							middleware.Logger.Error("panic in thread subscriber", "panic", r, "stack", string(debug.Stack()))
						}
					}()
					onMessage(threadID, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// threadIDFromChannel parses channels of the form threads:<id>:events.
func threadIDFromChannel(channel string) (string, bool) {
	rest, ok := strings.CutPrefix(channel, "threads:")
	if !ok {
		return "", false
	}
	id, ok := strings.CutSuffix(rest, ":events")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
