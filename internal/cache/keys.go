package cache

import "time"

const (
	threadViewPrefix   = "thread:view:"
	threadEventsPrefix = "threads:"
)

// DefaultThreadViewTTL applies when no TTL is configured.
const DefaultThreadViewTTL = 30 * time.Second

// ThreadViewKey is where the aggregated view of a thread is cached.
func ThreadViewKey(threadID string) string {
	return threadViewPrefix + threadID
}

// ThreadViewGenKey counts invalidations of a thread view. A load only stores
// its result while the counter still holds the value read before loading.
func ThreadViewGenKey(threadID string) string {
	return threadViewPrefix + threadID + ":gen"
}

// ThreadEventsChannel is the pub/sub channel that carries a thread's live events.
func ThreadEventsChannel(threadID string) string {
	return threadEventsPrefix + threadID + ":events"
}

// ThreadEventsPattern matches every thread events channel.
const ThreadEventsPattern = threadEventsPrefix + "*:events"
