package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"forumapi/internal/middleware"
	"forumapi/internal/models"
	"forumapi/internal/observability"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Sources reported by ThreadViewCache.Get.
const (
	SourceCache = "cache"
	SourceStore = "store"
)

const (
	// DefaultViewLoadTimeout bounds a shared load once it no longer follows the
	// context of the request that started it.
	DefaultViewLoadTimeout = 10 * time.Second

	// genTTL outlives any load, so a counter never resets while a load reads it.
	genTTL = 24 * time.Hour
)

// setIfGen stores the view only if the generation is still the one the loader saw.
// KEYS[1] view, KEYS[2] generation; ARGV[1] generation, ARGV[2] payload, ARGV[3] ttl ms.
var setIfGen = redis.NewScript(`
local cur = redis.call('GET', KEYS[2])
if not cur then cur = '0' end
if cur ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// ThreadViewCache keeps aggregated thread views in Redis. Concurrent misses for
// the same thread and generation share a single load. A nil cache or client
// always loads.
type ThreadViewCache struct {
	rdb         redis.Cmdable
	ttl         time.Duration
	loadTimeout time.Duration
	sf          singleflight.Group
}

func NewThreadViewCache(rdb redis.Cmdable, ttl time.Duration) *ThreadViewCache {
	if ttl <= 0 {
		ttl = DefaultThreadViewTTL
	}
	return &ThreadViewCache{rdb: rdb, ttl: ttl, loadTimeout: DefaultViewLoadTimeout}
}

// Get returns the cached view or calls load and stores its result.
// Redis failures are logged and never fail the request. A caller whose context
// ends stops waiting without cancelling the load other callers share.
func (c *ThreadViewCache) Get(
	ctx context.Context,
	threadID string,
	load func(context.Context) (*models.ThreadView, error),
) (*models.ThreadView, string, error) {
	if c == nil || c.rdb == nil {
		view, err := load(ctx)
		return view, SourceStore, err
	}

	key := ThreadViewKey(threadID)
	var cached models.ThreadView
	found, err := GetJSON(ctx, c.rdb, key, &cached)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "thread view cache read failed", "thread_id", threadID, "error", err)
	}
	if found {
		observability.ThreadViews.WithLabelValues(SourceCache).Inc()
		return &cached, SourceCache, nil
	}

	// Read before loading: an invalidation during the load bumps the
	// generation and the stale result is not stored.
	gen, cacheable := c.generation(ctx, threadID)
	flight := key + "@" + gen
	if !cacheable {
		flight = key + "@uncached"
	}

	ch := c.sf.DoChan(flight, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.loadTimeout)
		defer cancel()

		view, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if cacheable {
			c.store(loadCtx, threadID, gen, view)
		}
		return view, nil
	})

	select {
	case <-ctx.Done():
		return nil, SourceStore, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, SourceStore, res.Err
		}
		observability.ThreadViews.WithLabelValues(SourceStore).Inc()
		return res.Val.(*models.ThreadView), SourceStore, nil
	}
}

// generation returns the current invalidation counter of a thread. The second
// result is false when Redis could not answer, in which case nothing is stored.
func (c *ThreadViewCache) generation(ctx context.Context, threadID string) (string, bool) {
	gen, err := c.rdb.Get(ctx, ThreadViewGenKey(threadID)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", true
	}
	if err != nil {
		middleware.Logger.WarnContext(ctx, "thread view generation read failed", "thread_id", threadID, "error", err)
		return "", false
	}
	return gen, true
}

func (c *ThreadViewCache) store(ctx context.Context, threadID, gen string, view *models.ThreadView) {
	payload, err := json.Marshal(view)
	if err == nil {
		err = setIfGen.Run(ctx, c.rdb,
			[]string{ThreadViewKey(threadID), ThreadViewGenKey(threadID)},
			gen, payload, c.ttl.Milliseconds(),
		).Err()
	}
	if err != nil {
		middleware.Logger.WarnContext(ctx, "thread view cache write failed", "thread_id", threadID, "error", err)
	}
}

// Invalidate drops the cached view of a thread. The generation is bumped before
// the delete, so a load that read the old generation can neither survive the
// delete nor store after it.
func (c *ThreadViewCache) Invalidate(ctx context.Context, threadID string) {
	if c == nil || c.rdb == nil {
		return
	}
	genKey := ThreadViewGenKey(threadID)
	if err := c.rdb.Incr(ctx, genKey).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "thread view generation bump failed", "thread_id", threadID, "error", err)
	} else if err := c.rdb.Expire(ctx, genKey, genTTL).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "thread view generation expiry failed", "thread_id", threadID, "error", err)
	}
	if err := Invalidate(ctx, c.rdb, ThreadViewKey(threadID)); err != nil {
		middleware.Logger.WarnContext(ctx, "thread view cache invalidation failed", "thread_id", threadID, "error", err)
	}
}
