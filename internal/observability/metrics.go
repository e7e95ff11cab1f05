package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ThreadViews counts thread detail aggregations by cache outcome.
	ThreadViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_thread_views_total",
		Help: "Total number of thread detail views",
	}, []string{"source"})

	// LikeToggles counts like toggles by resulting action.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_like_toggles_total",
		Help: "Total number of comment like toggles",
	}, []string{"action"})

	// Mutations counts successful writes by entity and operation.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_mutations_total",
		Help: "Total number of forum writes",
	}, []string{"entity", "op"})

	// LiveConnections is the number of open thread live-feed websockets.
	LiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "forum_live_connections",
		Help: "Number of open thread live-feed websocket connections",
	})

	// LiveDrops counts live events dropped because a client could not keep up.
	LiveDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_live_dropped_events_total",
		Help: "Total number of live events dropped due to backpressure",
	}, []string{"reason"})
)

const queryStartKey = "observability:query_start"

// RegisterQueryMetrics installs gorm callbacks that feed DatabaseQueryLatency.
func RegisterQueryMetrics(db *gorm.DB) error {
	type hook struct {
		op       string
		register func(before, after func(*gorm.DB)) error
	}
	cb := db.Callback()
	hooks := []hook{
		{"create", func(b, a func(*gorm.DB)) error {
			if err := cb.Create().Before("gorm:create").Register("metrics:before_create", b); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register("metrics:after_create", a)
		}},
		{"query", func(b, a func(*gorm.DB)) error {
			if err := cb.Query().Before("gorm:query").Register("metrics:before_query", b); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register("metrics:after_query", a)
		}},
		{"update", func(b, a func(*gorm.DB)) error {
			if err := cb.Update().Before("gorm:update").Register("metrics:before_update", b); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register("metrics:after_update", a)
		}},
		{"delete", func(b, a func(*gorm.DB)) error {
			if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", b); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register("metrics:after_delete", a)
		}},
		{"raw", func(b, a func(*gorm.DB)) error {
			if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", b); err != nil {
				return err
			}
			return cb.Raw().After("gorm:raw").Register("metrics:after_raw", a)
		}},
		{"row", func(b, a func(*gorm.DB)) error {
			if err := cb.Row().Before("gorm:row").Register("metrics:before_row", b); err != nil {
				return err
			}
			return cb.Row().After("gorm:row").Register("metrics:after_row", a)
		}},
	}

	for _, h := range hooks {
		op := h.op
		before := func(tx *gorm.DB) { tx.InstanceSet(queryStartKey, time.Now()) }
		after := func(tx *gorm.DB) { observeQuery(tx, op) }
		if err := h.register(before, after); err != nil {
			return err
		}
	}
	return nil
}

func observeQuery(tx *gorm.DB, op string) {
	v, ok := tx.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	table := tx.Statement.Table
	if table == "" {
		table = "raw"
	}
	DatabaseQueryLatency.WithLabelValues(op, table).Observe(time.Since(start).Seconds())
}
