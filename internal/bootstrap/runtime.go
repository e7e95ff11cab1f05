// Package bootstrap wires the process-level dependencies shared by the
// command line entry points.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"forumapi/internal/cache"
	"forumapi/internal/config"
	"forumapi/internal/database"
	"forumapi/internal/middleware"
	"forumapi/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SkipSchema connects without applying DB_SCHEMA_MODE.
	SkipSchema bool
	// SkipRedis leaves the returned client nil.
	SkipRedis bool
	// FixturesPath, when set, is loaded into an empty database after connecting.
	FixturesPath string
}

// Runtime holds the connections opened by InitRuntime.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// InitRuntime connects to the database and Redis. Redis is optional: an
// unreachable server yields a nil client and the caller degrades.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: !opts.SkipSchema})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	rt := &Runtime{DB: db}

	if !opts.SkipRedis {
		rt.Redis = cache.InitRedis(cfg.RedisURL)
	}

	if opts.FixturesPath != "" {
		if err := loadFixturesIfEmpty(ctx, db, opts.FixturesPath); err != nil {
			rt.Close()
			return nil, err
		}
	}
	return rt, nil
}

func loadFixturesIfEmpty(ctx context.Context, db *gorm.DB, path string) error {
	var users int64
	if err := db.WithContext(ctx).Table("users").Count(&users).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if users > 0 {
		middleware.Logger.InfoContext(ctx, "Database already populated, skipping fixtures", slog.Int64("users", users))
		return nil
	}

	fx, err := seed.LoadFixtures(path)
	if err != nil {
		return err
	}
	summary, err := seed.NewSeeder(db, seed.Options{}).ApplyFixtures(ctx, fx)
	if err != nil {
		return fmt.Errorf("apply fixtures: %w", err)
	}
	middleware.Logger.InfoContext(ctx, "Fixtures loaded", slog.String("path", path), slog.String("summary", summary.String()))
	return nil
}

// Close releases every open connection.
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	if r.DB != nil {
		if sqlDB, err := r.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if r.Redis != nil {
		_ = r.Redis.Close()
	}
}
