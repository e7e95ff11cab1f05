package main

import (
	"bytes"
	"context"
	"testing"

	"forumapi/internal/config"
	"forumapi/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestRun(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{Env: "test", DBSchemaMode: database.SchemaModeSQL}
	ctx := context.Background()
	total := len(database.GetMigrations())

	var out bytes.Buffer
	require.NoError(t, run(ctx, db, cfg, []string{"status"}, &out))
	assert.Contains(t, out.String(), "applied=0")
	assert.Contains(t, out.String(), "pending: 000001_create_users")

	out.Reset()
	require.NoError(t, run(ctx, db, cfg, []string{"up"}, &out))
	assert.Equal(t, "sql migrations applied\n", out.String())

	out.Reset()
	require.NoError(t, run(ctx, db, cfg, []string{"status"}, &out))
	assert.Contains(t, out.String(), "pending=0")
	assert.Contains(t, out.String(), "applied: 000006_create_comment_likes")

	out.Reset()
	require.NoError(t, run(ctx, db, cfg, []string{"down", "6"}, &out))
	assert.Equal(t, "rolled back migration 000006\n", out.String())
	assert.False(t, db.Migrator().HasTable("comment_likes"))

	status, err := database.GetSchemaStatus(ctx, db, cfg)
	require.NoError(t, err)
	assert.Len(t, status.AppliedVersions, total-1)

	t.Run("down twice fails", func(t *testing.T) {
		assert.Error(t, run(ctx, db, cfg, []string{"down", "6"}, &bytes.Buffer{}))
	})
}

func TestRun_Usage(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{Env: "test"}
	ctx := context.Background()

	assert.ErrorIs(t, run(ctx, db, cfg, nil, &bytes.Buffer{}), errUsage)
	assert.ErrorIs(t, run(ctx, db, cfg, []string{"sideways"}, &bytes.Buffer{}), errUsage)
	assert.Error(t, run(ctx, db, cfg, []string{"down"}, &bytes.Buffer{}))
	assert.Error(t, run(ctx, db, cfg, []string{"down", "six"}, &bytes.Buffer{}))
}

func TestRun_AutoLeavesConfigAlone(t *testing.T) {
	db := setupDB(t)
	cfg := &config.Config{Env: "test", DBSchemaMode: database.SchemaModeSQL}

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), db, cfg, []string{"auto"}, &out))
	assert.Equal(t, "automigrations applied\n", out.String())
	assert.Equal(t, database.SchemaModeSQL, cfg.DBSchemaMode)
	assert.True(t, db.Migrator().HasTable("threads"))
}
