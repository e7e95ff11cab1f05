package bootstrap

import (
	"context"
	"testing"

	"forumapi/internal/database"
	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLoadFixturesIfEmpty(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	ctx := context.Background()
	require.NoError(t, database.RunMigrations(ctx, db))

	rt := &Runtime{DB: db}
	t.Cleanup(rt.Close)

	const fixtures = "../seed/testdata/forum.yml"
	require.NoError(t, loadFixturesIfEmpty(ctx, db, fixtures))

	var threads int64
	require.NoError(t, db.Model(&models.Thread{}).Count(&threads).Error)
	assert.Equal(t, int64(1), threads)

	t.Run("Populated database is left alone", func(t *testing.T) {
		require.NoError(t, loadFixturesIfEmpty(ctx, db, fixtures))
		require.NoError(t, db.Model(&models.Thread{}).Count(&threads).Error)
		assert.Equal(t, int64(1), threads)
	})

	t.Run("Missing file", func(t *testing.T) {
		empty, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
		require.NoError(t, err)
		emptyDB, err := empty.DB()
		require.NoError(t, err)
		emptyDB.SetMaxOpenConns(1)
		t.Cleanup(func() { _ = emptyDB.Close() })
		require.NoError(t, database.RunMigrations(ctx, empty))
		assert.Error(t, loadFixturesIfEmpty(ctx, empty, "testdata/missing.yml"))
	})
}

func TestRuntimeClose_NilSafe(t *testing.T) {
	var rt *Runtime
	assert.NotPanics(t, rt.Close)
	assert.NotPanics(t, (&Runtime{}).Close)
}
