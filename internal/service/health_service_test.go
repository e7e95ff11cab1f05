package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type healthRepoStub struct {
	nowFn func(context.Context) (time.Time, error)
}

func (s healthRepoStub) Now(ctx context.Context) (time.Time, error) { return s.nowFn(ctx) }

func TestHealthService_Check(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		svc := NewHealthService(healthRepoStub{nowFn: func(ctx context.Context) (time.Time, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), nil
		}})
		status := svc.Check(context.Background())
		assert.True(t, status.Healthy())
		assert.Equal(t, "Server is healthy", status.Message)
		assert.Equal(t, "connected", status.Database)
		assert.Equal(t, "2024-01-02T03:04:05Z", status.Timestamp)
	})

	t.Run("database down", func(t *testing.T) {
		t.Parallel()
		svc := NewHealthService(healthRepoStub{nowFn: func(context.Context) (time.Time, error) {
			return time.Time{}, errors.New("connection refused")
		}})
		status := svc.Check(context.Background())
		assert.False(t, status.Healthy())
		assert.Equal(t, "error", status.Status)
		assert.Equal(t, "Database connection failed", status.Message)
		assert.Equal(t, "connection refused", status.Error)
	})
}
