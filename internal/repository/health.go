package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// HealthRepository pings the database.
type HealthRepository interface {
	Now(ctx context.Context) (time.Time, error)
}

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

// Now returns the database clock. Any error means the database is unreachable.
func (r *healthRepository) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := r.db.WithContext(ctx).Raw("SELECT NOW()").Row().Scan(&now); err != nil {
		return time.Time{}, err
	}
	return now, nil
}
