package service

import (
	"context"
	"time"

	"forumapi/internal/repository"
)

const healthTimeout = 2 * time.Second

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp,omitempty"`
	Database  string `json:"database,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Healthy reports whether Status describes a working server.
func (h HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

type HealthService struct {
	repo repository.HealthRepository
}

func NewHealthService(repo repository.HealthRepository) *HealthService {
	return &HealthService{repo: repo}
}

// Check pings the database and never returns an error; failures are
// described in the status.
func (s *HealthService) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	now, err := s.repo.Now(ctx)
	if err != nil {
		return HealthStatus{
			Status:  "error",
			Message: "Database connection failed",
			Error:   err.Error(),
		}
	}
	return HealthStatus{
		Status:    "ok",
		Message:   "Server is healthy",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Database:  "connected",
	}
}
