package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck handles GET /health
// @Summary Health check
// @Description Reports whether the database answers.
// @Tags health
// @Produce json
// @Success 200 {object} service.HealthStatus
// @Failure 503 {object} service.HealthStatus
// @Router /health [get]
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	status := s.healthSvc().Check(c.UserContext())
	if !status.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.Status(fiber.StatusOK).JSON(status)
}

// LivenessCheck reports that the process is up
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now().UTC(),
	})
}
