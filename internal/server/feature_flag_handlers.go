package server

import "github.com/gofiber/fiber/v2"

// GetFeatureFlags returns configured feature flags and their evaluated state for the current user.
// @Summary Feature flags
// @Tags feature-flags
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{status=string,data=object{raw=object,evaluated=object}}
// @Router /feature-flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return respondSuccess(c, fiber.StatusOK, fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(currentUserID(c)),
	})
}
