package server

import (
	"errors"
	"strings"

	"forumapi/internal/middleware"
	"forumapi/internal/notifications"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// requireLiveUpgrade rejects plain HTTP requests and unknown threads before the
// websocket handshake. A valid bearer token is optional; it only tags the viewer.
func (s *Server) requireLiveUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return respondFail(c, fiber.StatusUpgradeRequired, "koneksi websocket diperlukan")
	}
	if s.hub == nil {
		return respondFail(c, fiber.StatusServiceUnavailable, "live feed tidak tersedia")
	}
	if err := s.threadRepo.VerifyExists(c.UserContext(), c.Params("threadId")); err != nil {
		return respondError(c, err)
	}
	if userID, ok := s.optionalUserID(c); ok {
		c.Locals("userID", userID)
	}
	return c.Next()
}

// optionalUserID reads the bearer token if one is present but never fails the request.
func (s *Server) optionalUserID(c *fiber.Ctx) (string, bool) {
	parts := strings.Fields(c.Get(fiber.HeaderAuthorization))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || s.tokens == nil {
		return "", false
	}
	payload, err := s.tokens.VerifyAccessToken(parts[1])
	if err != nil {
		return "", false
	}
	return payload.ID, true
}

// ThreadLiveHandler streams the events of one thread to a websocket client.
// @Summary Thread live feed
// @Description Websocket stream of comment, reply and like events for a thread.
// @Tags threads
// @Param threadId path string true "Thread ID"
// @Success 101
// @Failure 404 {object} object{status=string,message=string}
// @Failure 426 {object} object{status=string,message=string}
// @Router /threads/{threadId}/live [get]
func (s *Server) ThreadLiveHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		threadID := conn.Params("threadId")
		userID, _ := conn.Locals("userID").(string)

		client, err := s.hub.Register(threadID, userID, conn)
		if err != nil {
			reason := "live feed unavailable"
			if errors.Is(err, notifications.ErrThreadFull) || errors.Is(err, notifications.ErrServerFull) {
				reason = err.Error()
			}
			middleware.Logger.Warn("live feed registration refused", "thread_id", threadID, "error", err)
			_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"`+reason+`"}`))
			_ = conn.Close()
			return
		}

		middleware.Logger.Info("live feed connected", "thread_id", threadID, "watchers", s.hub.Watchers(threadID))

		go client.WritePump()
		client.ReadPump()
	})
}
