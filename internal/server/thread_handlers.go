package server

import (
	"forumapi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostThread handles POST /threads
// @Summary Create a thread
// @Tags threads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{title=string,body=string} true "Thread"
// @Success 201 {object} object{status=string,data=object{addedThread=models.AddedThread}}
// @Failure 400 {object} object{status=string,message=string}
// @Failure 401 {object} object{status=string,message=string}
// @Router /threads [post]
func (s *Server) PostThread(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.threadSvc().AddThread(c.UserContext(), service.AddThreadInput{
		Owner:   currentUserID(c),
		Payload: payload,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{"addedThread": added})
}

// GetThread handles GET /threads/:threadId
// @Summary Get thread detail
// @Description Thread with its comments and replies, oldest first. Deleted content is masked.
// @Tags threads
// @Produce json
// @Param threadId path string true "Thread ID"
// @Success 200 {object} object{status=string,data=object{thread=models.ThreadView}}
// @Failure 404 {object} object{status=string,message=string}
// @Router /threads/{threadId} [get]
func (s *Server) GetThread(c *fiber.Ctx) error {
	view, err := s.threadSvc().GetThreadView(c.UserContext(), c.Params("threadId"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, fiber.Map{"thread": view})
}
