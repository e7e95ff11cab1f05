package server

import (
	"forumapi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostReply handles POST /threads/:threadId/comments/:commentId/replies
// @Summary Reply to a comment
// @Tags replies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param commentId path string true "Comment ID"
// @Param request body object{content=string} true "Reply"
// @Success 201 {object} object{status=string,data=object{addedReply=models.AddedReply}}
// @Failure 400 {object} object{status=string,message=string}
// @Failure 404 {object} object{status=string,message=string}
// @Router /threads/{threadId}/comments/{commentId}/replies [post]
func (s *Server) PostReply(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.replySvc().AddReply(c.UserContext(), service.AddReplyInput{
		ThreadID:  c.Params("threadId"),
		CommentID: c.Params("commentId"),
		Owner:     currentUserID(c),
		Payload:   payload,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{"addedReply": added})
}

// DeleteReply handles DELETE /threads/:threadId/comments/:commentId/replies/:replyId
// @Summary Delete a reply
// @Tags replies
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param commentId path string true "Comment ID"
// @Param replyId path string true "Reply ID"
// @Success 200 {object} object{status=string}
// @Failure 403 {object} object{status=string,message=string}
// @Failure 404 {object} object{status=string,message=string}
// @Router /threads/{threadId}/comments/{commentId}/replies/{replyId} [delete]
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	err := s.replySvc().DeleteReply(c.UserContext(), service.DeleteReplyInput{
		ThreadID:  c.Params("threadId"),
		CommentID: c.Params("commentId"),
		ReplyID:   c.Params("replyId"),
		UserID:    currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}
