package server

import (
	"forumapi/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PostComment handles POST /threads/:threadId/comments
// @Summary Comment on a thread
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param request body object{content=string} true "Comment"
// @Success 201 {object} object{status=string,data=object{addedComment=models.AddedComment}}
// @Failure 400 {object} object{status=string,message=string}
// @Failure 404 {object} object{status=string,message=string}
// @Router /threads/{threadId}/comments [post]
func (s *Server) PostComment(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.commentSvc().AddComment(c.UserContext(), service.AddCommentInput{
		ThreadID: c.Params("threadId"),
		Owner:    currentUserID(c),
		Payload:  payload,
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{"addedComment": added})
}

// DeleteComment handles DELETE /threads/:threadId/comments/:commentId
// @Summary Delete a comment
// @Description Soft deletes the comment. Only its owner may delete it.
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} object{status=string}
// @Failure 403 {object} object{status=string,message=string}
// @Failure 404 {object} object{status=string,message=string}
// @Router /threads/{threadId}/comments/{commentId} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	err := s.commentSvc().DeleteComment(c.UserContext(), service.DeleteCommentInput{
		ThreadID:  c.Params("threadId"),
		CommentID: c.Params("commentId"),
		UserID:    currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}

// PutCommentLike handles PUT /threads/:threadId/comments/:commentId/likes
// @Summary Like or unlike a comment
// @Description Toggles the caller's like on the comment.
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param threadId path string true "Thread ID"
// @Param commentId path string true "Comment ID"
// @Success 200 {object} object{status=string}
// @Failure 404 {object} object{status=string,message=string}
// @Router /threads/{threadId}/comments/{commentId}/likes [put]
func (s *Server) PutCommentLike(c *fiber.Ctx) error {
	_, err := s.likeSvc().ToggleLike(c.UserContext(), service.ToggleLikeInput{
		ThreadID:  c.Params("threadId"),
		CommentID: c.Params("commentId"),
		UserID:    currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}
