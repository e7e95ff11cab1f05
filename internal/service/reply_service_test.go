package service

import (
	"context"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyService_AddReply(t *testing.T) {
	t.Parallel()

	in := AddReplyInput{ThreadID: "thread-123", CommentID: "comment-123", Owner: "user-123", Payload: models.Payload{"content": "sebuah balasan"}}

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		svc := NewReplyService(noopThreadRepo(), noopCommentRepo(), noopReplyRepo(), nil)
		bad := in
		bad.Payload = models.Payload{"content": 42}
		_, err := svc.AddReply(context.Background(), bad)
		assertDomainError(t, err, "ADD_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("comment not in thread", func(t *testing.T) {
		t.Parallel()
		comments := noopCommentRepo()
		comments.verifyInThreadFn = func(_ context.Context, _, _ string) error {
			return models.NewNotFoundError(models.MsgCommentNotFound)
		}
		svc := NewReplyService(noopThreadRepo(), comments, noopReplyRepo(), nil)
		_, err := svc.AddReply(context.Background(), in)
		assertAppError(t, err, models.CodeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		rec := &eventRecorder{}
		svc := NewReplyService(noopThreadRepo(), noopCommentRepo(), noopReplyRepo(), rec.hook())
		added, err := svc.AddReply(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, &models.AddedReply{ID: "reply-123", Content: "sebuah balasan", Owner: "user-123"}, added)
		require.Len(t, rec.events, 1)
		assert.Equal(t, models.EventReplyAdded, rec.events[0].Type)
		assert.Equal(t, "reply-123", rec.events[0].ReplyID)
	})
}

func TestReplyService_DeleteReply(t *testing.T) {
	t.Parallel()

	in := DeleteReplyInput{ThreadID: "thread-123", CommentID: "comment-123", ReplyID: "reply-123", UserID: "user-123"}

	t.Run("thread not found", func(t *testing.T) {
		t.Parallel()
		svc := NewReplyService(missingThreadRepo(), noopCommentRepo(), noopReplyRepo(), nil)
		assertAppError(t, svc.DeleteReply(context.Background(), in), models.CodeNotFound)
	})

	t.Run("reply not found", func(t *testing.T) {
		t.Parallel()
		replies := noopReplyRepo()
		replies.verifyInCommentFn = func(_ context.Context, _, _ string) error {
			return models.NewNotFoundError(models.MsgReplyNotFound)
		}
		svc := NewReplyService(noopThreadRepo(), noopCommentRepo(), replies, nil)
		err := svc.DeleteReply(context.Background(), in)
		assertAppError(t, err, models.CodeNotFound)
		assert.Contains(t, err.Error(), models.MsgReplyNotFound)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		replies := noopReplyRepo()
		replies.getOwnerFn = func(_ context.Context, _ string) (string, error) { return "user-999", nil }
		svc := NewReplyService(noopThreadRepo(), noopCommentRepo(), replies, nil)
		assertAppError(t, svc.DeleteReply(context.Background(), in), models.CodeForbidden)
	})

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()
		replies := noopReplyRepo()
		var deleted string
		replies.softDeleteFn = func(_ context.Context, id string) error {
			deleted = id
			return nil
		}
		rec := &eventRecorder{}
		svc := NewReplyService(noopThreadRepo(), noopCommentRepo(), replies, rec.hook())
		require.NoError(t, svc.DeleteReply(context.Background(), in))
		assert.Equal(t, "reply-123", deleted)
		require.Len(t, rec.events, 1)
		assert.Equal(t, models.EventReplyDeleted, rec.events[0].Type)
	})
}
