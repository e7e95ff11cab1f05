package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
)

type ReplyService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	replyRepo   repository.ReplyRepository
	onChange    EventHook
}

type AddReplyInput struct {
	ThreadID  string
	CommentID string
	Owner     string
	Payload   models.Payload
}

type DeleteReplyInput struct {
	ThreadID  string
	CommentID string
	ReplyID   string
	UserID    string
}

func NewReplyService(
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	replyRepo repository.ReplyRepository,
	onChange EventHook,
) *ReplyService {
	return &ReplyService{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		onChange:    onChange,
	}
}

func (s *ReplyService) AddReply(ctx context.Context, in AddReplyInput) (*models.AddedReply, error) {
	reply, err := models.NewAddReply(in.Payload, in.CommentID, in.Owner)
	if err != nil {
		return nil, err
	}
	if err := s.verifyParents(ctx, in.ThreadID, in.CommentID); err != nil {
		return nil, err
	}
	added, err := s.replyRepo.Add(ctx, reply)
	if err != nil {
		return nil, err
	}

	observability.Mutations.WithLabelValues("reply", "add").Inc()
	s.onChange.emit(ctx, models.ThreadEvent{
		Type:      models.EventReplyAdded,
		ThreadID:  in.ThreadID,
		CommentID: in.CommentID,
		ReplyID:   added.ID,
		UserID:    in.Owner,
	})
	return added, nil
}

// DeleteReply soft deletes a reply owned by the caller.
func (s *ReplyService) DeleteReply(ctx context.Context, in DeleteReplyInput) error {
	if err := s.verifyParents(ctx, in.ThreadID, in.CommentID); err != nil {
		return err
	}
	if err := s.replyRepo.VerifyInComment(ctx, in.ReplyID, in.CommentID); err != nil {
		return err
	}
	owner, err := s.replyRepo.GetOwner(ctx, in.ReplyID)
	if err != nil {
		return err
	}
	if owner != in.UserID {
		return models.NewForbiddenError(models.MsgForbidden)
	}
	if err := s.replyRepo.SoftDelete(ctx, in.ReplyID); err != nil {
		return err
	}

	observability.Mutations.WithLabelValues("reply", "delete").Inc()
	s.onChange.emit(ctx, models.ThreadEvent{
		Type:      models.EventReplyDeleted,
		ThreadID:  in.ThreadID,
		CommentID: in.CommentID,
		ReplyID:   in.ReplyID,
		UserID:    in.UserID,
	})
	return nil
}

func (s *ReplyService) verifyParents(ctx context.Context, threadID, commentID string) error {
	if err := s.threadRepo.VerifyExists(ctx, threadID); err != nil {
		return err
	}
	return s.commentRepo.VerifyInThread(ctx, commentID, threadID)
}
