package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
)

type CommentService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	onChange    EventHook
}

type AddCommentInput struct {
	ThreadID string
	Owner    string
	Payload  models.Payload
}

type DeleteCommentInput struct {
	ThreadID  string
	CommentID string
	UserID    string
}

func NewCommentService(
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	onChange EventHook,
) *CommentService {
	return &CommentService{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		onChange:    onChange,
	}
}

func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (*models.AddedComment, error) {
	comment, err := models.NewAddComment(in.Payload, in.ThreadID, in.Owner)
	if err != nil {
		return nil, err
	}
	if err := s.threadRepo.VerifyExists(ctx, in.ThreadID); err != nil {
		return nil, err
	}
	added, err := s.commentRepo.Add(ctx, comment)
	if err != nil {
		return nil, err
	}

	observability.Mutations.WithLabelValues("comment", "add").Inc()
	s.onChange.emit(ctx, models.ThreadEvent{
		Type:      models.EventCommentAdded,
		ThreadID:  in.ThreadID,
		CommentID: added.ID,
		UserID:    in.Owner,
	})
	return added, nil
}

// DeleteComment soft deletes a comment owned by the caller.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	if err := s.threadRepo.VerifyExists(ctx, in.ThreadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyInThread(ctx, in.CommentID, in.ThreadID); err != nil {
		return err
	}
	owner, err := s.commentRepo.GetOwner(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if owner != in.UserID {
		return models.NewForbiddenError(models.MsgForbidden)
	}
	if err := s.commentRepo.SoftDelete(ctx, in.CommentID); err != nil {
		return err
	}

	observability.Mutations.WithLabelValues("comment", "delete").Inc()
	s.onChange.emit(ctx, models.ThreadEvent{
		Type:      models.EventCommentDeleted,
		ThreadID:  in.ThreadID,
		CommentID: in.CommentID,
		UserID:    in.UserID,
	})
	return nil
}
