package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
)

type LikeService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	onChange    EventHook
}

type ToggleLikeInput struct {
	ThreadID  string
	CommentID string
	UserID    string
}

func NewLikeService(
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
	onChange EventHook,
) *LikeService {
	return &LikeService{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		onChange:    onChange,
	}
}

// ToggleLike likes the comment, or unlikes it when the user already liked it.
// It reports whether the comment is liked afterwards.
func (s *LikeService) ToggleLike(ctx context.Context, in ToggleLikeInput) (bool, error) {
	if err := s.threadRepo.VerifyExists(ctx, in.ThreadID); err != nil {
		return false, err
	}
	if err := s.commentRepo.VerifyInThread(ctx, in.CommentID, in.ThreadID); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.Exists(ctx, in.CommentID, in.UserID)
	if err != nil {
		return false, err
	}

	action, event := "like", models.EventCommentLiked
	if liked {
		err = s.likeRepo.Remove(ctx, in.CommentID, in.UserID)
		action, event = "unlike", models.EventCommentUnliked
	} else {
		err = s.likeRepo.Add(ctx, in.CommentID, in.UserID)
	}
	if err != nil {
		return false, err
	}

	observability.LikeToggles.WithLabelValues(action).Inc()
	s.onChange.emit(ctx, models.ThreadEvent{
		Type:      event,
		ThreadID:  in.ThreadID,
		CommentID: in.CommentID,
		UserID:    in.UserID,
	})
	return !liked, nil
}
