package service

import (
	"context"
	"fmt"
	"sort"

	"forumapi/internal/cache"
	"forumapi/internal/featureflags"
	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// maxReplyFetches bounds the concurrent reply queries of one thread view.
const maxReplyFetches = 8

type ThreadService struct {
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository
	replyRepo   repository.ReplyRepository
	likeRepo    repository.LikeRepository
	flags       *featureflags.Manager
	views       *cache.ThreadViewCache
}

type AddThreadInput struct {
	Owner   string
	Payload models.Payload
}

// NewThreadService builds the thread use cases. flags and views may be nil.
func NewThreadService(
	threadRepo repository.ThreadRepository,
	commentRepo repository.CommentRepository,
	replyRepo repository.ReplyRepository,
	likeRepo repository.LikeRepository,
	flags *featureflags.Manager,
	views *cache.ThreadViewCache,
) *ThreadService {
	return &ThreadService{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
		replyRepo:   replyRepo,
		likeRepo:    likeRepo,
		flags:       flags,
		views:       views,
	}
}

func (s *ThreadService) AddThread(ctx context.Context, in AddThreadInput) (*models.AddedThread, error) {
	thread, err := models.NewAddThread(in.Payload, in.Owner)
	if err != nil {
		return nil, err
	}
	added, err := s.threadRepo.Add(ctx, thread)
	if err != nil {
		return nil, err
	}
	observability.Mutations.WithLabelValues("thread", "add").Inc()
	return added, nil
}

// GetThreadView returns the thread with its comments and replies, soft deleted
// content masked, dates normalized and both levels ordered oldest first.
func (s *ThreadService) GetThreadView(ctx context.Context, threadID string) (*models.ThreadView, error) {
	view, _, err := s.views.Get(ctx, threadID, func(ctx context.Context) (*models.ThreadView, error) {
		return s.buildView(ctx, threadID)
	})
	return view, err
}

func (s *ThreadService) buildView(ctx context.Context, threadID string) (view *models.ThreadView, err error) {
	ctx, span := observability.StartSpan(ctx, "ThreadService.buildView", attribute.String("thread.id", threadID))
	defer func() { observability.EndSpan(span, err) }()

	thread, err := s.threadRepo.GetDetail(ctx, threadID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("thread.comments", len(comments)))

	replies, err := s.fetchReplies(ctx, comments)
	if err != nil {
		return nil, err
	}

	var likes map[string]int
	withLikes := s.flags.On(featureflags.CommentLikeCount)
	if withLikes {
		if likes, err = s.likeRepo.CountByThread(ctx, threadID); err != nil {
			return nil, err
		}
	}

	threadDate, err := models.NormalizeDate(thread.Date)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("thread %s: %w", threadID, err))
	}

	view = &models.ThreadView{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     threadDate,
		Username: thread.Username,
		Comments: make([]models.CommentView, 0, len(comments)),
	}
	for i, c := range comments {
		cv, err := buildCommentView(c, replies[i])
		if err != nil {
			return nil, err
		}
		if withLikes {
			n := likes[c.ID]
			cv.LikeCount = &n
		}
		view.Comments = append(view.Comments, cv)
	}
	sort.SliceStable(view.Comments, func(i, j int) bool {
		return view.Comments[i].Date < view.Comments[j].Date
	})
	return view, nil
}

// fetchReplies loads the replies of every comment concurrently. The result is
// indexed like comments.
func (s *ThreadService) fetchReplies(ctx context.Context, comments []models.CommentDetail) ([][]models.ReplyDetail, error) {
	out := make([][]models.ReplyDetail, len(comments))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxReplyFetches)
	for i, c := range comments {
		g.Go(func() error {
			rows, err := s.replyRepo.ListByComment(gctx, c.ID)
			if err != nil {
				return err
			}
			out[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func buildCommentView(c models.CommentDetail, replies []models.ReplyDetail) (models.CommentView, error) {
	date, err := models.NormalizeDate(c.Date)
	if err != nil {
		return models.CommentView{}, models.NewInternalError(fmt.Errorf("comment %s: %w", c.ID, err))
	}
	cv := models.CommentView{
		ID:       c.ID,
		Username: c.Username,
		Date:     date,
		Content:  models.MaskComment(c.Content, c.IsDelete),
		Replies:  make([]models.ReplyView, 0, len(replies)),
	}
	for _, r := range replies {
		rdate, err := models.NormalizeDate(r.Date)
		if err != nil {
			return models.CommentView{}, models.NewInternalError(fmt.Errorf("reply %s: %w", r.ID, err))
		}
		cv.Replies = append(cv.Replies, models.ReplyView{
			ID:       r.ID,
			Username: r.Username,
			Date:     rdate,
			Content:  models.MaskReply(r.Content, r.IsDelete),
		})
	}
	sort.SliceStable(cv.Replies, func(i, j int) bool {
		return cv.Replies[i].Date < cv.Replies[j].Date
	})
	return cv, nil
}
