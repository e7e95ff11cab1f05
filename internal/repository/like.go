package repository

import (
	"context"

	"forumapi/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines persistence operations for comment likes.
type LikeRepository interface {
	Exists(ctx context.Context, commentID, userID string) (bool, error)
	Add(ctx context.Context, commentID, userID string) error
	Remove(ctx context.Context, commentID, userID string) error
	CountByComment(ctx context.Context, commentID string) (int, error)
	CountByThread(ctx context.Context, threadID string) (map[string]int, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, commentID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error; err != nil {
		return false, internal(err)
	}
	return count > 0, nil
}

// Add is idempotent: a concurrent like for the same pair is ignored.
func (r *likeRepository) Add(ctx context.Context, commentID, userID string) error {
	like := models.CommentLike{ID: newID("like"), CommentID: commentID, UserID: userID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
		return internal(err)
	}
	return nil
}

func (r *likeRepository) Remove(ctx context.Context, commentID, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{}).Error; err != nil {
		return internal(err)
	}
	return nil
}

func (r *likeRepository) CountByComment(ctx context.Context, commentID string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&count).Error; err != nil {
		return 0, internal(err)
	}
	return int(count), nil
}

// CountByThread returns like counts keyed by comment ID. Comments without likes are absent.
func (r *likeRepository) CountByThread(ctx context.Context, threadID string) (map[string]int, error) {
	var rows []struct {
		CommentID string
		Count     int
	}
	err := r.db.WithContext(ctx).
		Table("comment_likes").
		Select("comment_likes.comment_id, COUNT(*) AS count").
		Joins("JOIN comments ON comments.id = comment_likes.comment_id").
		Where("comments.thread_id = ?", threadID).
		Group("comment_likes.comment_id").
		Scan(&rows).Error
	if err != nil {
		return nil, internal(err)
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.CommentID] = row.Count
	}
	return counts, nil
}
