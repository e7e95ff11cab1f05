package repository

import (
	"context"
	"time"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments.
// It never decides who may change a comment; callers compare owners.
type CommentRepository interface {
	Add(ctx context.Context, comment *models.NewComment) (*models.AddedComment, error)
	VerifyInThread(ctx context.Context, commentID, threadID string) error
	GetOwner(ctx context.Context, commentID string) (string, error)
	SoftDelete(ctx context.Context, commentID string) error
	ListByThread(ctx context.Context, threadID string) ([]models.CommentDetail, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Add(ctx context.Context, in *models.NewComment) (*models.AddedComment, error) {
	comment := models.Comment{
		ID:       newID("comment"),
		ThreadID: in.ThreadID,
		Content:  in.Content,
		Owner:    in.Owner,
		Date:     time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, internal(err)
	}
	return models.NewAddedComment(comment.ID, comment.Content, comment.Owner)
}

func (r *commentRepository) VerifyInThread(ctx context.Context, commentID, threadID string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND thread_id = ?", commentID, threadID).
		Count(&count).Error
	if err != nil {
		return internal(err)
	}
	if count == 0 {
		return models.NewNotFoundError(models.MsgCommentNotFound)
	}
	return nil
}

func (r *commentRepository) GetOwner(ctx context.Context, commentID string) (string, error) {
	var owners []string
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", commentID).Pluck("owner", &owners).Error; err != nil {
		return "", internal(err)
	}
	if len(owners) == 0 {
		return "", models.NewNotFoundError(models.MsgCommentNotFound)
	}
	return owners[0], nil
}

func (r *commentRepository) SoftDelete(ctx context.Context, commentID string) error {
	res := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", commentID).Update("is_delete", true)
	if res.Error != nil {
		return internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(models.MsgCommentNotFound)
	}
	return nil
}

// ListByThread returns the thread's comments with raw content, oldest first.
func (r *commentRepository) ListByThread(ctx context.Context, threadID string) ([]models.CommentDetail, error) {
	var rows []models.CommentDetail
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, COALESCE(users.username, '') AS username, comments.date, comments.content, comments.is_delete").
		Joins("LEFT JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, internal(err)
	}
	return rows, nil
}
