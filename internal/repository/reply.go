package repository

import (
	"context"
	"time"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository defines persistence operations for replies.
type ReplyRepository interface {
	Add(ctx context.Context, reply *models.NewReply) (*models.AddedReply, error)
	VerifyInComment(ctx context.Context, replyID, commentID string) error
	GetOwner(ctx context.Context, replyID string) (string, error)
	SoftDelete(ctx context.Context, replyID string) error
	ListByComment(ctx context.Context, commentID string) ([]models.ReplyDetail, error)
}

type replyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Add(ctx context.Context, in *models.NewReply) (*models.AddedReply, error) {
	reply := models.Reply{
		ID:        newID("reply"),
		CommentID: in.CommentID,
		Content:   in.Content,
		Owner:     in.Owner,
		Date:      time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&reply).Error; err != nil {
		return nil, internal(err)
	}
	return models.NewAddedReply(reply.ID, reply.Content, reply.Owner)
}

func (r *replyRepository) VerifyInComment(ctx context.Context, replyID, commentID string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reply{}).
		Where("id = ? AND comment_id = ?", replyID, commentID).
		Count(&count).Error
	if err != nil {
		return internal(err)
	}
	if count == 0 {
		return models.NewNotFoundError(models.MsgReplyNotFound)
	}
	return nil
}

func (r *replyRepository) GetOwner(ctx context.Context, replyID string) (string, error) {
	var owners []string
	if err := r.db.WithContext(ctx).Model(&models.Reply{}).Where("id = ?", replyID).Pluck("owner", &owners).Error; err != nil {
		return "", internal(err)
	}
	if len(owners) == 0 {
		return "", models.NewNotFoundError(models.MsgReplyNotFound)
	}
	return owners[0], nil
}

func (r *replyRepository) SoftDelete(ctx context.Context, replyID string) error {
	res := r.db.WithContext(ctx).Model(&models.Reply{}).Where("id = ?", replyID).Update("is_delete", true)
	if res.Error != nil {
		return internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError(models.MsgReplyNotFound)
	}
	return nil
}

// ListByComment returns the comment's replies with raw content, oldest first.
func (r *replyRepository) ListByComment(ctx context.Context, commentID string) ([]models.ReplyDetail, error) {
	var rows []models.ReplyDetail
	err := r.db.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, COALESCE(users.username, '') AS username, replies.date, replies.content, replies.is_delete").
		Joins("LEFT JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, internal(err)
	}
	return rows, nil
}
