package repository

import (
	"context"
	"time"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// ThreadRepository defines persistence operations for threads.
type ThreadRepository interface {
	Add(ctx context.Context, thread *models.NewThread) (*models.AddedThread, error)
	VerifyExists(ctx context.Context, threadID string) error
	GetDetail(ctx context.Context, threadID string) (*models.ThreadDetail, error)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository returns a new ThreadRepository implementation.
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Add(ctx context.Context, in *models.NewThread) (*models.AddedThread, error) {
	thread := models.Thread{
		ID:    newID("thread"),
		Title: in.Title,
		Body:  in.Body,
		Owner: in.Owner,
		Date:  time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&thread).Error; err != nil {
		return nil, internal(err)
	}
	return models.NewAddedThread(thread.ID, thread.Title, thread.Owner)
}

func (r *threadRepository) VerifyExists(ctx context.Context, threadID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Thread{}).Where("id = ?", threadID).Count(&count).Error; err != nil {
		return internal(err)
	}
	if count == 0 {
		return models.NewNotFoundError(models.MsgThreadNotFound)
	}
	return nil
}

func (r *threadRepository) GetDetail(ctx context.Context, threadID string) (*models.ThreadDetail, error) {
	var detail models.ThreadDetail
	res := r.db.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, threads.date, users.username").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ?", threadID).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		return nil, internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(models.MsgThreadNotFound)
	}
	return &detail, nil
}
