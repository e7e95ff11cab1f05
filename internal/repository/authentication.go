package repository

import (
	"context"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// AuthenticationRepository stores the refresh tokens that are currently valid.
type AuthenticationRepository interface {
	Add(ctx context.Context, token string) error
	VerifyExists(ctx context.Context, token string) error
	Delete(ctx context.Context, token string) error
}

type authenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) AuthenticationRepository {
	return &authenticationRepository{db: db}
}

func (r *authenticationRepository) Add(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Create(&models.Authentication{Token: token}).Error; err != nil {
		return internal(err)
	}
	return nil
}

func (r *authenticationRepository) VerifyExists(ctx context.Context, token string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Authentication{}).Where("token = ?", token).Count(&count).Error; err != nil {
		return internal(err)
	}
	if count == 0 {
		return models.NewValidationError(models.MsgRefreshTokenNotFound)
	}
	return nil
}

func (r *authenticationRepository) Delete(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.Authentication{}).Error; err != nil {
		return internal(err)
	}
	return nil
}
