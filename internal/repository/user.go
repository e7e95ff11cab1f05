package repository

import (
	"context"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Add(ctx context.Context, user *models.RegisterUser) (*models.RegisteredUser, error)
	VerifyUsernameAvailable(ctx context.Context, username string) error
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIDByUsername(ctx context.Context, username string) (string, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Add stores the user. Password must already be hashed.
func (r *userRepository) Add(ctx context.Context, in *models.RegisterUser) (*models.RegisteredUser, error) {
	user := models.User{
		ID:       newID("user"),
		Username: in.Username,
		Password: in.Password,
		Fullname: in.Fullname,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, models.NewValidationError("username tidak tersedia")
		}
		return nil, internal(err)
	}
	return &models.RegisteredUser{ID: user.ID, Username: user.Username, Fullname: user.Fullname}, nil
}

func (r *userRepository) VerifyUsernameAvailable(ctx context.Context, username string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return internal(err)
	}
	if count > 0 {
		return models.NewValidationError("username tidak tersedia")
	}
	return nil
}

func (r *userRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	return r.pluck(ctx, "password", username, "username tidak ditemukan")
}

func (r *userRepository) GetIDByUsername(ctx context.Context, username string) (string, error) {
	return r.pluck(ctx, "id", username, "user tidak ditemukan")
}

func (r *userRepository) pluck(ctx context.Context, column, username, missing string) (string, error) {
	var values []string
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Pluck(column, &values).Error; err != nil {
		return "", internal(err)
	}
	if len(values) == 0 {
		return "", models.NewValidationError(missing)
	}
	return values[0], nil
}
