package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

// RegisterUser validates the payload, checks the username is free and stores
// the user with a hashed password.
func (s *UserService) RegisterUser(ctx context.Context, payload models.Payload) (*models.RegisteredUser, error) {
	user, err := models.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.VerifyUsernameAvailable(ctx, user.Username); err != nil {
		return nil, err
	}
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user.Password = hashed

	registered, err := s.userRepo.Add(ctx, user)
	if err != nil {
		return nil, err
	}
	observability.Mutations.WithLabelValues("user", "add").Inc()
	return registered, nil
}
