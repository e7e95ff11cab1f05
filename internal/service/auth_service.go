package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/repository"
	"forumapi/internal/security"
)

// Tokens is the pair returned by a successful login.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type AuthService struct {
	userRepo repository.UserRepository
	authRepo repository.AuthenticationRepository
	tokens   TokenIssuer
	hasher   PasswordHasher
}

func NewAuthService(
	userRepo repository.UserRepository,
	authRepo repository.AuthenticationRepository,
	tokens TokenIssuer,
	hasher PasswordHasher,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		authRepo: authRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Login checks the credentials and issues a new token pair. The refresh token
// is stored so it can be refreshed or revoked later.
func (s *AuthService) Login(ctx context.Context, payload models.Payload) (*Tokens, error) {
	login, err := models.NewUserLogin(payload)
	if err != nil {
		return nil, err
	}
	hashed, err := s.userRepo.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}
	if err := s.hasher.Compare(login.Password, hashed); err != nil {
		return nil, err
	}
	id, err := s.userRepo.GetIDByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}

	claims := security.TokenPayload{ID: id, Username: login.Username}
	access, err := s.tokens.CreateAccessToken(claims)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	refresh, err := s.tokens.CreateRefreshToken(claims)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.authRepo.Add(ctx, refresh); err != nil {
		return nil, err
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh issues a new access token for a stored, valid refresh token.
func (s *AuthService) Refresh(ctx context.Context, payload models.Payload) (string, error) {
	refresh, err := models.RefreshTokenFrom(payload, models.RefreshAuthentication)
	if err != nil {
		return "", err
	}
	if _, err := s.tokens.VerifyRefreshToken(refresh); err != nil {
		return "", err
	}
	if err := s.authRepo.VerifyExists(ctx, refresh); err != nil {
		return "", err
	}
	claims, err := s.tokens.DecodePayload(refresh)
	if err != nil {
		return "", err
	}
	access, err := s.tokens.CreateAccessToken(*claims)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return access, nil
}

// Logout revokes a stored refresh token.
func (s *AuthService) Logout(ctx context.Context, payload models.Payload) error {
	refresh, err := models.RefreshTokenFrom(payload, models.DeleteAuthentication)
	if err != nil {
		return err
	}
	if err := s.authRepo.VerifyExists(ctx, refresh); err != nil {
		return err
	}
	return s.authRepo.Delete(ctx, refresh)
}
