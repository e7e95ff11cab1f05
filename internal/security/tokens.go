// Package security issues and verifies JWTs and hashes passwords.
package security

import (
	"errors"
	"fmt"
	"time"

	"forumapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "forum-api"
	tokenAudience = "forum-client"
)

// TokenPayload is the identity carried inside access and refresh tokens.
type TokenPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TokenManager signs access and refresh tokens with separate HMAC keys.
// Access tokens expire after accessAge; refresh tokens only expire by revocation.
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte
	accessAge  time.Duration
	now        func() time.Time
}

func NewTokenManager(accessKey, refreshKey string, accessAge time.Duration) *TokenManager {
	return &TokenManager{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessAge:  accessAge,
		now:        time.Now,
	}
}

func (m *TokenManager) claims(p TokenPayload) jwt.MapClaims {
	now := m.now()
	return jwt.MapClaims{
		"sub":      p.ID,
		"username": p.Username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      uuid.NewString(),
	}
}

// CreateAccessToken signs a short-lived token for p.
func (m *TokenManager) CreateAccessToken(p TokenPayload) (string, error) {
	claims := m.claims(p)
	claims["exp"] = m.now().Add(m.accessAge).Unix()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.accessKey)
}

// CreateRefreshToken signs a token that can later be exchanged for access tokens.
func (m *TokenManager) CreateRefreshToken(p TokenPayload) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, m.claims(p)).SignedString(m.refreshKey)
}

// VerifyAccessToken checks signature, expiry, issuer and audience.
func (m *TokenManager) VerifyAccessToken(token string) (*TokenPayload, error) {
	p, err := m.verify(token, m.accessKey, jwt.WithExpirationRequired())
	if err != nil {
		return nil, models.NewUnauthorizedError("Missing authentication")
	}
	return p, nil
}

// VerifyRefreshToken checks the signature of a refresh token.
func (m *TokenManager) VerifyRefreshToken(token string) (*TokenPayload, error) {
	p, err := m.verify(token, m.refreshKey)
	if err != nil {
		return nil, models.NewValidationError("refresh token tidak valid")
	}
	return p, nil
}

// DecodePayload reads the identity from a token without verifying it.
func (m *TokenManager) DecodePayload(token string) (*TokenPayload, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return payloadFrom(claims)
}

func (m *TokenManager) verify(token string, key []byte, opts ...jwt.ParserOption) (*TokenPayload, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(m.now),
	)
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return key, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return payloadFrom(claims)
}

func payloadFrom(claims jwt.MapClaims) (*TokenPayload, error) {
	id, ok := claims["sub"].(string)
	if !ok || id == "" {
		return nil, errors.New("token has no subject")
	}
	username, _ := claims["username"].(string)
	return &TokenPayload{ID: id, Username: username}, nil
}
