// Package service implements the forum use cases on top of the repositories.
package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/security"
)

// EventHook is told about every write that changes what a thread view shows.
// It runs after the write succeeded and cannot fail it.
type EventHook func(ctx context.Context, ev models.ThreadEvent)

func (h EventHook) emit(ctx context.Context, ev models.ThreadEvent) {
	if h != nil {
		h(ctx, ev)
	}
}

// TokenIssuer creates and checks the JWTs handed out at login.
type TokenIssuer interface {
	CreateAccessToken(p security.TokenPayload) (string, error)
	CreateRefreshToken(p security.TokenPayload) (string, error)
	VerifyRefreshToken(token string) (*security.TokenPayload, error)
	DecodePayload(token string) (*security.TokenPayload, error)
}

// PasswordHasher hashes passwords. Compare fails when they do not match.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password, hash string) error
}
