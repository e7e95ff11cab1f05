package repository

import (
	"context"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthenticationRepository(db)
	ctx := context.Background()

	err := repo.VerifyExists(ctx, "token")
	assertAppCode(t, err, models.CodeValidation)
	assert.Contains(t, err.Error(), models.MsgRefreshTokenNotFound)

	require.NoError(t, repo.Add(ctx, "token"))
	assert.NoError(t, repo.VerifyExists(ctx, "token"))

	require.NoError(t, repo.Delete(ctx, "token"))
	assertAppCode(t, repo.VerifyExists(ctx, "token"), models.CodeValidation)
}
