package security

import (
	"errors"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("secret_password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret_password", hash)

	assert.NoError(t, h.Compare("secret_password", hash))

	err = h.Compare("wrong_password", hash)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeUnauthorized, appErr.Code)
}
