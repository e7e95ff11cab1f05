package service

import (
	"context"
	"strings"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_RegisterUser(t *testing.T) {
	t.Parallel()

	valid := models.Payload{"username": "dicoding", "password": "secret", "fullname": "Dicoding Indonesia"}

	t.Run("payload errors", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(noopUserRepo(), fakeHasher{})
		tests := []struct {
			name    string
			payload models.Payload
			code    string
		}{
			{"missing", models.Payload{"username": "dicoding", "password": "secret"}, "REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY"},
			{"wrong type", models.Payload{"username": 123, "password": "secret", "fullname": true}, "REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION"},
			{"too long", models.Payload{"username": strings.Repeat("d", 51), "password": "secret", "fullname": "x"}, "REGISTER_USER.USERNAME_LIMIT_CHAR"},
			{"restricted", models.Payload{"username": "dico ding", "password": "secret", "fullname": "x"}, "REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER"},
		}
		for _, tt := range tests {
			_, err := svc.RegisterUser(context.Background(), tt.payload)
			assertDomainError(t, err, tt.code)
		}
	})

	t.Run("username taken", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.verifyUsernameAvailableFn = func(_ context.Context, _ string) error {
			return models.NewValidationError("username tidak tersedia")
		}
		svc := NewUserService(repo, fakeHasher{})
		_, err := svc.RegisterUser(context.Background(), valid)
		assertAppError(t, err, models.CodeValidation)
	})

	t.Run("stores hashed password", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		var stored *models.RegisterUser
		repo.addFn = func(_ context.Context, u *models.RegisterUser) (*models.RegisteredUser, error) {
			stored = u
			return &models.RegisteredUser{ID: "user-123", Username: u.Username, Fullname: u.Fullname}, nil
		}
		svc := NewUserService(repo, fakeHasher{})
		user, err := svc.RegisterUser(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, &models.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, user)
		assert.Equal(t, "hashed:secret", stored.Password)
	})
}
