package seed

import (
	"context"
	"testing"

	"forumapi/internal/models"
	"forumapi/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures(t *testing.T) {
	fx, err := LoadFixtures("testdata/forum.yml")
	require.NoError(t, err)

	require.Len(t, fx.Users, 2)
	require.Len(t, fx.Threads, 1)
	th := fx.Threads[0]
	require.NotNil(t, th.Date)
	assert.Equal(t, 2021, th.Date.Year())
	require.Len(t, th.Comments, 2)
	assert.Equal(t, []string{"dicoding", "johndoe"}, th.Comments[0].Likes)
	assert.True(t, th.Comments[0].Replies[1].Deleted)
	assert.True(t, th.Comments[1].Deleted)
}

func TestParseFixtures_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			name:    "Unknown owner",
			yaml:    "users:\n  - username: a\nthreads:\n  - title: t\n    body: b\n    owner: ghost\n",
			errPart: `threads[0].owner: unknown user "ghost"`,
		},
		{
			name:    "Unknown liker",
			yaml:    "users:\n  - username: a\nthreads:\n  - title: t\n    body: b\n    owner: a\n    comments:\n      - owner: a\n        content: c\n        likes: [b]\n",
			errPart: `threads[0].comments[0].likes: unknown user "b"`,
		},
		{
			name:    "Duplicate user",
			yaml:    "users:\n  - username: a\n  - username: a\n",
			errPart: "duplicate username",
		},
		{
			name:    "Missing body",
			yaml:    "users:\n  - username: a\nthreads:\n  - title: t\n    owner: a\n",
			errPart: "title and body are required",
		},
		{
			name:    "Unknown field",
			yaml:    "users:\n  - username: a\n    email: a@example.com\n",
			errPart: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFixtures([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestApplyFixtures(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	fx, err := LoadFixtures("testdata/forum.yml")
	require.NoError(t, err)

	summary, err := NewSeeder(db, Options{SkipBcrypt: true}).ApplyFixtures(ctx, fx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Users: 2, Threads: 1, Comments: 2, Replies: 2, Likes: 2}, *summary)

	var thread models.Thread
	require.NoError(t, db.First(&thread).Error)

	detail, err := repository.NewThreadRepository(db).GetDetail(ctx, thread.ID)
	require.NoError(t, err)
	assert.Equal(t, "sebuah thread", detail.Title)
	assert.Equal(t, "dicoding", detail.Username)

	comments, err := repository.NewCommentRepository(db).ListByThread(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "johndoe", comments[0].Username)
	assert.False(t, comments[0].IsDelete)
	assert.True(t, comments[1].IsDelete)

	replies, err := repository.NewReplyRepository(db).ListByComment(ctx, comments[0].ID)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "sebuah balasan", replies[0].Content)
	assert.True(t, replies[1].IsDelete)

	likes, err := repository.NewLikeRepository(db).CountByComment(ctx, comments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	t.Run("Users can log in with fixture passwords", func(t *testing.T) {
		password, err := repository.NewUserRepository(db).GetPasswordByUsername(ctx, "dicoding")
		require.NoError(t, err)
		assert.Equal(t, "secret", password)
	})
}

func TestApplyFixtures_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	fx := &Fixture{Users: []FixtureUser{{Username: "dicoding"}, {Username: "dicoding"}}}

	_, err := NewSeeder(db, Options{SkipBcrypt: true}).ApplyFixtures(context.Background(), fx)
	require.Error(t, err)

	assert.Equal(t, int64(0), count(t, db, &models.User{}))
}
