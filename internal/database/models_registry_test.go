package database

import (
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModels_IncludesCommentLike(t *testing.T) {
	found := false
	for _, model := range PersistentModels() {
		if _, ok := model.(*models.CommentLike); ok {
			found = true
			break
		}
	}
	require.True(t, found, "PersistentModels should include CommentLike")
}
