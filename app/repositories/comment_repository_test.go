package repositories

import (
	"fmt"
	"testing"

	"empirek/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComment(postID string) *models.Comment {
	return &models.Comment{
		PostID:  postID,
		Name:    "Test Visitor",
		Email:   "visitor@example.com",
		Message: "This is a test comment message.",
	}
}

func TestBadgerCommentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewBadgerCommentRepository(db)

	t.Run("create assigns id and created_at", func(t *testing.T) {
		comment := newTestComment("post-1")
		require.NoError(t, repo.Create(comment))
		assert.Equal(t, 1, comment.ID)
		assert.False(t, comment.CreatedAt.IsZero())
	})

	t.Run("get by id", func(t *testing.T) {
		comment, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, "post-1", comment.PostID)
		assert.Equal(t, "Test Visitor", comment.Name)
	})

	t.Run("get missing id", func(t *testing.T) {
		_, err := repo.GetByID(999)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("list by post", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			c := newTestComment("post-2")
			c.Message = fmt.Sprintf("Comment number %d on post two.", i)
			require.NoError(t, repo.Create(c))
		}

		comments, err := repo.ListByPost("post-2")
		require.NoError(t, err)
		assert.Len(t, comments, 3)
		for _, c := range comments {
			assert.Equal(t, "post-2", c.PostID)
		}

		// Other posts are untouched
		comments, err = repo.ListByPost("post-1")
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("list all", func(t *testing.T) {
		comments, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, comments, 4)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(1))

		_, err := repo.GetByID(1)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("delete already deleted id reports not found", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, repo.Delete(1))
	})
}
