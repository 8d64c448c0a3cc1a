package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validComment() *Comment {
	return &Comment{
		ID:        1,
		PostID:    "post-abc",
		Name:      "Test Visitor",
		Email:     "visitor@example.com",
		Message:   "This is a valid comment message.",
		CreatedAt: time.Now(),
	}
}

func TestCommentValidate(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		assert.NoError(t, validComment().Validate())
	})

	t.Run("missing post id", func(t *testing.T) {
		c := validComment()
		c.PostID = ""
		assert.Error(t, c.Validate())
	})

	t.Run("name too long", func(t *testing.T) {
		c := validComment()
		c.Name = strings.Repeat("a", 101)
		assert.Error(t, c.Validate())
	})

	t.Run("invalid email", func(t *testing.T) {
		c := validComment()
		c.Email = "not-an-email"
		assert.Error(t, c.Validate())
	})

	t.Run("message too short", func(t *testing.T) {
		c := validComment()
		c.Message = "too short"
		assert.Error(t, c.Validate())
	})

	t.Run("message too long", func(t *testing.T) {
		c := validComment()
		c.Message = strings.Repeat("a", 1001)
		assert.Error(t, c.Validate())
	})

	t.Run("optional website must be a url", func(t *testing.T) {
		c := validComment()
		c.Website = "https://example.com"
		assert.NoError(t, c.Validate())

		c.Website = "not a url"
		assert.Error(t, c.Validate())
	})

	t.Run("zero created_at", func(t *testing.T) {
		c := validComment()
		c.CreatedAt = time.Time{}
		assert.Error(t, c.Validate())
	})
}

func TestCommentBeforeCreate(t *testing.T) {
	c := &Comment{}
	c.BeforeCreate()
	assert.False(t, c.CreatedAt.IsZero())

	// An already-set creation time is preserved
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c = &Comment{CreatedAt: fixed}
	c.BeforeCreate()
	assert.Equal(t, fixed, c.CreatedAt)
}

func TestCommentPublic(t *testing.T) {
	c := validComment()
	c.Website = "https://example.com"

	public := c.Public()
	assert.Equal(t, c.ID, public.ID)
	assert.Equal(t, c.PostID, public.PostID)
	assert.Equal(t, c.Name, public.Name)
	assert.Equal(t, c.Website, public.Website)
	assert.Equal(t, c.Message, public.Message)
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"visitor@example.com",
		"first.last@sub.example.org",
		"user-name@my-host.io",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@example",
		"user@example.toolong",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}
