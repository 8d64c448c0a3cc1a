package services

import (
	"strings"
	"testing"

	"empirek/app/models"
	"empirek/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaqService(t *testing.T) {
	faqRepo := newMockFaqRepo()
	service := NewFaqService(faqRepo)

	t.Run("submit question", func(t *testing.T) {
		faq, err := service.SubmitQuestion("  What is your refund policy?  ", "", "")
		require.NoError(t, err)

		assert.Equal(t, "What is your refund policy?", faq.Question)
		assert.Equal(t, models.FaqStatusPending, faq.Status)
		assert.Equal(t, models.FaqCategoryGeneral, faq.Category)
		assert.False(t, faq.IsActive)
	})

	t.Run("blank question rejected", func(t *testing.T) {
		_, err := service.SubmitQuestion("   ", "", "")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "question", vErr.Field)
	})

	t.Run("invalid submitter email rejected", func(t *testing.T) {
		_, err := service.SubmitQuestion("A question here?", "Visitor", "nope")
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("pending question is not public", func(t *testing.T) {
		public, err := service.ListPublic("")
		require.NoError(t, err)
		assert.Empty(t, public)

		pending, err := service.ListPending()
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, models.FaqStatusPending, pending[0].Status)
	})

	t.Run("answer publishes the faq", func(t *testing.T) {
		faq, err := service.Answer(1, "Refunds within 30 days.", 0)
		require.NoError(t, err)

		assert.Equal(t, models.FaqStatusAnswered, faq.Status)
		assert.Equal(t, "Refunds within 30 days.", faq.Answer)
		assert.True(t, faq.IsActive)

		public, err := service.ListPublic("")
		require.NoError(t, err)
		require.Len(t, public, 1)
		assert.Equal(t, 1, public[0].ID)

		pending, err := service.ListPending()
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("empty answer rejected", func(t *testing.T) {
		_, err := service.Answer(1, "   ", 0)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("answer on missing faq", func(t *testing.T) {
		_, err := service.Answer(999, "Answer.", 0)
		assert.Equal(t, repositories.ErrNotFound, err)
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		faq, err := service.SubmitQuestion("Do you build mobile apps?", "", "")
		require.NoError(t, err)

		_, err = service.Answer(faq.ID, "Yes, we do.", faq.Version+7)
		assert.Equal(t, repositories.ErrConflict, err)

		_, err = service.Answer(faq.ID, "Yes, we do.", faq.Version)
		assert.NoError(t, err)
	})

	t.Run("toggle visibility is its own inverse", func(t *testing.T) {
		hidden, err := service.ToggleVisibility(1, 0)
		require.NoError(t, err)
		assert.False(t, hidden)

		public, err := service.ListPublic("")
		require.NoError(t, err)
		assert.Len(t, public, 1)

		shown, err := service.ToggleVisibility(1, 0)
		require.NoError(t, err)
		assert.True(t, shown)

		public, err = service.ListPublic("")
		require.NoError(t, err)
		assert.Len(t, public, 2)
	})

	t.Run("public list ordered and filterable", func(t *testing.T) {
		public, err := service.ListPublic("general")
		require.NoError(t, err)
		assert.Len(t, public, 2)
		for i := 1; i < len(public); i++ {
			assert.LessOrEqual(t, public[i-1].Order, public[i].Order)
		}

		public, err = service.ListPublic("pricing")
		require.NoError(t, err)
		assert.Empty(t, public)

		_, err = service.ListPublic("billing")
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("public list never contains inactive faqs", func(t *testing.T) {
		public, err := service.ListPublic("")
		require.NoError(t, err)
		for _, faq := range public {
			assert.True(t, faq.IsActive)
			assert.Equal(t, models.FaqStatusAnswered, faq.Status)
		}
	})

	t.Run("submitter name limit counts characters not bytes", func(t *testing.T) {
		faq, err := service.SubmitQuestion("هل تبنون متاجر إلكترونية؟", strings.Repeat("م", 60), "")
		require.NoError(t, err)
		assert.Equal(t, models.FaqStatusPending, faq.Status)

		_, err = service.SubmitQuestion("Do you offer support plans?", strings.Repeat("م", 101), "")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "submitterName", vErr.Field)
	})
}
