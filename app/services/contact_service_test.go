package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"empirek/app/models"
	"empirek/app/notify"
	"empirek/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mailerFunc adapts a function to the notify.Mailer interface
type mailerFunc func(to, subject, body string) error

func (f mailerFunc) Send(to, subject, body string) error { return f(to, subject, body) }

// brokenAttemptRepo fails every RecordAttempt call
type brokenAttemptRepo struct {
	*mock.ContactRepository
	attemptErr error
}

func (r *brokenAttemptRepo) RecordAttempt(id int, nextAttemptAt time.Time) error {
	return r.attemptErr
}

func testContactMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Name:    "Test Visitor",
		Email:   "visitor@example.com",
		Phone:   "+123456789",
		Message: "I would like a quote for a new website.",
	}
}

func TestContactService(t *testing.T) {
	contactRepo := newMockContactRepo()
	mailer := &fakeMailer{}
	service := NewContactService(contactRepo, mailer, "operator@empirek.com")

	t.Run("submit dispatches and marks delivered", func(t *testing.T) {
		msg := testContactMessage()
		reference, err := service.SubmitMessage(msg)
		require.NoError(t, err)
		assert.NotEmpty(t, reference)
		assert.Equal(t, 1, mailer.sentCount())

		stored, err := contactRepo.GetByID(msg.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ContactStatusDelivered, stored.Status)
		assert.NotNil(t, stored.DeliveredAt)
	})

	t.Run("dispatch failure keeps the message queued", func(t *testing.T) {
		mailer.setFail(true)
		defer mailer.setFail(false)

		msg := testContactMessage()
		reference, err := service.SubmitMessage(msg)

		var dErr *notify.DispatchError
		require.ErrorAs(t, err, &dErr)
		assert.NotEmpty(t, reference, "the reference survives a dispatch failure")

		stored, getErr := contactRepo.GetByID(msg.ID)
		require.NoError(t, getErr)
		assert.Equal(t, models.ContactStatusQueued, stored.Status)
		assert.Equal(t, 1, stored.Attempts)
		assert.True(t, stored.NextAttemptAt.After(stored.CreatedAt))
	})

	t.Run("validation happens before any store or dispatch call", func(t *testing.T) {
		sentBefore := mailer.sentCount()

		msg := testContactMessage()
		msg.Email = "user@"
		_, err := service.SubmitMessage(msg)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
		assert.Zero(t, msg.ID, "nothing was persisted")
		assert.Equal(t, sentBefore, mailer.sentCount())
	})

	t.Run("validation errors", func(t *testing.T) {
		cases := []struct {
			name  string
			field string
			edit  func(*models.ContactMessage)
		}{
			{"missing name", "name", func(m *models.ContactMessage) { m.Name = "" }},
			{"short phone", "phone", func(m *models.ContactMessage) { m.Phone = "123" }},
			{"short message", "message", func(m *models.ContactMessage) { m.Message = "123456789" }},
			{"short multibyte message", "message", func(m *models.ContactMessage) { m.Message = strings.Repeat("م", 9) }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				msg := testContactMessage()
				tc.edit(msg)
				_, err := service.SubmitMessage(msg)
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tc.field, vErr.Field)
			})
		}
	})

	t.Run("retry bookkeeping failure keeps the dispatch error visible", func(t *testing.T) {
		storeErr := errors.New("store unavailable")
		repo := &brokenAttemptRepo{ContactRepository: newMockContactRepo(), attemptErr: storeErr}
		failing := &fakeMailer{}
		failing.setFail(true)
		svc := NewContactService(repo, failing, "operator@empirek.com")

		reference, err := svc.SubmitMessage(testContactMessage())

		var dErr *notify.DispatchError
		require.ErrorAs(t, err, &dErr)
		assert.ErrorIs(t, err, storeErr)
		assert.NotEmpty(t, reference)
	})

	t.Run("fresh submission is not due for the outbox mid-dispatch", func(t *testing.T) {
		repo := newMockContactRepo()
		dueMidSend := 0
		svc := NewContactService(repo, mailerFunc(func(to, subject, body string) error {
			queued, err := repo.ListByStatus(models.ContactStatusQueued)
			require.NoError(t, err)
			for _, m := range queued {
				if !m.NextAttemptAt.After(time.Now()) {
					dueMidSend++
				}
			}
			return nil
		}), "operator@empirek.com")

		_, err := svc.SubmitMessage(testContactMessage())
		require.NoError(t, err)
		assert.Zero(t, dueMidSend, "a queued record must not be retryable while the first dispatch is in flight")
	})

	t.Run("list messages newest first with status filter", func(t *testing.T) {
		all, err := service.ListMessages("")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		queued, err := service.ListMessages("queued")
		require.NoError(t, err)
		assert.Len(t, queued, 1)

		delivered, err := service.ListMessages("delivered")
		require.NoError(t, err)
		assert.Len(t, delivered, 1)

		_, err = service.ListMessages("lost")
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}
