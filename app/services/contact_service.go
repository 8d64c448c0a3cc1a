package services

import (
	"errors"
	"sort"
	"time"
	"unicode/utf8"

	"empirek/app/models"
	"empirek/app/notify"
	"empirek/app/repositories"
)

// ContactService handles contact-form submissions. Messages are persisted as
// queued outbox records before the first dispatch attempt, so a dispatch
// failure never loses the submission.
type ContactService struct {
	contactRepo   repositories.ContactRepository
	mailer        notify.Mailer
	operatorEmail string
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.ContactRepository, mailer notify.Mailer, operatorEmail string) *ContactService {
	return &ContactService{
		contactRepo:   contactRepo,
		mailer:        mailer,
		operatorEmail: operatorEmail,
	}
}

// SubmitMessage validates and persists a contact message, then attempts one
// synchronous dispatch to the operator. On dispatch failure the reference is
// still returned alongside the error; the outbox worker retries the queued
// record later.
func (s *ContactService) SubmitMessage(msg *models.ContactMessage) (string, error) {
	if err := validateContactMessage(msg); err != nil {
		return "", err
	}

	// The first retry slot is one backoff step out, so an outbox tick that
	// lands between Create and the synchronous Send below does not dispatch
	// the same message twice.
	msg.NextAttemptAt = time.Now().Add(notify.BackoffFor(1))
	if err := s.contactRepo.Create(msg); err != nil {
		return "", err
	}

	if err := s.mailer.Send(s.operatorEmail, notify.ContactSubject(msg), notify.ContactBody(msg)); err != nil {
		now := time.Now()
		if recErr := s.contactRepo.RecordAttempt(msg.ID, now.Add(notify.BackoffFor(msg.Attempts+1))); recErr != nil {
			return msg.Reference, errors.Join(err, recErr)
		}
		return msg.Reference, err
	}

	if err := s.contactRepo.MarkDelivered(msg.ID, time.Now()); err != nil {
		return msg.Reference, err
	}
	return msg.Reference, nil
}

// ListMessages retrieves outbox records for the operator, newest first.
// status filters to queued or delivered records when non-empty.
func (s *ContactService) ListMessages(status string) ([]*models.ContactMessage, error) {
	var (
		msgs []*models.ContactMessage
		err  error
	)
	switch models.ContactStatus(status) {
	case "":
		msgs, err = s.contactRepo.List()
	case models.ContactStatusQueued, models.ContactStatusDelivered:
		msgs, err = s.contactRepo.ListByStatus(models.ContactStatus(status))
	default:
		return nil, invalid("status", "unknown status")
	}
	if err != nil {
		return nil, err
	}

	sort.Slice(msgs, func(i, j int) bool {
		a, b := msgs[i], msgs[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID > b.ID
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return msgs, nil
}

// validateContactMessage validates the submission before any store or
// dispatch interaction
func validateContactMessage(msg *models.ContactMessage) error {
	if msg.Name == "" {
		return invalid("name", "name is required")
	}
	if !models.ValidEmail(msg.Email) {
		return invalid("email", "invalid email address")
	}
	if utf8.RuneCountInString(msg.Phone) < 6 {
		return invalid("phone", "phone number is too short")
	}
	if utf8.RuneCountInString(msg.Message) < 10 {
		return invalid("message", "message is too short (minimum 10 characters)")
	}
	if utf8.RuneCountInString(msg.Message) > 1000 {
		return invalid("message", "message is too long (maximum 1000 characters)")
	}
	return nil
}
