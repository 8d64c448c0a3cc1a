package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"empirek/app/models"
	"empirek/app/repositories"
)

const (
	baseRetryDelay = time.Minute
	maxRetryDelay  = time.Hour
)

// BackoffFor returns the delay before the next dispatch attempt. The delay
// doubles per failed attempt and is capped at maxRetryDelay.
func BackoffFor(attempts int) time.Duration {
	delay := baseRetryDelay
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= maxRetryDelay {
			return maxRetryDelay
		}
	}
	return delay
}

// Outbox periodically re-dispatches queued contact messages so a failed
// synchronous dispatch still reaches the operator at least once.
type Outbox struct {
	repo     repositories.ContactRepository
	mailer   Mailer
	to       string
	interval time.Duration
}

// NewOutbox creates an outbox worker delivering to the operator address.
func NewOutbox(repo repositories.ContactRepository, mailer Mailer, to string, interval time.Duration) *Outbox {
	return &Outbox{
		repo:     repo,
		mailer:   mailer,
		to:       to,
		interval: interval,
	}
}

// Run processes the queue until the context is cancelled.
func (o *Outbox) Run(ctx context.Context) {
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := o.Flush(time.Now()); err != nil {
				log.Printf("outbox flush: %v", err)
			}
		}
	}
}

// Flush attempts dispatch for every queued message whose retry time has
// passed. Dispatch failures are recorded on the message and do not stop the
// rest of the batch.
func (o *Outbox) Flush(now time.Time) error {
	queued, err := o.repo.ListByStatus(models.ContactStatusQueued)
	if err != nil {
		return fmt.Errorf("list queued messages: %v", err)
	}

	for _, msg := range queued {
		if msg.NextAttemptAt.After(now) {
			continue
		}
		if err := o.mailer.Send(o.to, ContactSubject(msg), ContactBody(msg)); err != nil {
			log.Printf("outbox dispatch %s: %v", msg.Reference, err)
			if err := o.repo.RecordAttempt(msg.ID, now.Add(BackoffFor(msg.Attempts+1))); err != nil {
				return err
			}
			continue
		}
		if err := o.repo.MarkDelivered(msg.ID, now); err != nil {
			return err
		}
	}
	return nil
}

// ContactSubject builds the notification subject for a contact message.
func ContactSubject(msg *models.ContactMessage) string {
	return fmt.Sprintf("New contact message %s", msg.Reference)
}

// ContactBody builds the notification body for a contact message.
func ContactBody(msg *models.ContactMessage) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s\n", msg.Name, msg.Email, msg.Phone, msg.Message)
}
