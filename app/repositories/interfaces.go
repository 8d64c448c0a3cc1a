package repositories

import (
	"time"

	"empirek/app/models"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	ListByPost(postID string) ([]*models.Comment, error)
	List() ([]*models.Comment, error)
	Delete(id int) error
}

// FaqRepository defines the interface for FAQ data access. Answer and
// ToggleVisibility take an expected version for conditional updates; a zero
// expected version skips the check.
type FaqRepository interface {
	Create(faq *models.FAQ) error
	GetByID(id int) (*models.FAQ, error)
	ListByStatus(status models.FaqStatus) ([]*models.FAQ, error)
	ListActive() ([]*models.FAQ, error)
	Answer(id int, answer string, expectedVersion int) (*models.FAQ, error)
	ToggleVisibility(id int, expectedVersion int) (*models.FAQ, error)
}

// ContactRepository defines the interface for contact outbox data access
type ContactRepository interface {
	Create(msg *models.ContactMessage) error
	GetByID(id int) (*models.ContactMessage, error)
	List() ([]*models.ContactMessage, error)
	ListByStatus(status models.ContactStatus) ([]*models.ContactMessage, error)
	MarkDelivered(id int, at time.Time) error
	RecordAttempt(id int, nextAttemptAt time.Time) error
}
