package models

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// FaqStatus tracks where an FAQ sits in the moderation workflow.
type FaqStatus string

const (
	FaqStatusPending  FaqStatus = "pending"
	FaqStatusAnswered FaqStatus = "answered"
)

// FaqCategory groups published FAQs on the public site.
type FaqCategory string

const (
	FaqCategoryGeneral   FaqCategory = "general"
	FaqCategoryPricing   FaqCategory = "pricing"
	FaqCategoryProcess   FaqCategory = "process"
	FaqCategoryTechnical FaqCategory = "technical"
)

// ContactStatus tracks delivery of a queued contact message.
type ContactStatus string

const (
	ContactStatusQueued    ContactStatus = "queued"
	ContactStatusDelivered ContactStatus = "delivered"
)

// Comment represents a visitor comment on a blog post. Comments are
// unmoderated: they are publicly visible as soon as they are created.
type Comment struct {
	ID        int       `json:"id" validate:"gte=0"`
	PostID    string    `json:"postId" validate:"required"`
	ParentID  *int      `json:"parentId,omitempty" validate:"omitempty,gt=0"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,simple_email"`
	Website   string    `json:"website,omitempty" validate:"omitempty,url"`
	Message   string    `json:"message" validate:"required,min=10,max=1000"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicComment is the comment view returned on public reads. The submitter
// email is kept internal and never serialized here.
type PublicComment struct {
	ID        int       `json:"id"`
	PostID    string    `json:"postId"`
	ParentID  *int      `json:"parentId,omitempty"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FAQ represents a visitor-submitted question and its moderated answer.
// Version is bumped on every mutation and backs conditional updates.
type FAQ struct {
	ID             int         `json:"id" validate:"gte=0"`
	Question       string      `json:"question" validate:"required"`
	Answer         string      `json:"answer,omitempty"`
	Status         FaqStatus   `json:"status" validate:"required,oneof=pending answered"`
	Category       FaqCategory `json:"category" validate:"required,oneof=general pricing process technical"`
	SubmitterName  string      `json:"submitterName,omitempty" validate:"omitempty,max=100"`
	SubmitterEmail string      `json:"submitterEmail,omitempty" validate:"omitempty,simple_email"`
	SubmittedAt    time.Time   `json:"submittedAt"`
	IsActive       bool        `json:"isActive"`
	Order          int         `json:"order"`
	Version        int         `json:"version"`
}

// ContactMessage is a durable outbox record for a contact-form submission.
// It is created as queued and marked delivered once the notification goes out.
type ContactMessage struct {
	ID            int           `json:"id" validate:"gte=0"`
	Reference     string        `json:"reference"`
	Name          string        `json:"name" validate:"required"`
	Email         string        `json:"email" validate:"required,simple_email"`
	Phone         string        `json:"phone" validate:"required,min=6"`
	Message       string        `json:"message" validate:"required,min=10,max=1000"`
	Status        ContactStatus `json:"status" validate:"required,oneof=queued delivered"`
	Attempts      int           `json:"attempts"`
	NextAttemptAt time.Time     `json:"nextAttemptAt"`
	CreatedAt     time.Time     `json:"createdAt"`
	DeliveredAt   *time.Time    `json:"deliveredAt,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The public forms use a deliberately simple email pattern rather than
	// validator's full RFC check.
	if err := v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidEmail reports whether s matches the form-level email pattern.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
