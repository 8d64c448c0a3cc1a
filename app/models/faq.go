package models

import (
	"errors"
	"strings"
	"time"
)

// Validate checks if the FAQ meets all validation requirements
func (f *FAQ) Validate() error {
	if err := validate.Struct(f); err != nil {
		return err
	}

	if strings.TrimSpace(f.Question) == "" {
		return errors.New("question cannot be blank")
	}

	// A pending FAQ has no answer yet; the answer arrives together with the
	// transition to answered.
	if f.Status == FaqStatusPending && f.Answer != "" {
		return errors.New("pending faq cannot carry an answer")
	}

	if f.SubmittedAt.IsZero() {
		return errors.New("submitted_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (f *FAQ) BeforeCreate() {
	if f.Status == "" {
		f.Status = FaqStatusPending
	}
	if f.Category == "" {
		f.Category = FaqCategoryGeneral
	}
	if f.SubmittedAt.IsZero() {
		f.SubmittedAt = time.Now()
	}
	if f.Version == 0 {
		f.Version = 1
	}
}
