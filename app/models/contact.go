package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validate checks if the contact message meets all validation requirements
func (m *ContactMessage) Validate() error {
	if err := validate.Struct(m); err != nil {
		return err
	}

	if m.Reference == "" {
		return errors.New("reference cannot be empty")
	}

	if m.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (m *ContactMessage) BeforeCreate() {
	if m.Reference == "" {
		m.Reference = uuid.NewString()
	}
	if m.Status == "" {
		m.Status = ContactStatusQueued
	}
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.NextAttemptAt.IsZero() {
		m.NextAttemptAt = now
	}
}
