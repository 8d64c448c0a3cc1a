package models

import (
	"errors"
	"time"
)

// Validate checks if the comment meets all validation requirements
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation
func (c *Comment) BeforeCreate() {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
}

// Public returns the view of the comment safe for public reads.
func (c *Comment) Public() *PublicComment {
	return &PublicComment{
		ID:        c.ID,
		PostID:    c.PostID,
		ParentID:  c.ParentID,
		Name:      c.Name,
		Website:   c.Website,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}
