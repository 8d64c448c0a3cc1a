package services

import (
	"sort"
	"strings"
	"unicode/utf8"

	"empirek/app/models"
	"empirek/app/repositories"
)

// FaqService handles intake, moderation and publication of FAQs
type FaqService struct {
	faqRepo repositories.FaqRepository
}

// NewFaqService creates a new FaqService
func NewFaqService(faqRepo repositories.FaqRepository) *FaqService {
	return &FaqService{faqRepo: faqRepo}
}

// SubmitQuestion creates a pending, unpublished FAQ from a visitor question
func (s *FaqService) SubmitQuestion(question, submitterName, submitterEmail string) (*models.FAQ, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, invalid("question", "question is required")
	}
	if utf8.RuneCountInString(submitterName) > 100 {
		return nil, invalid("submitterName", "name is too long (maximum 100 characters)")
	}
	if submitterEmail != "" && !models.ValidEmail(submitterEmail) {
		return nil, invalid("submitterEmail", "invalid email address")
	}

	faq := &models.FAQ{
		Question:       question,
		Status:         models.FaqStatusPending,
		Category:       models.FaqCategoryGeneral,
		SubmitterName:  submitterName,
		SubmitterEmail: submitterEmail,
		IsActive:       false,
	}
	if err := s.faqRepo.Create(faq); err != nil {
		return nil, err
	}
	return faq, nil
}

// ListPending retrieves unanswered FAQs for moderation review, oldest first
func (s *FaqService) ListPending() ([]*models.FAQ, error) {
	faqs, err := s.faqRepo.ListByStatus(models.FaqStatusPending)
	if err != nil {
		return nil, err
	}

	sort.Slice(faqs, func(i, j int) bool {
		a, b := faqs[i], faqs[j]
		if a.SubmittedAt.Equal(b.SubmittedAt) {
			return a.ID < b.ID
		}
		return a.SubmittedAt.Before(b.SubmittedAt)
	})

	return faqs, nil
}

// Answer transitions a pending FAQ to answered and published in one atomic
// update. expectedVersion, when non-zero, guards against a concurrent
// moderation write.
func (s *FaqService) Answer(id int, answer string, expectedVersion int) (*models.FAQ, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, invalid("answer", "answer is required")
	}
	return s.faqRepo.Answer(id, answer, expectedVersion)
}

// ToggleVisibility flips the publication flag and returns the new value
func (s *FaqService) ToggleVisibility(id int, expectedVersion int) (bool, error) {
	faq, err := s.faqRepo.ToggleVisibility(id, expectedVersion)
	if err != nil {
		return false, err
	}
	return faq.IsActive, nil
}

// ListPublic retrieves published FAQs, optionally filtered by category,
// ordered by the display order field
func (s *FaqService) ListPublic(category string) ([]*models.FAQ, error) {
	if category != "" {
		switch models.FaqCategory(category) {
		case models.FaqCategoryGeneral, models.FaqCategoryPricing,
			models.FaqCategoryProcess, models.FaqCategoryTechnical:
		default:
			return nil, invalid("category", "unknown category")
		}
	}

	faqs, err := s.faqRepo.ListActive()
	if err != nil {
		return nil, err
	}

	if category != "" {
		filtered := faqs[:0]
		for _, faq := range faqs {
			if faq.Category == models.FaqCategory(category) {
				filtered = append(filtered, faq)
			}
		}
		faqs = filtered
	}

	sort.Slice(faqs, func(i, j int) bool {
		a, b := faqs[i], faqs[j]
		if a.Order == b.Order {
			return a.ID < b.ID
		}
		return a.Order < b.Order
	})

	return faqs, nil
}
