package mock

import (
	"sync"
	"time"

	"empirek/app/models"
	"empirek/app/repositories"
)

type CommentRepository struct {
	comments map[int]*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

type FaqRepository struct {
	faqs   map[int]*models.FAQ
	nextID int
	mutex  sync.RWMutex
}

type ContactRepository struct {
	messages map[int]*models.ContactMessage
	nextID   int
	mutex    sync.RWMutex
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

func NewFaqRepository() *FaqRepository {
	return &FaqRepository{
		faqs:   make(map[int]*models.FAQ),
		nextID: 1,
	}
}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{
		messages: make(map[int]*models.ContactMessage),
		nextID:   1,
	}
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	comment.BeforeCreate()
	copied := *comment
	m.comments[comment.ID] = &copied
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *comment
	return &copied, nil
}

func (m *CommentRepository) ListByPost(postID string) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			copied := *comment
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (m *CommentRepository) List() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		copied := *comment
		comments = append(comments, &copied)
	}
	return comments, nil
}

func (m *CommentRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

// FaqRepository implementation

func (m *FaqRepository) Create(faq *models.FAQ) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	faq.ID = m.nextID
	m.nextID++
	faq.BeforeCreate()
	copied := *faq
	m.faqs[faq.ID] = &copied
	return nil
}

func (m *FaqRepository) GetByID(id int) (*models.FAQ, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	faq, exists := m.faqs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *faq
	return &copied, nil
}

func (m *FaqRepository) ListByStatus(status models.FaqStatus) ([]*models.FAQ, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var faqs []*models.FAQ
	for _, faq := range m.faqs {
		if faq.Status == status {
			copied := *faq
			faqs = append(faqs, &copied)
		}
	}
	return faqs, nil
}

func (m *FaqRepository) ListActive() ([]*models.FAQ, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var faqs []*models.FAQ
	for _, faq := range m.faqs {
		if faq.IsActive && faq.Status == models.FaqStatusAnswered {
			copied := *faq
			faqs = append(faqs, &copied)
		}
	}
	return faqs, nil
}

func (m *FaqRepository) Answer(id int, answer string, expectedVersion int) (*models.FAQ, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	faq, exists := m.faqs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	if expectedVersion != 0 && faq.Version != expectedVersion {
		return nil, repositories.ErrConflict
	}
	if faq.Status != models.FaqStatusPending {
		return nil, repositories.ErrConflict
	}

	faq.Answer = answer
	faq.Status = models.FaqStatusAnswered
	faq.IsActive = true
	faq.Version++

	copied := *faq
	return &copied, nil
}

func (m *FaqRepository) ToggleVisibility(id int, expectedVersion int) (*models.FAQ, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	faq, exists := m.faqs[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	if expectedVersion != 0 && faq.Version != expectedVersion {
		return nil, repositories.ErrConflict
	}

	faq.IsActive = !faq.IsActive
	faq.Version++

	copied := *faq
	return &copied, nil
}

// ContactRepository implementation

func (m *ContactRepository) Create(msg *models.ContactMessage) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	msg.ID = m.nextID
	m.nextID++
	msg.BeforeCreate()
	copied := *msg
	m.messages[msg.ID] = &copied
	return nil
}

func (m *ContactRepository) GetByID(id int) (*models.ContactMessage, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	msg, exists := m.messages[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *msg
	return &copied, nil
}

func (m *ContactRepository) List() ([]*models.ContactMessage, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var msgs []*models.ContactMessage
	for _, msg := range m.messages {
		copied := *msg
		msgs = append(msgs, &copied)
	}
	return msgs, nil
}

func (m *ContactRepository) ListByStatus(status models.ContactStatus) ([]*models.ContactMessage, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var msgs []*models.ContactMessage
	for _, msg := range m.messages {
		if msg.Status == status {
			copied := *msg
			msgs = append(msgs, &copied)
		}
	}
	return msgs, nil
}

func (m *ContactRepository) MarkDelivered(id int, at time.Time) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	msg, exists := m.messages[id]
	if !exists {
		return repositories.ErrNotFound
	}
	msg.Status = models.ContactStatusDelivered
	msg.DeliveredAt = &at
	return nil
}

func (m *ContactRepository) RecordAttempt(id int, nextAttemptAt time.Time) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	msg, exists := m.messages[id]
	if !exists {
		return repositories.ErrNotFound
	}
	msg.Attempts++
	msg.NextAttemptAt = nextAttemptAt
	return nil
}
