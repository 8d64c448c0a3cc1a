package repositories

import (
	"fmt"
	"time"

	"empirek/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerContactRepository implements ContactRepository using BadgerDB
type BadgerContactRepository struct {
	db *badger.DB
}

// NewBadgerContactRepository creates a new BadgerContactRepository
func NewBadgerContactRepository(db *badger.DB) *BadgerContactRepository {
	return &BadgerContactRepository{db: db}
}

func contactKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", ContactKeyPrefix, id))
}

// Create creates a new contact outbox record
func (r *BadgerContactRepository) Create(msg *models.ContactMessage) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, ContactSeqKey)
		if err != nil {
			return err
		}
		msg.ID = id
		msg.BeforeCreate()

		data, err := marshalEntity(msg)
		if err != nil {
			return err
		}

		return txn.Set(contactKey(msg.ID), data)
	})
}

// GetByID retrieves a contact message by ID
func (r *BadgerContactRepository) GetByID(id int) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := r.db.View(func(txn *badger.Txn) error {
		return getContact(txn, id, &msg)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func getContact(txn *badger.Txn, id int, msg *models.ContactMessage) error {
	item, err := txn.Get(contactKey(id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, msg)
	})
}

// List retrieves all contact messages
func (r *BadgerContactRepository) List() ([]*models.ContactMessage, error) {
	return r.list(func(*models.ContactMessage) bool { return true })
}

// ListByStatus retrieves all contact messages with the given delivery status
func (r *BadgerContactRepository) ListByStatus(status models.ContactStatus) ([]*models.ContactMessage, error) {
	return r.list(func(m *models.ContactMessage) bool { return m.Status == status })
}

func (r *BadgerContactRepository) list(keep func(*models.ContactMessage) bool) ([]*models.ContactMessage, error) {
	var msgs []*models.ContactMessage
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(ContactKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var msg models.ContactMessage
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &msg)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal contact message: %v", err)
			}
			if keep(&msg) {
				msgs = append(msgs, &msg)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkDelivered transitions a queued record to delivered
func (r *BadgerContactRepository) MarkDelivered(id int, at time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var msg models.ContactMessage
		if err := getContact(txn, id, &msg); err != nil {
			return err
		}

		msg.Status = models.ContactStatusDelivered
		msg.DeliveredAt = &at

		data, err := marshalEntity(&msg)
		if err != nil {
			return err
		}
		return txn.Set(contactKey(id), data)
	})
}

// RecordAttempt bumps the attempt counter after a failed dispatch and
// schedules the next retry
func (r *BadgerContactRepository) RecordAttempt(id int, nextAttemptAt time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var msg models.ContactMessage
		if err := getContact(txn, id, &msg); err != nil {
			return err
		}

		msg.Attempts++
		msg.NextAttemptAt = nextAttemptAt

		data, err := marshalEntity(&msg)
		if err != nil {
			return err
		}
		return txn.Set(contactKey(id), data)
	})
}
