package repositories

import (
	"fmt"

	"empirek/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerFaqRepository implements FaqRepository using BadgerDB
type BadgerFaqRepository struct {
	db *badger.DB
}

// NewBadgerFaqRepository creates a new BadgerFaqRepository
func NewBadgerFaqRepository(db *badger.DB) *BadgerFaqRepository {
	return &BadgerFaqRepository{db: db}
}

func faqKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", FaqKeyPrefix, id))
}

// Create creates a new FAQ
func (r *BadgerFaqRepository) Create(faq *models.FAQ) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, FaqSeqKey)
		if err != nil {
			return err
		}
		faq.ID = id
		faq.BeforeCreate()

		data, err := marshalEntity(faq)
		if err != nil {
			return err
		}

		return txn.Set(faqKey(faq.ID), data)
	})
}

// GetByID retrieves an FAQ by ID
func (r *BadgerFaqRepository) GetByID(id int) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.db.View(func(txn *badger.Txn) error {
		return getFaq(txn, id, &faq)
	})
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func getFaq(txn *badger.Txn, id int, faq *models.FAQ) error {
	item, err := txn.Get(faqKey(id))
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return unmarshalEntity(val, faq)
	})
}

// ListByStatus retrieves all FAQs with the given status
func (r *BadgerFaqRepository) ListByStatus(status models.FaqStatus) ([]*models.FAQ, error) {
	return r.list(func(f *models.FAQ) bool { return f.Status == status })
}

// ListActive retrieves all FAQs that pass the publication gate: active and
// answered. An active-but-pending document is excluded rather than rejected.
func (r *BadgerFaqRepository) ListActive() ([]*models.FAQ, error) {
	return r.list(func(f *models.FAQ) bool {
		return f.IsActive && f.Status == models.FaqStatusAnswered
	})
}

func (r *BadgerFaqRepository) list(keep func(*models.FAQ) bool) ([]*models.FAQ, error) {
	var faqs []*models.FAQ
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(FaqKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var faq models.FAQ
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &faq)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal faq: %v", err)
			}
			if keep(&faq) {
				faqs = append(faqs, &faq)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

// Answer applies the compound pending->answered transition: answer text,
// status and visibility change together in one transaction, so a concurrent
// reader never observes a half-applied update. expectedVersion, when non-zero,
// must match the stored version or the write fails with ErrConflict. An FAQ
// that is already answered also fails with ErrConflict.
func (r *BadgerFaqRepository) Answer(id int, answer string, expectedVersion int) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getFaq(txn, id, &faq); err != nil {
			return err
		}
		if expectedVersion != 0 && faq.Version != expectedVersion {
			return ErrConflict
		}
		if faq.Status != models.FaqStatusPending {
			return ErrConflict
		}

		faq.Answer = answer
		faq.Status = models.FaqStatusAnswered
		faq.IsActive = true
		faq.Version++

		data, err := marshalEntity(&faq)
		if err != nil {
			return err
		}
		return txn.Set(faqKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

// ToggleVisibility flips IsActive without touching status or answer.
// expectedVersion follows the same rules as Answer.
func (r *BadgerFaqRepository) ToggleVisibility(id int, expectedVersion int) (*models.FAQ, error) {
	var faq models.FAQ
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getFaq(txn, id, &faq); err != nil {
			return err
		}
		if expectedVersion != 0 && faq.Version != expectedVersion {
			return ErrConflict
		}

		faq.IsActive = !faq.IsActive
		faq.Version++

		data, err := marshalEntity(&faq)
		if err != nil {
			return err
		}
		return txn.Set(faqKey(id), data)
	})
	if err != nil {
		return nil, err
	}
	return &faq, nil
}
