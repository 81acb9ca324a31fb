package repositories

import (
	"strings"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerTagRepository implements TagRepository using BadgerDB. One record
// per tag holds its current post frequency.
type BadgerTagRepository struct {
	db *badger.DB
}

// NewBadgerTagRepository creates a new BadgerTagRepository
func NewBadgerTagRepository(db *badger.DB) *BadgerTagRepository {
	return &BadgerTagRepository{db: db}
}

// GetTx reads a tag's frequency within the caller's transaction. An absent
// entry counts as zero. The read registers in the transaction's read set,
// so concurrent writers of the same tag serialize through commit conflicts.
func (r *BadgerTagRepository) GetTx(txn *badger.Txn, tag string) (int, error) {
	item, err := txn.Get(tagKey(tag))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var entry models.TagFrequency
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &entry)
	})
	if err != nil {
		return 0, err
	}
	return entry.Count, nil
}

// SetTx writes a tag's frequency within the caller's transaction, pruning
// the entry when the count reaches zero.
func (r *BadgerTagRepository) SetTx(txn *badger.Txn, tag string, count int) error {
	if count == 0 {
		return txn.Delete(tagKey(tag))
	}
	data, err := marshalEntity(models.TagFrequency{Tag: tag, Count: count})
	if err != nil {
		return err
	}
	return txn.Set(tagKey(tag), data)
}

// FrequencyOf reads a tag's current frequency; absent entries report zero.
func (r *BadgerTagRepository) FrequencyOf(tag string) (int, error) {
	var count int
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		count, err = r.GetTx(txn, tag)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// All retrieves every tag frequency entry from one consistent snapshot.
func (r *BadgerTagRepository) All() ([]models.TagFrequency, error) {
	var entries []models.TagFrequency
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(TagKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var entry models.TagFrequency
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &entry)
			})
			if err != nil {
				return err
			}
			if entry.Tag == "" {
				entry.Tag = strings.TrimPrefix(string(item.Key()), TagKeyPrefix)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
