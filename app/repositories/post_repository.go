package repositories

import (
	"inkwell/app/errs"
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// CreateTx assigns the next post ID and stores the record in the caller's
// transaction.
func (r *BadgerPostRepository) CreateTx(txn *badger.Txn, post *models.Post) error {
	id, err := getNextID(txn, PostSeqKey)
	if err != nil {
		return err
	}
	post.ID = id

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return txn.Set(postKey(post.ID), data)
}

// GetTx retrieves a post by ID within the caller's transaction.
func (r *BadgerPostRepository) GetTx(txn *badger.Txn, id int) (*models.Post, error) {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, &errs.NotFoundError{Entity: "post", ID: id}
	}
	if err != nil {
		return nil, err
	}

	var post models.Post
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post *models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		post, err = r.GetTx(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateTx overwrites an existing post in the caller's transaction.
func (r *BadgerPostRepository) UpdateTx(txn *badger.Txn, post *models.Post) error {
	key := postKey(post.ID)
	if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
		return &errs.NotFoundError{Entity: "post", ID: post.ID}
	} else if err != nil {
		return err
	}

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// DeleteTx removes a post record in the caller's transaction.
func (r *BadgerPostRepository) DeleteTx(txn *badger.Txn, id int) error {
	key := postKey(id)
	if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
		return &errs.NotFoundError{Entity: "post", ID: id}
	} else if err != nil {
		return err
	}
	return txn.Delete(key)
}

// List retrieves all posts in ID order from one consistent snapshot.
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
