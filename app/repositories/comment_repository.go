package repositories

import (
	"inkwell/app/errs"
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// CreateTx assigns the next comment ID and stores the record, keyed under
// its post, in the caller's transaction.
func (r *BadgerCommentRepository) CreateTx(txn *badger.Txn, comment *models.Comment) error {
	id, err := getNextID(txn, CommentSeqKey)
	if err != nil {
		return err
	}
	comment.ID = id

	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}
	return txn.Set(commentKey(comment.PostID, comment.ID), data)
}

// GetTx retrieves a comment by ID within the caller's transaction. Comment
// keys embed the post ID, so lookup by comment ID alone is a prefix scan.
func (r *BadgerCommentRepository) GetTx(txn *badger.Txn, id int) (*models.Comment, error) {
	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(CommentKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var comment models.Comment
		err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
		if err != nil {
			return nil, err
		}
		if comment.ID == id {
			return &comment, nil
		}
	}
	return nil, &errs.NotFoundError{Entity: "comment", ID: id}
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment *models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		comment, err = r.GetTx(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateTx overwrites an existing comment in the caller's transaction.
func (r *BadgerCommentRepository) UpdateTx(txn *badger.Txn, comment *models.Comment) error {
	key := commentKey(comment.PostID, comment.ID)
	if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
		return &errs.NotFoundError{Entity: "comment", ID: comment.ID}
	} else if err != nil {
		return err
	}

	data, err := marshalEntity(comment)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// DeleteTx removes a comment record in the caller's transaction.
func (r *BadgerCommentRepository) DeleteTx(txn *badger.Txn, comment *models.Comment) error {
	key := commentKey(comment.PostID, comment.ID)
	if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
		return &errs.NotFoundError{Entity: "comment", ID: comment.ID}
	} else if err != nil {
		return err
	}
	return txn.Delete(key)
}

// DeleteAllForPostTx removes every comment of a post in the caller's
// transaction and reports how many were deleted.
func (r *BadgerCommentRepository) DeleteAllForPostTx(txn *badger.Txn, postID int) (int, error) {
	var keys [][]byte

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)

	prefix := commentPostPrefix(postID)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	// Close before writing; deleting under an open iterator is not allowed.
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

// ListByPost retrieves all comments for a post from one consistent
// snapshot, regardless of moderation status.
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := commentPostPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}
