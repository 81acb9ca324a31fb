package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// PostRepository defines data access for posts. The Tx variants run inside
// a caller-owned transaction so a post mutation, its tag index delta and
// its comment cascade commit as one atomic unit.
type PostRepository interface {
	CreateTx(txn *badger.Txn, post *models.Post) error
	GetTx(txn *badger.Txn, id int) (*models.Post, error)
	GetByID(id int) (*models.Post, error)
	UpdateTx(txn *badger.Txn, post *models.Post) error
	DeleteTx(txn *badger.Txn, id int) error
	List() ([]*models.Post, error)
}

// CommentRepository defines data access for comments.
type CommentRepository interface {
	CreateTx(txn *badger.Txn, comment *models.Comment) error
	GetTx(txn *badger.Txn, id int) (*models.Comment, error)
	GetByID(id int) (*models.Comment, error)
	UpdateTx(txn *badger.Txn, comment *models.Comment) error
	DeleteTx(txn *badger.Txn, comment *models.Comment) error
	DeleteAllForPostTx(txn *badger.Txn, postID int) (int, error)
	ListByPost(postID int) ([]*models.Comment, error)
}

// TagRepository defines data access for tag frequency entries.
type TagRepository interface {
	GetTx(txn *badger.Txn, tag string) (int, error)
	SetTx(txn *badger.Txn, tag string, count int) error
	FrequencyOf(tag string) (int, error)
	All() ([]models.TagFrequency, error)
}
