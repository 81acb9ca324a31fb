package services

import (
	"errors"
	"sort"

	"inkwell/app/errs"
	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// CommentService handles moderation and read access for comments. Creation
// goes through PostService.AddComment so the post existence check and the
// write share a transaction.
type CommentService struct {
	db          *badger.DB
	commentRepo repositories.CommentRepository
	logger      zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(db *badger.DB, commentRepo repositories.CommentRepository, logger zerolog.Logger) *CommentService {
	return &CommentService{db: db, commentRepo: commentRepo, logger: logger}
}

// GetComment retrieves a comment by ID
func (s *CommentService) GetComment(id int) (*models.Comment, error) {
	return s.commentRepo.GetByID(id)
}

// Approve moves a Pending comment to Approved. Approving an already
// approved comment is a no-op; moderation is a one-way gate.
func (s *CommentService) Approve(id int) (*models.Comment, error) {
	var comment *models.Comment
	err := s.commit(func(txn *badger.Txn) error {
		var err error
		comment, err = s.commentRepo.GetTx(txn, id)
		if err != nil {
			return err
		}
		if comment.Status == models.CommentApproved {
			return nil
		}
		comment.Status = models.CommentApproved
		return s.commentRepo.UpdateTx(txn, comment)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("comment_id", id).Int("post_id", comment.PostID).Msg("comment approved")
	return comment, nil
}

// DeleteComment removes a single comment.
func (s *CommentService) DeleteComment(id int) error {
	return s.commit(func(txn *badger.Txn) error {
		comment, err := s.commentRepo.GetTx(txn, id)
		if err != nil {
			return err
		}
		return s.commentRepo.DeleteTx(txn, comment)
	})
}

// ListApprovedForPost returns the post's approved comments, newest first.
// Each call reads a fresh consistent snapshot.
func (s *CommentService) ListApprovedForPost(postID int) ([]*models.Comment, error) {
	all, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	var approved []*models.Comment
	for _, c := range all {
		if c.Status == models.CommentApproved {
			approved = append(approved, c)
		}
	}
	sortNewestFirst(approved)
	return approved, nil
}

// CountApprovedForPost reports the number of approved comments on a post.
// The count is computed, never stored.
func (s *CommentService) CountApprovedForPost(postID int) (int, error) {
	approved, err := s.ListApprovedForPost(postID)
	if err != nil {
		return 0, err
	}
	return len(approved), nil
}

func sortNewestFirst(comments []*models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.After(comments[j].CreatedAt)
		}
		return comments[i].ID > comments[j].ID
	})
}

func (s *CommentService) commit(fn func(txn *badger.Txn) error) error {
	err := s.db.Update(fn)
	if errors.Is(err, badger.ErrConflict) {
		return errs.Transient(err)
	}
	return err
}
