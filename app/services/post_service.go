package services

import (
	"errors"
	"time"

	"inkwell/app/errs"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/tags"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// PostService owns the post lifecycle. Every mutation commits the post
// record, its tag index delta and any comment cascade as one atomic
// transaction; a failed commit leaves no partial state behind.
type PostService struct {
	db          *badger.DB
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	tagService  *TagService
	logger      zerolog.Logger
}

// NewPostService creates a new PostService
func NewPostService(db *badger.DB, postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, tagService *TagService, logger zerolog.Logger) *PostService {
	return &PostService{
		db:          db,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		tagService:  tagService,
		logger:      logger,
	}
}

// CreatePost validates the input, normalizes its tags and persists the new
// post together with the matching tag frequency increments. The acting
// identity becomes the immutable author.
func (s *PostService) CreatePost(input *models.PostInput, actingIdentity string) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		Title:     input.Title,
		Content:   input.Content,
		Tags:      tags.Normalize(input.Tags),
		Status:    input.Status,
		CreatedAt: now,
		UpdatedAt: now,
		AuthorID:  actingIdentity,
	}

	err := s.commit(func(txn *badger.Txn) error {
		if err := s.postRepo.CreateTx(txn, post); err != nil {
			return err
		}
		return s.tagService.ReconcileTx(txn, nil, post.TagSet())
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("post_id", post.ID).Str("author_id", post.AuthorID).Msg("post created")
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// UpdatePost validates the input and persists the changed post together
// with the frequency delta between its previously stored tag set and the
// new one. CreatedAt and AuthorID are preserved from the stored record.
func (s *PostService) UpdatePost(id int, input *models.PostInput) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var post *models.Post
	err := s.commit(func(txn *badger.Txn) error {
		// Load the stored record first: its tag set is the reconciliation
		// baseline and must be captured before the new value overwrites it.
		old, err := s.postRepo.GetTx(txn, id)
		if err != nil {
			return err
		}

		post = &models.Post{
			ID:        id,
			Title:     input.Title,
			Content:   input.Content,
			Tags:      tags.Normalize(input.Tags),
			Status:    input.Status,
			CreatedAt: old.CreatedAt,
			UpdatedAt: time.Now(),
			AuthorID:  old.AuthorID,
		}

		if err := s.postRepo.UpdateTx(txn, post); err != nil {
			return err
		}
		return s.tagService.ReconcileTx(txn, old.TagSet(), post.TagSet())
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post, all of its comments and its tag frequency
// contributions in one transaction, so no half-deleted state is ever
// visible.
func (s *PostService) DeletePost(id int) error {
	var deletedComments int
	err := s.commit(func(txn *badger.Txn) error {
		post, err := s.postRepo.GetTx(txn, id)
		if err != nil {
			return err
		}

		deletedComments, err = s.commentRepo.DeleteAllForPostTx(txn, id)
		if err != nil {
			return err
		}
		if err := s.tagService.RemoveAllTx(txn, post.TagSet()); err != nil {
			return err
		}
		return s.postRepo.DeleteTx(txn, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int("post_id", id).Int("comments_deleted", deletedComments).Msg("post deleted")
	return nil
}

// AddComment attaches a new comment to an existing post. The moderation
// policy flag decides whether it starts out Pending or Approved.
func (s *PostService) AddComment(postID int, input *models.CommentInput, requiresApproval bool) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := models.CommentApproved
	if requiresApproval {
		status = models.CommentPending
	}

	comment := &models.Comment{
		PostID:    postID,
		Author:    input.Author,
		Email:     input.Email,
		Content:   input.Content,
		Status:    status,
		CreatedAt: time.Now(),
	}

	err := s.commit(func(txn *badger.Txn) error {
		if _, err := s.postRepo.GetTx(txn, postID); err != nil {
			if errs.IsNotFound(err) {
				return &errs.ValidationError{Fields: map[string]string{
					"post_id": "referenced post does not exist",
				}}
			}
			return err
		}
		return s.commentRepo.CreateTx(txn, comment)
	})
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// commit runs fn in one read-write transaction. Commit conflicts from
// concurrent writers of the same keys surface as a transient error for the
// caller to retry; the service itself never retries.
func (s *PostService) commit(fn func(txn *badger.Txn) error) error {
	err := s.db.Update(fn)
	if errors.Is(err, badger.ErrConflict) {
		return errs.Transient(err)
	}
	return err
}
