package services

import (
	"sort"

	"inkwell/app/errs"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/tags"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// TagService maintains the tag frequency index: for every tag, the number
// of posts whose current tag set contains it.
type TagService struct {
	tagRepo repositories.TagRepository
	logger  zerolog.Logger
}

// NewTagService creates a new TagService
func NewTagService(tagRepo repositories.TagRepository, logger zerolog.Logger) *TagService {
	return &TagService{tagRepo: tagRepo, logger: logger}
}

// ReconcileTx applies the frequency delta between a post's old and new tag
// sets inside the caller's transaction: tags only in newTags gain one, tags
// only in oldTags lose one, the intersection is untouched. A decrement that
// would go negative signals index corruption from a prior bug; it is logged
// with full context and aborts the transaction.
func (s *TagService) ReconcileTx(txn *badger.Txn, oldTags, newTags []string) error {
	added, removed := tags.Diff(oldTags, newTags)

	for _, tag := range added {
		count, err := s.tagRepo.GetTx(txn, tag)
		if err != nil {
			return err
		}
		if err := s.tagRepo.SetTx(txn, tag, count+1); err != nil {
			return err
		}
	}

	for _, tag := range removed {
		count, err := s.tagRepo.GetTx(txn, tag)
		if err != nil {
			return err
		}
		if count <= 0 {
			cerr := &errs.ConsistencyError{Op: "reconcile", Tag: tag, Count: count, Delta: -1}
			s.logger.Error().
				Str("tag", tag).
				Int("count", count).
				Strs("old_tags", oldTags).
				Strs("new_tags", newTags).
				Msg("tag frequency would go negative")
			return cerr
		}
		if err := s.tagRepo.SetTx(txn, tag, count-1); err != nil {
			return err
		}
	}

	return nil
}

// RemoveAllTx decrements every tag of a deleted post.
func (s *TagService) RemoveAllTx(txn *badger.Txn, tagSet []string) error {
	return s.ReconcileTx(txn, tagSet, nil)
}

// FrequencyOf reports how many posts currently carry the tag.
func (s *TagService) FrequencyOf(tag string) (int, error) {
	return s.tagRepo.FrequencyOf(tag)
}

// TopTags returns up to n tags ordered by frequency descending, ties broken
// lexicographically.
func (s *TagService) TopTags(n int) ([]models.TagFrequency, error) {
	entries, err := s.tagRepo.All()
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Tag < entries[j].Tag
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}
