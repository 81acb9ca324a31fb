package services

import (
	"testing"

	"inkwell/app/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db       *badger.DB
	posts    *PostService
	comments *CommentService
	tags     *TagService
	queries  *QueryService
}

// newTestEnv wires the full service stack over an isolated Badger instance.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).
		WithLogger(nil).
		WithSyncWrites(false)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	tagRepo := repositories.NewBadgerTagRepository(db)

	logger := zerolog.Nop()
	tagService := NewTagService(tagRepo, logger)

	return &testEnv{
		db:       db,
		posts:    NewPostService(db, postRepo, commentRepo, tagService, logger),
		comments: NewCommentService(db, commentRepo, logger),
		tags:     tagService,
		queries:  NewQueryService(postRepo, commentRepo, 10),
	}
}

func (e *testEnv) frequency(t *testing.T, tag string) int {
	t.Helper()
	count, err := e.tags.FrequencyOf(tag)
	require.NoError(t, err)
	return count
}
