package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestDB opens an isolated Badger instance in a temp directory.
func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetNextID(t *testing.T) {
	db := openTestDB(t)

	t.Run("starts at one and increments", func(t *testing.T) {
		var first, second int
		err := db.Update(func(txn *badger.Txn) error {
			var err error
			first, err = getNextID(txn, "seq:test")
			if err != nil {
				return err
			}
			second, err = getNextID(txn, "seq:test")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
	})

	t.Run("persists across transactions", func(t *testing.T) {
		var next int
		err := db.Update(func(txn *badger.Txn) error {
			var err error
			next, err = getNextID(txn, "seq:test")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 3, next)
	})

	t.Run("independent sequences", func(t *testing.T) {
		var other int
		err := db.Update(func(txn *badger.Txn) error {
			var err error
			other, err = getNextID(txn, "seq:other")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, other)
	})
}

func TestKeyOrdering(t *testing.T) {
	// Zero padding keeps lexicographic key order equal to ID order.
	assert.True(t, string(postKey(2)) < string(postKey(10)))
	assert.True(t, string(commentKey(1, 2)) < string(commentKey(1, 10)))
	assert.True(t, string(commentKey(2, 1)) > string(commentKey(1, 99)))
}
