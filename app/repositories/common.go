package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for the record types sharing one Badger keyspace.
	PostKeyPrefix    = "post:"
	CommentKeyPrefix = "comment:"
	TagKeyPrefix     = "tag:"

	// Sequence keys for auto-incrementing IDs.
	PostSeqKey    = "seq:post"
	CommentSeqKey = "seq:comment"
)

// postKey returns the zero-padded record key for a post, so prefix
// iteration yields posts in ID order.
func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%010d", PostKeyPrefix, id))
}

// commentKey nests the comment under its post, so a post's comments are one
// contiguous prefix range.
func commentKey(postID, id int) []byte {
	return []byte(fmt.Sprintf("%s%010d:%010d", CommentKeyPrefix, postID, id))
}

func commentPostPrefix(postID int) []byte {
	return []byte(fmt.Sprintf("%s%010d:", CommentKeyPrefix, postID))
}

func tagKey(tag string) []byte {
	return []byte(TagKeyPrefix + tag)
}

// getNextID reads, increments and stores the sequence counter under seqKey,
// all within the caller's transaction.
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
