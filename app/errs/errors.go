package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrTransientStorage marks a failed storage commit (conflict, timeout).
// The operation was not applied; callers may retry it as a whole.
var ErrTransientStorage = errors.New("transient storage failure")

// ValidationError aggregates every violated field constraint of one input,
// keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("validation failed")
	for _, name := range names {
		b.WriteString("; ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(e.Fields[name])
	}
	return b.String()
}

// NotFoundError reports an operation targeting a record that does not exist.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConsistencyError reports derived state that disagrees with stored records,
// such as a tag frequency decrement that would go negative. It indicates a
// prior bug, not a recoverable condition; the triggering transaction is
// aborted.
type ConsistencyError struct {
	Op    string
	Tag   string
	Count int
	Delta int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency violation in %s: tag %q count %d delta %d", e.Op, e.Tag, e.Count, e.Delta)
}

// Transient wraps a storage-level failure so callers can detect it with
// IsTransient and retry.
func Transient(err error) error {
	return fmt.Errorf("%w: %v", ErrTransientStorage, err)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConsistency(err error) bool {
	var ce *ConsistencyError
	return errors.As(err, &ce)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientStorage)
}
