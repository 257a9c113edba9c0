package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the target row does not exist; callers should
	// refresh their view before retrying.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey indicates an id, username or external id collision.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStoreUnavailable indicates the underlying store rejected the
	// operation for reasons other than the data itself. Fatal to the
	// operation, not to the process.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeError wraps a driver failure that is not covered by a more specific
// sentinel. nil stays nil so it can sit on a repository's return path.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
