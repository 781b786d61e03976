package store

import (
	"errors"
	"fmt"

	"github.com/adilet/learnloop/ent"
)

// ErrConflict signals a uniqueness violation: another writer created the
// row first. Callers recover by re-querying, never by blind retry.
var ErrConflict = errors.New("store: conflict")

// ErrNotFound signals that an update targeted a row that does not exist.
// Callers recover by switching to the create path.
var ErrNotFound = errors.New("store: not found")

// mapWriteError normalizes ent write errors to the package sentinels.
func mapWriteError(op string, err error) error {
	switch {
	case ent.IsConstraintError(err):
		return fmt.Errorf("%s: %w", op, ErrConflict)
	case ent.IsNotFound(err):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
