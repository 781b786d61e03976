// Package guard serializes content generation so that concurrent
// requests for the same scope converge on a single stored row.
//
// The protocol is check, generate, recheck, persist: look for an
// existing row first, generate only when none exists, look again
// before storing in case a rival finished during the (slow)
// generation, and on a persistence conflict re-query once and return
// the winner. The losing generation is discarded.
package guard

import (
	"context"
	"errors"
	"fmt"

	"github.com/adilet/learnloop/internal/store"
)

// ErrGenerationFailed wraps a generator error. Lookup and persistence
// errors pass through unwrapped.
var ErrGenerationFailed = errors.New("content generation failed")

// Funcs carries the three operations Ensure composes. Lookup returns
// nil (no error) when no row exists for the scope yet.
type Funcs[T any] struct {
	Lookup   func(ctx context.Context) (*T, error)
	Generate func(ctx context.Context) (T, error)
	Persist  func(ctx context.Context, v T) (*T, error)
}

// Ensure returns the row for a scope, generating and persisting it if
// absent. When a concurrent writer persists first, Ensure discards its
// own candidate and returns the stored winner.
func Ensure[T any](ctx context.Context, f Funcs[T]) (*T, error) {
	existing, err := f.Lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup before generation: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	candidate, err := f.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	// Generation is slow. A rival may have persisted in the meantime,
	// and not every scope has a uniqueness key to catch that on insert,
	// so re-check before persisting and discard our candidate if a row
	// appeared.
	existing, err = f.Lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup after generation: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	stored, err := f.Persist(ctx, candidate)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		return nil, fmt.Errorf("persist generated content: %w", err)
	}

	// Someone else won the race. Exactly one re-query; the winner must
	// be visible by now.
	winner, err := f.Lookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("lookup after conflict: %w", err)
	}
	if winner == nil {
		return nil, fmt.Errorf("conflict reported but no row found after re-query")
	}
	return winner, nil
}
