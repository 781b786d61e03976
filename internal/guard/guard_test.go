package guard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/store"
)

type row struct {
	id    int
	title string
}

// memTable is a tiny row store with a one-row-per-table constraint,
// enough to exercise the conflict path.
type memTable struct {
	mu     sync.Mutex
	stored *row
}

func (m *memTable) lookup(context.Context) (*row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		return nil, nil
	}
	cp := *m.stored
	return &cp, nil
}

func (m *memTable) persist(_ context.Context, v row) (*row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored != nil {
		return nil, store.ErrConflict
	}
	m.stored = &v
	cp := v
	return &cp, nil
}

// appendTable has no uniqueness constraint at all: every persist
// appends. Models scopes whose table carries no key.
type appendTable struct {
	mu   sync.Mutex
	rows []row
}

func (m *appendTable) lookup(context.Context) (*row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.rows) == 0 {
		return nil, nil
	}
	cp := m.rows[0]
	return &cp, nil
}

func (m *appendTable) persist(_ context.Context, v row) (*row, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, v)
	cp := v
	return &cp, nil
}

func TestEnsureReturnsExistingWithoutGenerating(t *testing.T) {
	table := &memTable{stored: &row{id: 1, title: "existing"}}
	generated := 0

	got, err := Ensure(context.Background(), Funcs[row]{
		Lookup: table.lookup,
		Generate: func(context.Context) (row, error) {
			generated++
			return row{id: 2, title: "fresh"}, nil
		},
		Persist: table.persist,
	})
	require.NoError(t, err)
	assert.Equal(t, "existing", got.title)
	assert.Zero(t, generated, "generator must not run when a row exists")
}

func TestEnsureGeneratesAndPersistsWhenAbsent(t *testing.T) {
	table := &memTable{}

	got, err := Ensure(context.Background(), Funcs[row]{
		Lookup: table.lookup,
		Generate: func(context.Context) (row, error) {
			return row{id: 7, title: "fresh"}, nil
		},
		Persist: table.persist,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got.id)
	require.NotNil(t, table.stored)
	assert.Equal(t, "fresh", table.stored.title)
}

func TestEnsureRecheckAdoptsRowPersistedDuringGeneration(t *testing.T) {
	// No uniqueness key on this table: a blind insert would always
	// succeed, so only the post-generation re-check can stop a
	// duplicate.
	table := &appendTable{}

	got, err := Ensure(context.Background(), Funcs[row]{
		Lookup: table.lookup,
		Generate: func(ctx context.Context) (row, error) {
			_, err := table.persist(ctx, row{id: 1, title: "rival"})
			require.NoError(t, err)
			return row{id: 2, title: "loser"}, nil
		},
		Persist: table.persist,
	})
	require.NoError(t, err)
	assert.Equal(t, "rival", got.title, "the first persisted row wins")
	assert.Len(t, table.rows, 1, "exactly one persisted row per scope")
}

func TestEnsureConflictReturnsWinner(t *testing.T) {
	table := &memTable{}

	// The rival commits in the window between our re-check and our
	// insert, so the store's uniqueness key is the last line of
	// defense.
	lookups := 0
	got, err := Ensure(context.Background(), Funcs[row]{
		Lookup: func(ctx context.Context) (*row, error) {
			lookups++
			if lookups <= 2 {
				return nil, nil
			}
			return table.lookup(ctx)
		},
		Generate: func(context.Context) (row, error) {
			return row{id: 2, title: "loser"}, nil
		},
		Persist: func(ctx context.Context, v row) (*row, error) {
			_, err := table.persist(ctx, row{id: 1, title: "rival"})
			require.NoError(t, err)
			return table.persist(ctx, v)
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "rival", got.title, "the first persisted row wins")
	assert.Equal(t, 1, table.stored.id, "losing candidate must not overwrite")
}

func TestEnsureConcurrentCallersShareOneRow(t *testing.T) {
	table := &memTable{}
	var generated int
	var genMu sync.Mutex

	const callers = 16
	results := make([]*row, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = Ensure(context.Background(), Funcs[row]{
				Lookup: table.lookup,
				Generate: func(context.Context) (row, error) {
					genMu.Lock()
					generated++
					id := generated
					genMu.Unlock()
					return row{id: id, title: "candidate"}, nil
				},
				Persist: table.persist,
			})
		}()
	}
	wg.Wait()

	require.NotNil(t, table.stored)
	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, table.stored.id, results[i].id, "every caller sees the same row")
	}
}

func TestEnsureWrapsGeneratorError(t *testing.T) {
	table := &memTable{}
	boom := errors.New("model unavailable")

	_, err := Ensure(context.Background(), Funcs[row]{
		Lookup: table.lookup,
		Generate: func(context.Context) (row, error) {
			return row{}, boom
		},
		Persist: table.persist,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, table.stored, "nothing persisted on generation failure")
}

func TestEnsurePropagatesLookupError(t *testing.T) {
	dbDown := errors.New("connection refused")

	_, err := Ensure(context.Background(), Funcs[row]{
		Lookup:   func(context.Context) (*row, error) { return nil, dbDown },
		Generate: func(context.Context) (row, error) { return row{}, nil },
		Persist:  func(context.Context, row) (*row, error) { return nil, nil },
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrGenerationFailed)
}

func TestEnsureConflictWithMissingWinnerFails(t *testing.T) {
	// Pathological store: reports conflict but never exposes the row.
	_, err := Ensure(context.Background(), Funcs[row]{
		Lookup:   func(context.Context) (*row, error) { return nil, nil },
		Generate: func(context.Context) (row, error) { return row{id: 1}, nil },
		Persist: func(context.Context, row) (*row, error) {
			return nil, store.ErrConflict
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no row found")
}
