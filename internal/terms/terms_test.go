package terms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/logger"
	"github.com/adilet/learnloop/internal/model"
)

type fakeTermStore struct {
	terms []model.Term
	err   error
}

func (f *fakeTermStore) List(context.Context) ([]model.Term, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.terms, nil
}

func fixedDay(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t }
}

func glossary(names ...string) []model.Term {
	out := make([]model.Term, len(names))
	for i, n := range names {
		out[i] = model.Term{Term: n, Definition: "d"}
	}
	return out
}

func TestDailyRotatesByDayOfYear(t *testing.T) {
	store := &fakeTermStore{terms: glossary("Alpha", "Beta", "Gamma")}

	cases := []struct {
		date string
		want string
	}{
		{"2026-01-01", "Beta"},  // day 1
		{"2026-01-02", "Gamma"}, // day 2
		{"2026-01-03", "Alpha"}, // day 3 wraps
		{"2026-01-04", "Beta"},
	}
	for _, tc := range cases {
		svc := NewService(store, logger.Nop(), fixedDay(tc.date))
		got, err := svc.Daily(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Term, "date %s", tc.date)
	}
}

func TestDailySameDaySameTermForEveryone(t *testing.T) {
	store := &fakeTermStore{terms: glossary("Alpha", "Beta")}
	svc := NewService(store, logger.Nop(), fixedDay("2026-03-15"))

	first, err := svc.Daily(context.Background())
	require.NoError(t, err)
	second, err := svc.Daily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDailyEmptyGlossaryFallsBack(t *testing.T) {
	svc := NewService(&fakeTermStore{}, logger.Nop(), nil)

	got, err := svc.Daily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning", got.Term)
	assert.Equal(t, "Beginner", got.Difficulty)
}

func TestDailyStoreErrorFallsBack(t *testing.T) {
	store := &fakeTermStore{err: errors.New("connection refused")}
	svc := NewService(store, logger.Nop(), nil)

	got, err := svc.Daily(context.Background())
	require.NoError(t, err, "glossary trouble must not fail the request")
	assert.Equal(t, "Machine Learning", got.Term)
}
