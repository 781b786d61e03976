package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/store"
)

type fakeStore struct {
	rows    map[string]model.UserStats
	creates int
	updates int

	// raceOnCreate simulates a concurrent writer landing the row
	// between Get and Create.
	raceOnCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[string]model.UserStats{}}
}

func (f *fakeStore) Get(_ context.Context, userID string) (*model.UserStats, error) {
	if row, ok := f.rows[userID]; ok {
		return &row, nil
	}
	return nil, nil
}

func (f *fakeStore) Create(_ context.Context, s model.UserStats) error {
	f.creates++
	if f.raceOnCreate {
		f.rows[s.UserID] = model.UserStats{UserID: s.UserID, XPTotal: 99, StreakDays: 3}
		f.raceOnCreate = false
		return store.ErrConflict
	}
	if _, ok := f.rows[s.UserID]; ok {
		return store.ErrConflict
	}
	f.rows[s.UserID] = s
	return nil
}

func (f *fakeStore) Update(_ context.Context, s model.UserStats) error {
	f.updates++
	if _, ok := f.rows[s.UserID]; !ok {
		return store.ErrNotFound
	}
	f.rows[s.UserID] = s
	return nil
}

func fixedNow(day string) func() time.Time {
	t, err := time.Parse(model.DateFormat, day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(14 * time.Hour) }
}

func TestRecordActivityStreakRules(t *testing.T) {
	cases := []struct {
		name       string
		lastActive string
		streak     int
		want       int
		wantWrite  bool
	}{
		{"first activity ever", "", 0, 1, true},
		{"same day is a no-op", "2026-08-30", 4, 4, false},
		{"consecutive day extends", "2026-08-29", 4, 5, true},
		{"gap resets", "2026-08-27", 9, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newFakeStore()
			if tc.lastActive != "" {
				st.rows["u1"] = model.UserStats{UserID: "u1", StreakDays: tc.streak, LastActiveDate: tc.lastActive}
			}
			svc := NewService(st, fixedNow("2026-08-30"))

			got, err := svc.RecordActivity(context.Background(), "u1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			if tc.wantWrite {
				assert.Equal(t, "2026-08-30", st.rows["u1"].LastActiveDate)
				assert.Positive(t, st.updates)
			} else {
				assert.Zero(t, st.updates, "unchanged streak must not be written")
			}
		})
	}
}

func TestRecordCompletionAccumulates(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st, fixedNow("2026-08-30"))
	ctx := context.Background()

	got, err := svc.RecordCompletion(ctx, "u1", KindLesson, XPLesson)
	require.NoError(t, err)
	assert.Equal(t, 10, got.XPTotal)
	assert.Equal(t, 1, got.LessonsCompleted)
	assert.Equal(t, 5, got.DailyMinutes)
	assert.Equal(t, "2026-08-30", got.LastActivityDate)

	got, err = svc.RecordCompletion(ctx, "u1", KindQuiz, 15)
	require.NoError(t, err)
	assert.Equal(t, 25, got.XPTotal)
	assert.Equal(t, 1, got.QuizzesCompleted)
	assert.Equal(t, 10, got.DailyMinutes)
}

func TestRecordCompletionResetsDailyMinutesOnNewDay(t *testing.T) {
	st := newFakeStore()
	st.rows["u1"] = model.UserStats{
		UserID:           "u1",
		DailyMinutes:     45,
		LastActivityDate: "2026-08-29",
	}
	svc := NewService(st, fixedNow("2026-08-30"))

	got, err := svc.RecordCompletion(context.Background(), "u1", KindPractice, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, got.DailyMinutes, "yesterday's minutes do not carry over")
	assert.Equal(t, 1, got.PracticeCompleted)
}

func TestRecordCompletionRepeatStillAwardsXP(t *testing.T) {
	st := newFakeStore()
	svc := NewService(st, fixedNow("2026-08-30"))
	ctx := context.Background()

	for range 2 {
		if _, err := svc.RecordCompletion(ctx, "u1", KindLesson, XPLesson); err != nil {
			t.Fatal(err)
		}
	}
	row := st.rows["u1"]
	assert.Equal(t, 20, row.XPTotal)
	assert.Equal(t, 2, row.LessonsCompleted)
}

func TestLoadOrCreateLosesRaceAndAdopts(t *testing.T) {
	st := newFakeStore()
	st.raceOnCreate = true
	svc := NewService(st, fixedNow("2026-08-30"))

	got, err := svc.RecordCompletion(context.Background(), "u1", KindLesson, XPLesson)
	require.NoError(t, err)
	assert.Equal(t, 99+XPLesson, got.XPTotal, "continues from the winner's row")
	assert.Equal(t, 1, st.creates, "create attempted exactly once")
}

func TestSnapshotDefaultsWhenMissing(t *testing.T) {
	svc := NewService(newFakeStore(), nil)

	got, err := svc.Snapshot(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, "nobody", got.UserID)
	assert.Zero(t, got.XPTotal)
	assert.Zero(t, got.StreakDays)
}
