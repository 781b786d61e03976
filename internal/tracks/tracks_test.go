package tracks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/logger"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/schedule"
)

type fakeLessonStore struct {
	lessons   []model.Lesson
	insertErr error
}

func (f *fakeLessonStore) ListByTopic(_ context.Context, topic string) ([]model.Lesson, error) {
	var out []model.Lesson
	for _, l := range f.lessons {
		if l.Topic == topic {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLessonStore) Insert(_ context.Context, l model.Lesson) (*model.Lesson, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	l.ID = uuid.New()
	f.lessons = append(f.lessons, l)
	return &l, nil
}

type fakeProgress struct {
	completed map[uuid.UUID]bool
}

func (f *fakeProgress) CompletedLessonIDs(context.Context, string) (map[uuid.UUID]bool, error) {
	if f.completed == nil {
		return map[uuid.UUID]bool{}, nil
	}
	return f.completed, nil
}

type fakeGenerator struct {
	calls    int
	titles   []string // previous titles seen on the last call
	nextErr  error
	produced string
}

func (f *fakeGenerator) Lesson(_ context.Context, topic string, level model.Level, previousTitles []string) (model.Lesson, error) {
	f.calls++
	f.titles = previousTitles
	if f.nextErr != nil {
		return model.Lesson{}, f.nextErr
	}
	title := f.produced
	if title == "" {
		title = "Generated"
	}
	return model.Lesson{Topic: topic, Level: level, Title: title, Explanation: "x"}, nil
}

func newTestService(store *fakeLessonStore, progress *fakeProgress, gen LessonGenerator) *Service {
	return NewService(store, progress, gen, schedule.New(schedule.DefaultConfig()), logger.Nop())
}

func storedLesson(topic, title string) model.Lesson {
	return model.Lesson{ID: uuid.New(), Topic: topic, Level: model.LevelBeginner, Title: title}
}

func TestLessonsViewLockWalk(t *testing.T) {
	topic := schedule.DefaultConfig().TrackTopics["prompt_engineering"]
	a := storedLesson(topic, "A")
	b := storedLesson(topic, "B")
	c := storedLesson(topic, "C")
	store := &fakeLessonStore{lessons: []model.Lesson{a, b, c}}
	progress := &fakeProgress{completed: map[uuid.UUID]bool{a.ID: true}}
	gen := &fakeGenerator{}

	views, err := newTestService(store, progress, gen).LessonsView(context.Background(), "prompt_engineering", "u1")
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.False(t, views[0].IsLocked, "first lesson is always unlocked")
	assert.True(t, views[0].IsCompleted)
	assert.False(t, views[1].IsLocked, "follows a completed lesson")
	assert.False(t, views[1].IsCompleted)
	assert.True(t, views[2].IsLocked, "follows an incomplete lesson")

	assert.Zero(t, gen.calls, "no generation while the track has work left")
}

func TestLessonsViewEmptyTrackGetsIntro(t *testing.T) {
	store := &fakeLessonStore{}
	gen := &fakeGenerator{produced: "Intro"}

	views, err := newTestService(store, &fakeProgress{}, gen).LessonsView(context.Background(), "prompt_engineering", "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, "Intro", views[0].Title)
	assert.Equal(t, model.LevelBeginner, views[0].Level)
	assert.False(t, views[0].IsLocked)
	assert.False(t, views[0].IsCompleted)
	assert.Len(t, store.lessons, 1, "intro is persisted")
}

// rivalGenerator stores a competing lesson mid-generation, the way a
// concurrent request would.
type rivalGenerator struct {
	store *fakeLessonStore
}

func (g *rivalGenerator) Lesson(ctx context.Context, topic string, level model.Level, _ []string) (model.Lesson, error) {
	_, err := g.store.Insert(ctx, model.Lesson{Topic: topic, Level: level, Title: "Rival Intro", Explanation: "x"})
	if err != nil {
		return model.Lesson{}, err
	}
	return model.Lesson{Topic: topic, Level: level, Title: "Loser Intro", Explanation: "x"}, nil
}

func TestLessonsViewAdoptsIntroStoredDuringGeneration(t *testing.T) {
	store := &fakeLessonStore{}
	gen := &rivalGenerator{store: store}

	views, err := newTestService(store, &fakeProgress{}, gen).LessonsView(context.Background(), "prompt_engineering", "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Rival Intro", views[0].Title)
	assert.Len(t, store.lessons, 1, "losing candidate is discarded")
}

func TestLessonsViewAllCompletedExtendsTrack(t *testing.T) {
	topic := schedule.DefaultConfig().TrackTopics["prompt_engineering"]
	a := storedLesson(topic, "A")
	b := storedLesson(topic, "B")
	store := &fakeLessonStore{lessons: []model.Lesson{a, b}}
	progress := &fakeProgress{completed: map[uuid.UUID]bool{a.ID: true, b.ID: true}}
	gen := &fakeGenerator{produced: "Next"}

	views, err := newTestService(store, progress, gen).LessonsView(context.Background(), "prompt_engineering", "u1")
	require.NoError(t, err)
	require.Len(t, views, 3)

	next := views[2]
	assert.Equal(t, "Next", next.Title)
	assert.False(t, next.IsLocked, "new lesson is immediately available")
	assert.False(t, next.IsCompleted)

	assert.Equal(t, []string{"A", "B"}, gen.titles, "existing titles steer generation")
}

func TestLessonsViewGenerationFailureDegrades(t *testing.T) {
	topic := schedule.DefaultConfig().TrackTopics["prompt_engineering"]
	a := storedLesson(topic, "A")
	store := &fakeLessonStore{lessons: []model.Lesson{a}}
	progress := &fakeProgress{completed: map[uuid.UUID]bool{a.ID: true}}
	gen := &fakeGenerator{nextErr: errors.New("model unavailable")}

	views, err := newTestService(store, progress, gen).LessonsView(context.Background(), "prompt_engineering", "u1")
	require.NoError(t, err, "generation failure must not fail the view")
	assert.Len(t, views, 1)
}

func TestLessonsViewDedupKeepsFirst(t *testing.T) {
	topic := schedule.DefaultConfig().TrackTopics["prompt_engineering"]
	a := storedLesson(topic, "Tokens")
	dup := storedLesson(topic, "  tokens ")
	b := storedLesson(topic, "Context Windows")
	store := &fakeLessonStore{lessons: []model.Lesson{a, dup, b}}
	progress := &fakeProgress{completed: map[uuid.UUID]bool{a.ID: true}}

	views, err := newTestService(store, progress, &fakeGenerator{}).LessonsView(context.Background(), "prompt_engineering", "u1")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, a.ID, views[0].ID, "first occurrence survives")
	assert.Equal(t, "Context Windows", views[1].Title)
	assert.False(t, views[1].IsLocked, "lock walk runs on the deduplicated list")
}

func TestLessonsViewUnknownTrackFallsBack(t *testing.T) {
	cfg := schedule.DefaultConfig()
	lesson := storedLesson(cfg.DefaultTopic, "A")
	store := &fakeLessonStore{lessons: []model.Lesson{lesson}}

	views, err := newTestService(store, &fakeProgress{}, &fakeGenerator{}).LessonsView(context.Background(), "no_such_track", "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "A", views[0].Title)
}

func TestDedupByTitle(t *testing.T) {
	in := []model.Lesson{
		{Title: "Alpha"},
		{Title: "alpha"},
		{Title: "Beta"},
		{Title: " ALPHA  "},
		{Title: "Gamma"},
	}
	out := dedupByTitle(in)
	require.Len(t, out, 3)
	assert.Equal(t, "Alpha", out[0].Title)
	assert.Equal(t, "Beta", out[1].Title)
	assert.Equal(t, "Gamma", out[2].Title)
}
