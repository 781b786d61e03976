package quizzes

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/logger"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/stats"
)

type memQuizzes struct {
	byLesson map[uuid.UUID]model.Quiz
}

func newMemQuizzes() *memQuizzes {
	return &memQuizzes{byLesson: map[uuid.UUID]model.Quiz{}}
}

func (m *memQuizzes) ByLessonID(_ context.Context, lessonID uuid.UUID) (*model.Quiz, error) {
	if q, ok := m.byLesson[lessonID]; ok {
		return &q, nil
	}
	return nil, nil
}

func (m *memQuizzes) ByID(_ context.Context, id uuid.UUID) (*model.Quiz, error) {
	for _, q := range m.byLesson {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, errors.New("quiz not found")
}

func (m *memQuizzes) Insert(_ context.Context, q model.Quiz) (*model.Quiz, error) {
	q.ID = uuid.New()
	m.byLesson[q.LessonID] = q
	return &q, nil
}

type oneLessonStore struct {
	lesson model.Lesson
}

func (s *oneLessonStore) ByID(_ context.Context, id uuid.UUID) (*model.Lesson, error) {
	if id != s.lesson.ID {
		return nil, errors.New("lesson not found")
	}
	return &s.lesson, nil
}

type memQuizAttempts struct {
	scores []int
}

func (m *memQuizAttempts) InsertQuizAttempt(_ context.Context, _ string, _ uuid.UUID, score int, _ []int) error {
	m.scores = append(m.scores, score)
	return nil
}

type fakeRecorder struct {
	kinds []stats.Kind
	xp    []int
}

func (f *fakeRecorder) RecordActivity(context.Context, string) (int, error) { return 2, nil }

func (f *fakeRecorder) RecordCompletion(_ context.Context, _ string, kind stats.Kind, xp int) (model.UserStats, error) {
	f.kinds = append(f.kinds, kind)
	f.xp = append(f.xp, xp)
	return model.UserStats{XPTotal: xp}, nil
}

type fixedGen struct {
	calls     int
	questions []model.Question
}

func (g *fixedGen) Quiz(context.Context, model.Lesson) ([]model.Question, error) {
	g.calls++
	return g.questions, nil
}

func threeQuestions() []model.Question {
	return []model.Question{
		{Question: "Q1?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "e1"},
		{Question: "Q2?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "e2"},
		{Question: "Q3?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2, Explanation: "e3"},
	}
}

func TestForLessonGeneratesOnce(t *testing.T) {
	lesson := model.Lesson{ID: uuid.New(), Title: "Tokens"}
	st := newMemQuizzes()
	gen := &fixedGen{questions: threeQuestions()}
	svc := NewService(st, &oneLessonStore{lesson: lesson}, &memQuizAttempts{}, &fakeRecorder{}, gen, logger.Nop())
	ctx := context.Background()

	first, err := svc.ForLesson(ctx, lesson.ID)
	require.NoError(t, err)
	second, err := svc.ForLesson(ctx, lesson.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, gen.calls)
	assert.Len(t, first.Questions, 3)
}

func TestSubmitGradesAndAwardsXP(t *testing.T) {
	lesson := model.Lesson{ID: uuid.New()}
	st := newMemQuizzes()
	stored, err := st.Insert(context.Background(), model.Quiz{LessonID: lesson.ID, Questions: threeQuestions()})
	require.NoError(t, err)

	attempts := &memQuizAttempts{}
	recorder := &fakeRecorder{}
	svc := NewService(st, &oneLessonStore{lesson: lesson}, attempts, recorder, &fixedGen{}, logger.Nop())

	got, err := svc.Submit(context.Background(), "u1", stored.ID, []int{0, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, got.Correct)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 66, got.Score)
	assert.Equal(t, 2*stats.XPPerCorrect, got.XPEarned)
	assert.Equal(t, 2, got.StreakDays)

	require.Len(t, got.Results, 3)
	assert.True(t, got.Results[0].Correct)
	assert.False(t, got.Results[2].Correct)
	assert.Equal(t, 2, got.Results[2].CorrectIndex)

	assert.Equal(t, []int{66}, attempts.scores)
	assert.Equal(t, []stats.Kind{stats.KindQuiz}, recorder.kinds)
	assert.Equal(t, []int{10}, recorder.xp)
}

func TestSubmitShortAnswersCountWrong(t *testing.T) {
	lesson := model.Lesson{ID: uuid.New()}
	st := newMemQuizzes()
	stored, err := st.Insert(context.Background(), model.Quiz{LessonID: lesson.ID, Questions: threeQuestions()})
	require.NoError(t, err)

	svc := NewService(st, &oneLessonStore{lesson: lesson}, &memQuizAttempts{}, &fakeRecorder{}, &fixedGen{}, logger.Nop())

	got, err := svc.Submit(context.Background(), "u1", stored.ID, []int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Correct)
	assert.Equal(t, 33, got.Score)
}

func TestForLessonPlaceholderWhenGenerationFails(t *testing.T) {
	lesson := model.Lesson{ID: uuid.New(), Title: "Tokens"}
	st := newMemQuizzes()
	gen := &failingGen{}
	svc := NewService(st, &oneLessonStore{lesson: lesson}, &memQuizAttempts{}, &fakeRecorder{}, gen, logger.Nop())

	got, err := svc.ForLesson(context.Background(), lesson.ID)
	require.NoError(t, err, "read path degrades instead of failing")
	assert.Equal(t, uuid.Nil, got.ID)
	require.NotEmpty(t, got.Questions)
	assert.Contains(t, got.Questions[0].Question, "briefly unavailable")
	assert.Empty(t, st.byLesson, "placeholder is never persisted")
}

type failingGen struct{}

func (failingGen) Quiz(context.Context, model.Lesson) ([]model.Question, error) {
	return nil, errors.New("model unavailable")
}

func TestGradeEmptyQuiz(t *testing.T) {
	got := grade(nil, nil)
	assert.Zero(t, got.Score)
	assert.Zero(t, got.Total)
}
