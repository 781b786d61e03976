package exams

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
	"github.com/adilet/learnloop/internal/store"
)

type memExams struct {
	byTitle map[string]model.Exam
}

func newMemExams() *memExams {
	return &memExams{byTitle: map[string]model.Exam{}}
}

func (m *memExams) ByTitle(_ context.Context, title string) (*model.Exam, error) {
	if e, ok := m.byTitle[title]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *memExams) ByID(_ context.Context, id uuid.UUID) (*model.Exam, error) {
	for _, e := range m.byTitle {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, errors.New("exam not found")
}

func (m *memExams) Insert(_ context.Context, e model.Exam) (*model.Exam, error) {
	if _, ok := m.byTitle[e.Title]; ok {
		return nil, store.ErrConflict
	}
	e.ID = uuid.New()
	m.byTitle[e.Title] = e
	return &e, nil
}

type memCerts struct {
	rows      []model.Certificate
	conflicts int // first N inserts fail with ErrConflict
}

func (m *memCerts) Insert(_ context.Context, c model.Certificate) (*model.Certificate, error) {
	if m.conflicts > 0 {
		m.conflicts--
		return nil, store.ErrConflict
	}
	c.ID = uuid.New()
	m.rows = append(m.rows, c)
	return &c, nil
}

func (m *memCerts) ByUser(_ context.Context, userID string) ([]model.Certificate, error) {
	var out []model.Certificate
	for _, c := range m.rows {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCerts) ByCode(_ context.Context, code string) (*model.Certificate, error) {
	for _, c := range m.rows {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

type memExamAttempts struct {
	scores []int
	passed []bool
}

func (m *memExamAttempts) InsertExamAttempt(_ context.Context, _ string, _ uuid.UUID, score int, passed bool) error {
	m.scores = append(m.scores, score)
	m.passed = append(m.passed, passed)
	return nil
}

type fakeRecorder struct {
	certs int
	xp    []int
}

func (f *fakeRecorder) RecordActivity(context.Context, string) (int, error) { return 1, nil }

func (f *fakeRecorder) RecordCompletion(_ context.Context, _ string, _ stats.Kind, xp int) (model.UserStats, error) {
	f.xp = append(f.xp, xp)
	return model.UserStats{}, nil
}

func (f *fakeRecorder) RecordCertificate(context.Context, string) error {
	f.certs++
	return nil
}

type fixedExamGen struct {
	calls int
}

func (g *fixedExamGen) Exam(_ context.Context, title string) (model.Exam, error) {
	g.calls++
	questions := make([]model.Question, 10)
	for i := range questions {
		questions[i] = model.Question{CorrectIndex: i % 4, Options: []string{"a", "b", "c", "d"}}
	}
	return model.Exam{Title: title, Description: "d", Questions: questions}, nil
}

func newTestService(st *memExams, certs *memCerts, attempts *memExamAttempts, rec *fakeRecorder) *Service {
	return NewService(st, certs, attempts, rec, &fixedExamGen{}, logger.Nop())
}

func correctAnswers(exam model.Exam) []int {
	answers := make([]int, len(exam.Questions))
	for i, q := range exam.Questions {
		answers[i] = q.CorrectIndex
	}
	return answers
}

func TestFinalGeneratesOnce(t *testing.T) {
	st := newMemExams()
	gen := &fixedExamGen{}
	svc := NewService(st, &memCerts{}, &memExamAttempts{}, &fakeRecorder{}, gen, logger.Nop())
	ctx := context.Background()

	first, err := svc.Final(ctx)
	require.NoError(t, err)
	second, err := svc.Final(ctx)
	require.NoError(t, err)

	assert.Equal(t, FinalExamTitle, first.Title)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, gen.calls)
}

func TestSubmitPassIssuesCertificate(t *testing.T) {
	st := newMemExams()
	certs := &memCerts{}
	attempts := &memExamAttempts{}
	rec := &fakeRecorder{}
	svc := newTestService(st, certs, attempts, rec)
	ctx := context.Background()

	exam, err := svc.Final(ctx)
	require.NoError(t, err)

	got, err := svc.Submit(ctx, "u1", exam.ID, correctAnswers(exam))
	require.NoError(t, err)

	assert.Equal(t, 100, got.Score)
	assert.True(t, got.Passed)
	require.NotNil(t, got.Certificate)
	assert.Len(t, got.Certificate.Code, codeLength)
	for _, r := range got.Certificate.Code {
		assert.Contains(t, codeAlphabet, string(r))
	}
	assert.Equal(t, 1, rec.certs)
	assert.Equal(t, []bool{true}, attempts.passed)
}

func TestSubmitFailBelowThreshold(t *testing.T) {
	st := newMemExams()
	certs := &memCerts{}
	svc := newTestService(st, certs, &memExamAttempts{}, &fakeRecorder{})
	ctx := context.Background()

	exam, err := svc.Final(ctx)
	require.NoError(t, err)

	// 7 of 10 correct: 70, below the bar.
	answers := correctAnswers(exam)
	for i := 7; i < len(answers); i++ {
		answers[i] = (answers[i] + 1) % 4
	}

	got, err := svc.Submit(ctx, "u1", exam.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, 70, got.Score)
	assert.False(t, got.Passed)
	assert.Nil(t, got.Certificate)
	assert.Empty(t, certs.rows)
}

func TestSubmitExactThresholdPasses(t *testing.T) {
	st := newMemExams()
	svc := newTestService(st, &memCerts{}, &memExamAttempts{}, &fakeRecorder{})
	ctx := context.Background()

	exam, err := svc.Final(ctx)
	require.NoError(t, err)

	answers := correctAnswers(exam)
	for i := 8; i < len(answers); i++ {
		answers[i] = (answers[i] + 1) % 4
	}

	got, err := svc.Submit(ctx, "u1", exam.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, PassScore, got.Score)
	assert.True(t, got.Passed)
}

func TestIssueCertificateRetriesOnCodeCollision(t *testing.T) {
	st := newMemExams()
	certs := &memCerts{conflicts: 2}
	svc := newTestService(st, certs, &memExamAttempts{}, &fakeRecorder{})
	ctx := context.Background()

	exam, err := svc.Final(ctx)
	require.NoError(t, err)

	got, err := svc.Submit(ctx, "u1", exam.ID, correctAnswers(exam))
	require.NoError(t, err)
	require.NotNil(t, got.Certificate, "third insert attempt succeeds")
	assert.Len(t, certs.rows, 1)
}

func TestVerifyUnknownCode(t *testing.T) {
	svc := newTestService(newMemExams(), &memCerts{}, &memExamAttempts{}, &fakeRecorder{})

	_, err := svc.Verify(context.Background(), "NOPE000000")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
