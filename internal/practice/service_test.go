package practice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/stats"
)

type memAttempts struct {
	prompts []string
}

func (m *memAttempts) InsertPracticeAttempt(_ context.Context, _, _, userPrompt string, _ model.PracticeFeedback) error {
	m.prompts = append(m.prompts, userPrompt)
	return nil
}

type fakeRecorder struct {
	kinds []stats.Kind
}

func (f *fakeRecorder) RecordActivity(context.Context, string) (int, error) { return 1, nil }

func (f *fakeRecorder) RecordCompletion(_ context.Context, _ string, kind stats.Kind, xp int) (model.UserStats, error) {
	f.kinds = append(f.kinds, kind)
	return model.UserStats{XPTotal: xp}, nil
}

type fixedFeedbackGen struct {
	err error
}

func (g *fixedFeedbackGen) Practice(context.Context, string, string) (model.PracticeFeedback, error) {
	if g.err != nil {
		return model.PracticeFeedback{}, g.err
	}
	return model.PracticeFeedback{
		Strengths:      []string{"clear intent"},
		Improvements:   []string{"add constraints"},
		ImprovedPrompt: "better prompt",
	}, nil
}

func TestSubmitReviewsAndRecords(t *testing.T) {
	attempts := &memAttempts{}
	recorder := &fakeRecorder{}
	svc := NewService(attempts, recorder, &fixedFeedbackGen{})

	got, err := svc.Submit(context.Background(), "u1", "Summarize a doc", "please summarize this")
	require.NoError(t, err)

	assert.Equal(t, "better prompt", got.Feedback.ImprovedPrompt)
	assert.Equal(t, XPPractice, got.XPEarned)
	assert.Equal(t, []string{"please summarize this"}, attempts.prompts)
	assert.Equal(t, []stats.Kind{stats.KindPractice}, recorder.kinds)
}

func TestSubmitEmptyPromptRejected(t *testing.T) {
	attempts := &memAttempts{}
	svc := NewService(attempts, &fakeRecorder{}, &fixedFeedbackGen{})

	_, err := svc.Submit(context.Background(), "u1", "task", "   ")
	require.Error(t, err)
	assert.Empty(t, attempts.prompts)
}

func TestSubmitGenerationFailureRecordsNothing(t *testing.T) {
	attempts := &memAttempts{}
	recorder := &fakeRecorder{}
	svc := NewService(attempts, recorder, &fixedFeedbackGen{err: errors.New("model unavailable")})

	_, err := svc.Submit(context.Background(), "u1", "task", "a prompt")
	require.Error(t, err)
	assert.Empty(t, attempts.prompts)
	assert.Empty(t, recorder.kinds)
}
