// Package practice reviews learner-written prompts and records the
// attempt. Feedback is generated fresh per submission; nothing here is
// shared between learners, so there is no generation race to guard.
package practice

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/stats"
)

// AttemptStore records practice submissions with their feedback.
type AttemptStore interface {
	InsertPracticeAttempt(ctx context.Context, userID, task, userPrompt string, feedback model.PracticeFeedback) error
}

// ProgressRecorder applies streak and counter updates.
type ProgressRecorder interface {
	RecordActivity(ctx context.Context, userID string) (int, error)
	RecordCompletion(ctx context.Context, userID string, kind stats.Kind, xp int) (model.UserStats, error)
}

// Generator produces feedback for a submission.
type Generator interface {
	Practice(ctx context.Context, task, userPrompt string) (model.PracticeFeedback, error)
}

// Service grades practice submissions.
type Service struct {
	attempts AttemptStore
	recorder ProgressRecorder
	gen      Generator
}

// NewService wires a practice service.
func NewService(attempts AttemptStore, recorder ProgressRecorder, gen Generator) *Service {
	return &Service{attempts: attempts, recorder: recorder, gen: gen}
}

// Result is the reviewed submission.
type Result struct {
	Feedback   model.PracticeFeedback `json:"feedback"`
	XPEarned   int                    `json:"xp_earned"`
	StreakDays int                    `json:"streak_days"`
	Stats      model.UserStats        `json:"stats"`
}

// XPPractice is awarded per reviewed submission.
const XPPractice = 5

// Submit reviews a learner's prompt for the given task.
func (s *Service) Submit(ctx context.Context, userID, task, userPrompt string) (Result, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return Result{}, fmt.Errorf("empty prompt")
	}

	feedback, err := s.gen.Practice(ctx, task, userPrompt)
	if err != nil {
		return Result{}, err
	}

	if err := s.attempts.InsertPracticeAttempt(ctx, userID, task, userPrompt, feedback); err != nil {
		return Result{}, err
	}

	streak, err := s.recorder.RecordActivity(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	updated, err := s.recorder.RecordCompletion(ctx, userID, stats.KindPractice, XPPractice)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Feedback:   feedback,
		XPEarned:   XPPractice,
		StreakDays: streak,
		Stats:      updated,
	}, nil
}
