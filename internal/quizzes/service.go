// Package quizzes serves the per-lesson quiz and grades submissions.
// Each lesson has exactly one quiz; a uniqueness constraint on the
// lesson id backs the generation race.
package quizzes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adilet/learnloop/internal/guard"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/stats"
)

// Store is the quiz persistence the service needs.
type Store interface {
	ByLessonID(ctx context.Context, lessonID uuid.UUID) (*model.Quiz, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error)
	Insert(ctx context.Context, q model.Quiz) (*model.Quiz, error)
}

// LessonStore fetches the lesson a quiz is generated from.
type LessonStore interface {
	ByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
}

// AttemptStore records quiz submissions.
type AttemptStore interface {
	InsertQuizAttempt(ctx context.Context, userID string, quizID uuid.UUID, score int, answers []int) error
}

// ProgressRecorder applies streak and counter updates.
type ProgressRecorder interface {
	RecordActivity(ctx context.Context, userID string) (int, error)
	RecordCompletion(ctx context.Context, userID string, kind stats.Kind, xp int) (model.UserStats, error)
}

// Generator produces quiz questions for a lesson.
type Generator interface {
	Quiz(ctx context.Context, lesson model.Lesson) ([]model.Question, error)
}

// Service resolves and grades quizzes.
type Service struct {
	store    Store
	lessons  LessonStore
	attempts AttemptStore
	recorder ProgressRecorder
	gen      Generator
	log      *zap.SugaredLogger
}

// NewService wires a quiz service.
func NewService(st Store, lessons LessonStore, attempts AttemptStore, recorder ProgressRecorder, gen Generator, log *zap.SugaredLogger) *Service {
	return &Service{store: st, lessons: lessons, attempts: attempts, recorder: recorder, gen: gen, log: log}
}

// ForLesson returns the lesson's quiz, generating it on first demand.
// When generation fails and nothing is stored yet, a static placeholder
// quiz is returned so the read path never hard-fails; it is not
// persisted, so the next request generates a real one.
func (s *Service) ForLesson(ctx context.Context, lessonID uuid.UUID) (model.Quiz, error) {
	quiz, err := guard.Ensure(ctx, guard.Funcs[model.Quiz]{
		Lookup: func(ctx context.Context) (*model.Quiz, error) {
			return s.store.ByLessonID(ctx, lessonID)
		},
		Generate: func(ctx context.Context) (model.Quiz, error) {
			lesson, err := s.lessons.ByID(ctx, lessonID)
			if err != nil {
				return model.Quiz{}, fmt.Errorf("loading lesson: %w", err)
			}
			questions, err := s.gen.Quiz(ctx, *lesson)
			if err != nil {
				return model.Quiz{}, err
			}
			return model.Quiz{LessonID: lessonID, Questions: questions}, nil
		},
		Persist: func(ctx context.Context, q model.Quiz) (*model.Quiz, error) {
			return s.store.Insert(ctx, q)
		},
	})
	if err != nil {
		if errors.Is(err, guard.ErrGenerationFailed) {
			s.log.Warnw("quiz generation failed, serving placeholder", "lesson", lessonID, "error", err)
			return placeholderQuiz(lessonID), nil
		}
		return model.Quiz{}, err
	}
	return *quiz, nil
}

func placeholderQuiz(lessonID uuid.UUID) model.Quiz {
	return model.Quiz{
		ID:       uuid.Nil,
		LessonID: lessonID,
		Questions: []model.Question{{
			Question:     "Quiz generation is briefly unavailable. Ready to try again in a moment?",
			Options:      []string{"Yes", "Absolutely", "Of course", "Definitely"},
			CorrectIndex: 0,
			Explanation:  "Any answer works. Refresh shortly for the real quiz.",
		}},
	}
}

// QuestionResult grades one answer.
type QuestionResult struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
}

// SubmitResult is the graded submission.
type SubmitResult struct {
	Score      int              `json:"score"`
	Correct    int              `json:"correct"`
	Total      int              `json:"total"`
	XPEarned   int              `json:"xp_earned"`
	Results    []QuestionResult `json:"results"`
	StreakDays int              `json:"streak_days"`
	Stats      model.UserStats  `json:"stats"`
}

// Submit grades answers against the stored quiz and records the
// attempt. Missing answers count as wrong.
func (s *Service) Submit(ctx context.Context, userID string, quizID uuid.UUID, answers []int) (SubmitResult, error) {
	quiz, err := s.store.ByID(ctx, quizID)
	if err != nil {
		return SubmitResult{}, err
	}

	result := grade(quiz.Questions, answers)

	if err := s.attempts.InsertQuizAttempt(ctx, userID, quizID, result.Score, answers); err != nil {
		return SubmitResult{}, err
	}

	streak, err := s.recorder.RecordActivity(ctx, userID)
	if err != nil {
		return SubmitResult{}, err
	}
	result.StreakDays = streak

	result.XPEarned = result.Correct * stats.XPPerCorrect
	updated, err := s.recorder.RecordCompletion(ctx, userID, stats.KindQuiz, result.XPEarned)
	if err != nil {
		return SubmitResult{}, err
	}
	result.Stats = updated

	return result, nil
}

func grade(questions []model.Question, answers []int) SubmitResult {
	result := SubmitResult{
		Total:   len(questions),
		Results: make([]QuestionResult, len(questions)),
	}
	for i, q := range questions {
		correct := i < len(answers) && answers[i] == q.CorrectIndex
		if correct {
			result.Correct++
		}
		result.Results[i] = QuestionResult{
			Correct:      correct,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		}
	}
	if result.Total > 0 {
		result.Score = result.Correct * 100 / result.Total
	}
	return result
}
