// Package lessons serves the daily lesson: one shared lesson per
// (topic, level) per day, generated on first demand. Concurrent first
// requests race benignly; the first stored row wins and everyone gets
// the same lesson.
package lessons

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adilet/learnloop/internal/guard"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/schedule"
	"github.com/adilet/learnloop/internal/stats"
)

// Store is the lesson persistence the service needs.
type Store interface {
	FirstForScope(ctx context.Context, topic string, level model.Level, since time.Time) (*model.Lesson, error)
	Insert(ctx context.Context, l model.Lesson) (*model.Lesson, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error)
}

// ProgressStore answers which lessons a learner has completed.
type ProgressStore interface {
	CompletedLessonIDs(ctx context.Context, userID string) (map[uuid.UUID]bool, error)
}

// StatsReader supplies the lesson count that picks the level.
type StatsReader interface {
	Snapshot(ctx context.Context, userID string) (model.UserStats, error)
}

// Generator produces a new lesson.
type Generator interface {
	Lesson(ctx context.Context, topic string, level model.Level, previousTitles []string) (model.Lesson, error)
}

// AttemptStore records lesson completions.
type AttemptStore interface {
	InsertLessonAttempt(ctx context.Context, userID string, lessonID uuid.UUID, score int) error
}

// ProgressRecorder applies streak and counter updates.
type ProgressRecorder interface {
	RecordActivity(ctx context.Context, userID string) (int, error)
	RecordCompletion(ctx context.Context, userID string, kind stats.Kind, xp int) (model.UserStats, error)
}

// Service resolves the daily lesson.
type Service struct {
	store    Store
	progress ProgressStore
	stats    StatsReader
	attempts AttemptStore
	recorder ProgressRecorder
	gen      Generator
	sched    *schedule.Scheduler
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewService wires a daily-lesson service. now may be nil for time.Now.
func NewService(st Store, progress ProgressStore, stats StatsReader, attempts AttemptStore, recorder ProgressRecorder, gen Generator, sched *schedule.Scheduler, log *zap.SugaredLogger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, progress: progress, stats: stats, attempts: attempts, recorder: recorder, gen: gen, sched: sched, log: log, now: now}
}

// Daily returns today's lesson for the learner. topic overrides the
// daily rotation when non-empty; level overrides the progress-derived
// difficulty when non-empty. When generation fails and no lesson
// exists yet, a static placeholder is returned so the learner always
// sees something.
func (s *Service) Daily(ctx context.Context, userID, topic string, level model.Level) (model.LessonView, error) {
	now := s.now()
	if topic == "" {
		topic = s.sched.TopicForDate(now)
	}

	if level == "" {
		snapshot, err := s.stats.Snapshot(ctx, userID)
		if err != nil {
			return model.LessonView{}, err
		}
		level = s.sched.LevelForCount(snapshot.LessonsCompleted)
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	lesson, err := guard.Ensure(ctx, guard.Funcs[model.Lesson]{
		Lookup: func(ctx context.Context) (*model.Lesson, error) {
			return s.store.FirstForScope(ctx, topic, level, dayStart)
		},
		Generate: func(ctx context.Context) (model.Lesson, error) {
			return s.gen.Lesson(ctx, topic, level, nil)
		},
		Persist: func(ctx context.Context, l model.Lesson) (*model.Lesson, error) {
			return s.store.Insert(ctx, l)
		},
	})
	if err != nil {
		if !errors.Is(err, guard.ErrGenerationFailed) {
			return model.LessonView{}, err
		}
		s.log.Warnw("daily lesson generation failed, serving placeholder",
			"topic", topic, "level", level, "error", err)
		return placeholderLesson(topic, level), nil
	}

	completed, err := s.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		return model.LessonView{}, err
	}

	return model.LessonView{
		Lesson:      *lesson,
		Track:       "ai_fundamentals",
		IsCompleted: completed[lesson.ID],
	}, nil
}

// ByID returns one lesson with the learner's completion flag.
func (s *Service) ByID(ctx context.Context, userID string, id uuid.UUID) (model.LessonView, error) {
	lesson, err := s.store.ByID(ctx, id)
	if err != nil {
		return model.LessonView{}, err
	}

	completed, err := s.progress.CompletedLessonIDs(ctx, userID)
	if err != nil {
		return model.LessonView{}, err
	}

	return model.LessonView{
		Lesson:      *lesson,
		Track:       "ai_fundamentals",
		IsCompleted: completed[lesson.ID],
	}, nil
}

// CompletionResult is what a finished lesson reports back.
type CompletionResult struct {
	XPEarned   int             `json:"xp_earned"`
	StreakDays int             `json:"streak_days"`
	Stats      model.UserStats `json:"stats"`
}

// Complete records a lesson completion: the attempt row, the streak,
// and the XP award.
func (s *Service) Complete(ctx context.Context, userID string, lessonID uuid.UUID, score int) (CompletionResult, error) {
	if err := s.attempts.InsertLessonAttempt(ctx, userID, lessonID, score); err != nil {
		return CompletionResult{}, err
	}

	streak, err := s.recorder.RecordActivity(ctx, userID)
	if err != nil {
		return CompletionResult{}, err
	}

	updated, err := s.recorder.RecordCompletion(ctx, userID, stats.KindLesson, stats.XPLesson)
	if err != nil {
		return CompletionResult{}, err
	}

	return CompletionResult{
		XPEarned:   stats.XPLesson,
		StreakDays: streak,
		Stats:      updated,
	}, nil
}

// placeholderLesson is served when generation is down and nothing is
// stored yet. It is never persisted, so tomorrow's request generates a
// real lesson.
func placeholderLesson(topic string, level model.Level) model.LessonView {
	return model.LessonView{
		Lesson: model.Lesson{
			ID:          uuid.Nil,
			Topic:       topic,
			Level:       level,
			Title:       "Intro to " + topic,
			Explanation: "AI generation is briefly unavailable. Try again in a moment!",
			Analogy:     "Like a waiter taking a short break.",
			KeyTakeaway: "Persistence is key.",
		},
		Track: "ai_fundamentals",
	}
}
