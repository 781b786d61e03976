// Package stats keeps the per-learner counters: XP, streak, completion
// counts, and the daily minutes gauge. All date arithmetic is on civil
// dates, so two activities late at night and early the next morning are
// different days regardless of the gap between them.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/store"
)

// Kind names a completed activity for counter bookkeeping.
type Kind string

const (
	KindLesson   Kind = "lesson"
	KindQuiz     Kind = "quiz"
	KindPractice Kind = "practice"
	KindExam     Kind = "exam"
	KindNews     Kind = "news"
)

// XP awards per activity.
const (
	XPLesson       = 10
	XPPerCorrect   = 5
	XPNewsQuiz     = 5
	MinutesPerItem = 5
)

// Store is the user_stats persistence the service needs.
type Store interface {
	Get(ctx context.Context, userID string) (*model.UserStats, error)
	Create(ctx context.Context, s model.UserStats) error
	Update(ctx context.Context, s model.UserStats) error
}

// Service applies streak and counter rules.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService wires a stats service. now may be nil for time.Now.
func NewService(st Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, now: now}
}

// Snapshot returns the learner's stats, zero-valued if none exist yet.
func (s *Service) Snapshot(ctx context.Context, userID string) (model.UserStats, error) {
	stats, err := s.store.Get(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}
	if stats == nil {
		return model.UserStats{UserID: userID}, nil
	}
	return *stats, nil
}

// RecordActivity advances the streak for an activity happening now.
// Same day is a no-op, consecutive days extend, a gap resets to 1. The
// row is only written when something changed.
func (s *Service) RecordActivity(ctx context.Context, userID string) (int, error) {
	now := s.now()
	today := model.CivilDate(now)
	yesterday := model.CivilDate(now.AddDate(0, 0, -1))

	stats, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return 0, err
	}

	switch stats.LastActiveDate {
	case today:
		return stats.StreakDays, nil
	case yesterday:
		stats.StreakDays++
	default:
		stats.StreakDays = 1
	}
	stats.LastActiveDate = today

	if err := s.store.Update(ctx, *stats); err != nil {
		return 0, fmt.Errorf("updating streak: %w", err)
	}
	return stats.StreakDays, nil
}

// RecordCompletion adds XP and bumps the counter for one completed
// activity. Counters only ever increase; XP is awarded on every call,
// repeats included.
func (s *Service) RecordCompletion(ctx context.Context, userID string, kind Kind, xp int) (model.UserStats, error) {
	today := model.CivilDate(s.now())

	stats, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return model.UserStats{}, err
	}

	if stats.LastActivityDate != today {
		stats.DailyMinutes = 0
	}
	stats.DailyMinutes += MinutesPerItem
	stats.LastActivityDate = today
	stats.XPTotal += xp

	switch kind {
	case KindLesson:
		stats.LessonsCompleted++
	case KindQuiz, KindNews:
		stats.QuizzesCompleted++
	case KindPractice:
		stats.PracticeCompleted++
	case KindExam:
		stats.ExamsAttempted++
	}

	if err := s.store.Update(ctx, *stats); err != nil {
		return model.UserStats{}, fmt.Errorf("updating stats: %w", err)
	}
	return *stats, nil
}

// RecordCertificate bumps the certificates counter.
func (s *Service) RecordCertificate(ctx context.Context, userID string) error {
	stats, err := s.loadOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	stats.CertificatesEarned++
	return s.store.Update(ctx, *stats)
}

// loadOrCreate returns the learner's row, creating an empty one first
// if needed. A create conflict means a concurrent request won; the row
// is re-read and used as-is.
func (s *Service) loadOrCreate(ctx context.Context, userID string) (*model.UserStats, error) {
	stats, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		return stats, nil
	}

	fresh := model.UserStats{UserID: userID}
	err = s.store.Create(ctx, fresh)
	if err == nil {
		return &fresh, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		return nil, fmt.Errorf("creating stats row: %w", err)
	}

	stats, err = s.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, fmt.Errorf("stats row missing after create conflict")
	}
	return stats, nil
}
