// Package news serves the daily AI news digest: three items per civil
// date, shared by every learner, generated on first demand. The
// (date, title) uniqueness constraint keeps concurrent generations from
// doubling the digest.
package news

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adilet/learnloop/internal/guard"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/stats"
)

// Store is the news persistence the service needs.
type Store interface {
	ByDate(ctx context.Context, date string) ([]model.NewsItem, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.NewsItem, error)
	Insert(ctx context.Context, n model.NewsItem) (*model.NewsItem, error)
}

// AttemptStore records news quiz submissions.
type AttemptStore interface {
	InsertNewsQuizAttempt(ctx context.Context, userID string, newsID uuid.UUID, score int) error
}

// ProgressRecorder applies streak and counter updates.
type ProgressRecorder interface {
	RecordActivity(ctx context.Context, userID string) (int, error)
	RecordCompletion(ctx context.Context, userID string, kind stats.Kind, xp int) (model.UserStats, error)
}

// Generator produces a digest for a date.
type Generator interface {
	News(ctx context.Context, date string) ([]model.NewsItem, error)
}

// Service resolves the daily digest.
type Service struct {
	store    Store
	attempts AttemptStore
	recorder ProgressRecorder
	gen      Generator
	now      func() time.Time
}

// NewService wires a news service. now may be nil for time.Now.
func NewService(st Store, attempts AttemptStore, recorder ProgressRecorder, gen Generator, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, attempts: attempts, recorder: recorder, gen: gen, now: now}
}

// TodayDigest returns today's digest, generating it on first demand.
func (s *Service) TodayDigest(ctx context.Context) ([]model.NewsItem, error) {
	date := model.CivilDate(s.now())

	digest, err := guard.Ensure(ctx, guard.Funcs[[]model.NewsItem]{
		Lookup: func(ctx context.Context) (*[]model.NewsItem, error) {
			items, err := s.store.ByDate(ctx, date)
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return nil, nil
			}
			return &items, nil
		},
		Generate: func(ctx context.Context) ([]model.NewsItem, error) {
			return s.gen.News(ctx, date)
		},
		Persist: func(ctx context.Context, items []model.NewsItem) (*[]model.NewsItem, error) {
			stored := make([]model.NewsItem, 0, len(items))
			for _, item := range items {
				row, err := s.store.Insert(ctx, item)
				if err != nil {
					// A duplicate title means a rival digest landed;
					// surface the conflict so the guard re-reads.
					return nil, err
				}
				stored = append(stored, *row)
			}
			return &stored, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return *digest, nil
}

// QuizResult is a graded news quiz submission.
type QuizResult struct {
	Score      int             `json:"score"`
	Correct    int             `json:"correct"`
	Total      int             `json:"total"`
	XPEarned   int             `json:"xp_earned"`
	StreakDays int             `json:"streak_days"`
	Stats      model.UserStats `json:"stats"`
}

// SubmitQuiz grades the quiz attached to one digest item. Every
// submission awards the flat news XP regardless of score.
func (s *Service) SubmitQuiz(ctx context.Context, userID string, newsID uuid.UUID, answers []int) (QuizResult, error) {
	item, err := s.store.ByID(ctx, newsID)
	if err != nil {
		return QuizResult{}, err
	}

	var result QuizResult
	result.Total = len(item.Quiz)
	for i, q := range item.Quiz {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			result.Correct++
		}
	}
	if result.Total > 0 {
		result.Score = result.Correct * 100 / result.Total
	}

	if err := s.attempts.InsertNewsQuizAttempt(ctx, userID, newsID, result.Score); err != nil {
		return QuizResult{}, err
	}

	streak, err := s.recorder.RecordActivity(ctx, userID)
	if err != nil {
		return QuizResult{}, err
	}
	result.StreakDays = streak

	result.XPEarned = stats.XPNewsQuiz
	updated, err := s.recorder.RecordCompletion(ctx, userID, stats.KindNews, result.XPEarned)
	if err != nil {
		return QuizResult{}, err
	}
	result.Stats = updated

	return result, nil
}
