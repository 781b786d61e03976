// Package terms serves the AI term of the day: a deterministic
// day-of-year rotation over the glossary so every learner sees the
// same term on the same date.
package terms

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/adilet/learnloop/internal/model"
)

// Store is the glossary persistence the service needs.
type Store interface {
	List(ctx context.Context) ([]model.Term, error)
}

// Service picks the term of the day.
type Service struct {
	store Store
	log   *zap.SugaredLogger
	now   func() time.Time
}

// NewService wires a term service. now defaults to time.Now.
func NewService(st Store, log *zap.SugaredLogger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: st, log: log, now: now}
}

// Daily returns today's term. An empty or unreachable glossary
// degrades to a fixed fallback term rather than an error.
func (s *Service) Daily(ctx context.Context) (model.Term, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		s.log.Warnw("listing glossary failed, serving fallback term", "error", err)
		return fallbackTerm(), nil
	}
	if len(all) == 0 {
		return fallbackTerm(), nil
	}
	return all[s.now().UTC().YearDay()%len(all)], nil
}

func fallbackTerm() model.Term {
	return model.Term{
		Term:       "Machine Learning",
		Definition: "A subset of AI that enables systems to learn and improve from experience without being explicitly programmed.",
		Category:   "ML",
		Difficulty: "Beginner",
	}
}
