// Package exams serves the certification exam, grades submissions, and
// issues certificates on a passing score.
package exams

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adilet/learnloop/internal/guard"
	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/stats"
	"github.com/adilet/learnloop/internal/store"
)

// FinalExamTitle names the one certification exam. The title is the
// uniqueness key, so every learner takes the same exam.
const FinalExamTitle = "AI Fundamentals Certification Exam"

// PassScore is the minimum percentage for a pass.
const PassScore = 80

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 10

// Store is the exam persistence the service needs.
type Store interface {
	ByTitle(ctx context.Context, title string) (*model.Exam, error)
	ByID(ctx context.Context, id uuid.UUID) (*model.Exam, error)
	Insert(ctx context.Context, e model.Exam) (*model.Exam, error)
}

// CertificateStore persists and looks up certificates.
type CertificateStore interface {
	Insert(ctx context.Context, c model.Certificate) (*model.Certificate, error)
	ByUser(ctx context.Context, userID string) ([]model.Certificate, error)
	ByCode(ctx context.Context, code string) (*model.Certificate, error)
}

// AttemptStore records exam submissions.
type AttemptStore interface {
	InsertExamAttempt(ctx context.Context, userID string, examID uuid.UUID, score int, passed bool) error
}

// ProgressRecorder applies streak and counter updates.
type ProgressRecorder interface {
	RecordActivity(ctx context.Context, userID string) (int, error)
	RecordCompletion(ctx context.Context, userID string, kind stats.Kind, xp int) (model.UserStats, error)
	RecordCertificate(ctx context.Context, userID string) error
}

// Generator produces the exam content.
type Generator interface {
	Exam(ctx context.Context, title string) (model.Exam, error)
}

// Service resolves and grades the certification exam.
type Service struct {
	store    Store
	certs    CertificateStore
	attempts AttemptStore
	recorder ProgressRecorder
	gen      Generator
	log      *zap.SugaredLogger
}

// NewService wires an exam service.
func NewService(st Store, certs CertificateStore, attempts AttemptStore, recorder ProgressRecorder, gen Generator, log *zap.SugaredLogger) *Service {
	return &Service{store: st, certs: certs, attempts: attempts, recorder: recorder, gen: gen, log: log}
}

// Final returns the certification exam, generating it on first demand.
func (s *Service) Final(ctx context.Context) (model.Exam, error) {
	exam, err := guard.Ensure(ctx, guard.Funcs[model.Exam]{
		Lookup: func(ctx context.Context) (*model.Exam, error) {
			return s.store.ByTitle(ctx, FinalExamTitle)
		},
		Generate: func(ctx context.Context) (model.Exam, error) {
			return s.gen.Exam(ctx, FinalExamTitle)
		},
		Persist: func(ctx context.Context, e model.Exam) (*model.Exam, error) {
			return s.store.Insert(ctx, e)
		},
	})
	if err != nil {
		return model.Exam{}, err
	}
	return *exam, nil
}

// SubmitResult is the graded exam.
type SubmitResult struct {
	Score       int                `json:"score"`
	Correct     int                `json:"correct"`
	Total       int                `json:"total"`
	Passed      bool               `json:"passed"`
	Certificate *model.Certificate `json:"certificate,omitempty"`
	StreakDays  int                `json:"streak_days"`
}

// Submit grades an exam submission. A passing score issues a
// certificate; a certificate insert failure is logged but does not
// fail the submission.
func (s *Service) Submit(ctx context.Context, userID string, examID uuid.UUID, answers []int) (SubmitResult, error) {
	exam, err := s.store.ByID(ctx, examID)
	if err != nil {
		return SubmitResult{}, err
	}

	var result SubmitResult
	result.Total = len(exam.Questions)
	for i, q := range exam.Questions {
		if i < len(answers) && answers[i] == q.CorrectIndex {
			result.Correct++
		}
	}
	if result.Total > 0 {
		result.Score = result.Correct * 100 / result.Total
	}
	result.Passed = result.Score >= PassScore

	if err := s.attempts.InsertExamAttempt(ctx, userID, examID, result.Score, result.Passed); err != nil {
		return SubmitResult{}, err
	}

	streak, err := s.recorder.RecordActivity(ctx, userID)
	if err != nil {
		return SubmitResult{}, err
	}
	result.StreakDays = streak

	if _, err := s.recorder.RecordCompletion(ctx, userID, stats.KindExam, result.Correct*stats.XPPerCorrect); err != nil {
		return SubmitResult{}, err
	}

	if result.Passed {
		cert, err := s.issueCertificate(ctx, userID, examID)
		if err != nil {
			s.log.Errorw("certificate issuance failed", "user", userID, "error", err)
		} else {
			result.Certificate = cert
		}
	}

	return result, nil
}

// Certificates lists the learner's certificates, newest first.
func (s *Service) Certificates(ctx context.Context, userID string) ([]model.Certificate, error) {
	return s.certs.ByUser(ctx, userID)
}

// Verify looks up a certificate by its public code.
func (s *Service) Verify(ctx context.Context, code string) (*model.Certificate, error) {
	return s.certs.ByCode(ctx, code)
}

// issueCertificate stores a new certificate, retrying on the unlikely
// code collision.
func (s *Service) issueCertificate(ctx context.Context, userID string, examID uuid.UUID) (*model.Certificate, error) {
	for attempt := 0; attempt < 3; attempt++ {
		code, err := newCode()
		if err != nil {
			return nil, err
		}
		cert, err := s.certs.Insert(ctx, model.Certificate{
			UserID: userID,
			ExamID: examID,
			Code:   code,
		})
		if err == nil {
			if err := s.recorder.RecordCertificate(ctx, userID); err != nil {
				s.log.Warnw("certificate counter update failed", "user", userID, "error", err)
			}
			return cert, nil
		}
		if !errors.Is(err, store.ErrConflict) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("could not allocate a unique certificate code")
}

func newCode() (string, error) {
	buf := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating certificate code: %w", err)
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
