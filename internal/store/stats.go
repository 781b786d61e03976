package store

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/userstats"
	"github.com/adilet/learnloop/internal/model"
)

// StatsRepo manages the per-learner counter singleton. The accumulator
// service is its only writer.
type StatsRepo struct {
	client *ent.Client
}

// Get returns the stats row for a learner, or nil when none exists yet.
func (r *StatsRepo) Get(ctx context.Context, userID string) (*model.UserStats, error) {
	row, err := r.client.UserStats.Query().
		Where(userstats.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user stats: %w", err)
	}
	return entStatsToModel(row), nil
}

// Create inserts the row for a learner. Returns ErrConflict when a
// concurrent request created it first.
func (r *StatsRepo) Create(ctx context.Context, s model.UserStats) error {
	_, err := r.client.UserStats.Create().
		SetUserID(s.UserID).
		SetXpTotal(s.XPTotal).
		SetStreakDays(s.StreakDays).
		SetLastActiveDate(s.LastActiveDate).
		SetLessonsCompleted(s.LessonsCompleted).
		SetQuizzesCompleted(s.QuizzesCompleted).
		SetPracticeCompleted(s.PracticeCompleted).
		SetExamsAttempted(s.ExamsAttempted).
		SetCertificatesEarned(s.CertificatesEarned).
		SetDailyMinutes(s.DailyMinutes).
		SetLastActivityDate(s.LastActivityDate).
		Save(ctx)
	if err != nil {
		return mapWriteError("create user stats", err)
	}
	return nil
}

// Update overwrites a learner's counters. Returns ErrNotFound when the
// row does not exist, so the caller can switch to the create path.
func (r *StatsRepo) Update(ctx context.Context, s model.UserStats) error {
	n, err := r.client.UserStats.Update().
		Where(userstats.UserIDEQ(s.UserID)).
		SetXpTotal(s.XPTotal).
		SetStreakDays(s.StreakDays).
		SetLastActiveDate(s.LastActiveDate).
		SetLessonsCompleted(s.LessonsCompleted).
		SetQuizzesCompleted(s.QuizzesCompleted).
		SetPracticeCompleted(s.PracticeCompleted).
		SetExamsAttempted(s.ExamsAttempted).
		SetCertificatesEarned(s.CertificatesEarned).
		SetDailyMinutes(s.DailyMinutes).
		SetLastActivityDate(s.LastActivityDate).
		Save(ctx)
	if err != nil {
		return mapWriteError("update user stats", err)
	}
	if n == 0 {
		return fmt.Errorf("update user stats: %w", ErrNotFound)
	}
	return nil
}

func entStatsToModel(row *ent.UserStats) *model.UserStats {
	return &model.UserStats{
		UserID:             row.UserID,
		XPTotal:            row.XpTotal,
		StreakDays:         row.StreakDays,
		LastActiveDate:     row.LastActiveDate,
		LessonsCompleted:   row.LessonsCompleted,
		QuizzesCompleted:   row.QuizzesCompleted,
		PracticeCompleted:  row.PracticeCompleted,
		ExamsAttempted:     row.ExamsAttempted,
		CertificatesEarned: row.CertificatesEarned,
		DailyMinutes:       row.DailyMinutes,
		LastActivityDate:   row.LastActivityDate,
	}
}
