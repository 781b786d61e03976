package store

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/userbadge"
	"github.com/adilet/learnloop/internal/model"
)

// BadgeRepo manages earned badges.
type BadgeRepo struct {
	client *ent.Client
}

// ByUser returns a learner's badges, most recent first.
func (r *BadgeRepo) ByUser(ctx context.Context, userID string) ([]model.Badge, error) {
	rows, err := r.client.UserBadge.Query().
		Where(userbadge.UserIDEQ(userID)).
		Order(ent.Desc(userbadge.FieldEarnedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badges by user: %w", err)
	}

	out := make([]model.Badge, len(rows))
	for i, row := range rows {
		out[i] = *entBadgeToModel(row)
	}
	return out, nil
}

// Insert awards a badge. ErrConflict when the learner already holds
// one with the same key.
func (r *BadgeRepo) Insert(ctx context.Context, b model.Badge) (*model.Badge, error) {
	row, err := r.client.UserBadge.Create().
		SetUserID(b.UserID).
		SetBadgeKey(b.Key).
		SetBadgeTitle(b.Title).
		SetBadgeDescription(b.Description).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("insert badge", err)
	}
	return entBadgeToModel(row), nil
}

func entBadgeToModel(row *ent.UserBadge) *model.Badge {
	return &model.Badge{
		ID:          row.ID,
		UserID:      row.UserID,
		Key:         row.BadgeKey,
		Title:       row.BadgeTitle,
		Description: row.BadgeDescription,
		EarnedAt:    row.EarnedAt,
	}
}
