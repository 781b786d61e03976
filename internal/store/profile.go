package store

import (
	"context"
	"fmt"

	"github.com/adilet/learnloop/ent"
	"github.com/adilet/learnloop/ent/userprofile"
	"github.com/adilet/learnloop/internal/model"
)

// ProfileRepo manages learner profiles.
type ProfileRepo struct {
	client *ent.Client
}

// Get returns a learner's profile, or nil when none exists yet.
func (r *ProfileRepo) Get(ctx context.Context, userID string) (*model.UserProfile, error) {
	row, err := r.client.UserProfile.Query().
		Where(userprofile.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user profile: %w", err)
	}
	return entProfileToModel(row), nil
}

// Create inserts a fresh profile, returning ErrConflict if a concurrent
// request created one first.
func (r *ProfileRepo) Create(ctx context.Context, p model.UserProfile) (*model.UserProfile, error) {
	row, err := r.client.UserProfile.Create().
		SetUserID(p.UserID).
		SetFullName(p.FullName).
		SetAvatarURL(p.AvatarURL).
		SetTargetGoal(p.TargetGoal).
		SetSkillLevel(p.SkillLevel).
		Save(ctx)
	if err != nil {
		return nil, mapWriteError("create user profile", err)
	}
	return entProfileToModel(row), nil
}

// Patch applies the non-nil fields of update, returning the new profile
// or ErrNotFound.
func (r *ProfileRepo) Patch(ctx context.Context, userID string, update model.ProfileUpdate) (*model.UserProfile, error) {
	q := r.client.UserProfile.Update().
		Where(userprofile.UserIDEQ(userID))

	if update.FullName != nil {
		q.SetFullName(*update.FullName)
	}
	if update.AvatarURL != nil {
		q.SetAvatarURL(*update.AvatarURL)
	}
	if update.TargetGoal != nil {
		q.SetTargetGoal(*update.TargetGoal)
	}
	if update.SkillLevel != nil {
		q.SetSkillLevel(*update.SkillLevel)
	}

	n, err := q.Save(ctx)
	if err != nil {
		return nil, mapWriteError("patch user profile", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("patch user profile: %w", ErrNotFound)
	}
	return r.Get(ctx, userID)
}

func entProfileToModel(row *ent.UserProfile) *model.UserProfile {
	return &model.UserProfile{
		UserID:     row.UserID,
		FullName:   row.FullName,
		AvatarURL:  row.AvatarURL,
		TargetGoal: row.TargetGoal,
		SkillLevel: row.SkillLevel,
		UpdatedAt:  row.UpdatedAt,
	}
}
