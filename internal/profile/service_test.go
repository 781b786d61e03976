package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/store"
)

type memProfiles struct {
	rows map[string]model.UserProfile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{rows: map[string]model.UserProfile{}}
}

func (m *memProfiles) Get(_ context.Context, userID string) (*model.UserProfile, error) {
	if p, ok := m.rows[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memProfiles) Create(_ context.Context, p model.UserProfile) (*model.UserProfile, error) {
	if _, ok := m.rows[p.UserID]; ok {
		return nil, store.ErrConflict
	}
	m.rows[p.UserID] = p
	return &p, nil
}

func (m *memProfiles) Patch(_ context.Context, userID string, upd model.ProfileUpdate) (*model.UserProfile, error) {
	p, ok := m.rows[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.AvatarURL != nil {
		p.AvatarURL = *upd.AvatarURL
	}
	if upd.TargetGoal != nil {
		p.TargetGoal = *upd.TargetGoal
	}
	if upd.SkillLevel != nil {
		p.SkillLevel = *upd.SkillLevel
	}
	m.rows[userID] = p
	return &p, nil
}

type memBadges struct {
	rows []model.Badge
}

func (m *memBadges) ByUser(_ context.Context, userID string) ([]model.Badge, error) {
	var out []model.Badge
	for _, b := range m.rows {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestGetCreatesOnFirstAccess(t *testing.T) {
	st := newMemProfiles()
	svc := NewService(st, &memBadges{})

	got, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Contains(t, st.rows, "u1")
}

func TestUpdateCreatesThenPatches(t *testing.T) {
	st := newMemProfiles()
	svc := NewService(st, &memBadges{})

	name := "Ada Lovelace"
	got, err := svc.Update(context.Background(), "u1", model.ProfileUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.FullName)
}

func TestUpdateLeavesNilFieldsAlone(t *testing.T) {
	st := newMemProfiles()
	st.rows["u1"] = model.UserProfile{UserID: "u1", FullName: "Ada", TargetGoal: "ship models"}
	svc := NewService(st, &memBadges{})

	goal := "learn prompting"
	got, err := svc.Update(context.Background(), "u1", model.ProfileUpdate{TargetGoal: &goal})
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FullName, "untouched field survives")
	assert.Equal(t, "learn prompting", got.TargetGoal)
}

func TestBadgesNeverNil(t *testing.T) {
	svc := NewService(newMemProfiles(), &memBadges{})

	got, err := svc.Badges(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBadgesListsOwnOnly(t *testing.T) {
	badges := &memBadges{rows: []model.Badge{
		{UserID: "u1", Key: "first_lesson", Title: "First Steps"},
		{UserID: "u2", Key: "first_lesson", Title: "First Steps"},
		{UserID: "u1", Key: "week_streak", Title: "On a Roll"},
	}}
	svc := NewService(newMemProfiles(), badges)

	got, err := svc.Badges(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, "u1", b.UserID)
	}
}
