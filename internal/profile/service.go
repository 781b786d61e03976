// Package profile manages learner profiles with lazy creation: a
// profile exists from the moment anything reads or writes it.
package profile

import (
	"context"
	"errors"

	"github.com/adilet/learnloop/internal/model"
	"github.com/adilet/learnloop/internal/store"
)

// Store is the profile persistence the service needs.
type Store interface {
	Get(ctx context.Context, userID string) (*model.UserProfile, error)
	Create(ctx context.Context, p model.UserProfile) (*model.UserProfile, error)
	Patch(ctx context.Context, userID string, upd model.ProfileUpdate) (*model.UserProfile, error)
}

// BadgeStore lists a learner's earned badges.
type BadgeStore interface {
	ByUser(ctx context.Context, userID string) ([]model.Badge, error)
}

// Service resolves and updates profiles.
type Service struct {
	store  Store
	badges BadgeStore
}

// NewService wires a profile service.
func NewService(st Store, badges BadgeStore) *Service {
	return &Service{store: st, badges: badges}
}

// Get returns the learner's profile, creating an empty one on first
// access. A create conflict means a concurrent request created it; the
// row is re-read.
func (s *Service) Get(ctx context.Context, userID string) (model.UserProfile, error) {
	p, err := s.store.Get(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	if p != nil {
		return *p, nil
	}

	created, err := s.store.Create(ctx, model.UserProfile{UserID: userID})
	if err == nil {
		return *created, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		return model.UserProfile{}, err
	}

	p, err = s.store.Get(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	if p == nil {
		return model.UserProfile{}, errors.New("profile missing after create conflict")
	}
	return *p, nil
}

// Update patches the profile, creating it first if needed. Nil fields
// in upd are left unchanged.
func (s *Service) Update(ctx context.Context, userID string, upd model.ProfileUpdate) (model.UserProfile, error) {
	updated, err := s.store.Patch(ctx, userID, upd)
	if err == nil {
		return *updated, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.UserProfile{}, err
	}

	if _, err := s.Get(ctx, userID); err != nil {
		return model.UserProfile{}, err
	}
	updated, err = s.store.Patch(ctx, userID, upd)
	if err != nil {
		return model.UserProfile{}, err
	}
	return *updated, nil
}

// Badges returns the learner's earned badges, never nil.
func (s *Service) Badges(ctx context.Context, userID string) ([]model.Badge, error) {
	badges, err := s.badges.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if badges == nil {
		badges = []model.Badge{}
	}
	return badges, nil
}
