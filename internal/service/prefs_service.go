package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/repository"
	"github.com/skillpassport/backend/internal/theme"
)

// PrefsService owns the client-scoped preference flags (selected theme,
// first-visit) and mirrors a theme choice onto the Profile row when one
// exists. There is exactly one writer for the current theme.
type PrefsService struct {
	prefs       repository.PrefStore
	profileRepo repository.ProfileRepository
}

func NewPrefsService(prefs repository.PrefStore, profileRepo repository.ProfileRepository) *PrefsService {
	return &PrefsService{
		prefs:       prefs,
		profileRepo: profileRepo,
	}
}

// Get returns the stored preferences. A missing record or an unrecognized
// stored theme falls back to the default identifier rather than failing.
func (s *PrefsService) Get(ctx context.Context, clientID string) (*domain.ClientPrefs, error) {
	prefs, err := s.prefs.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		return &domain.ClientPrefs{Theme: theme.Default}, nil
	}
	prefs.Theme = theme.Resolve(prefs.Theme).ID
	return prefs, nil
}

// Set stores the preferences and, when the client is an authenticated user
// with an existing profile, persists the theme choice there too. No
// profile is created here; bootstrap belongs to the profile fetch.
func (s *PrefsService) Set(ctx context.Context, clientID string, userID *uuid.UUID, prefs *domain.ClientPrefs) error {
	if err := s.prefs.Set(ctx, clientID, prefs); err != nil {
		return fmt.Errorf("storing prefs: %w", err)
	}

	if userID == nil {
		return nil
	}

	profile, err := s.profileRepo.GetByID(ctx, *userID)
	if err != nil || profile == nil {
		return err
	}
	if profile.Theme == prefs.Theme {
		return nil
	}

	_, err = s.profileRepo.Update(ctx, *userID, domain.ProfileUpdate{Theme: &prefs.Theme})
	return err
}
