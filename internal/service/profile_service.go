package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/repository"
	"github.com/skillpassport/backend/internal/storage"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	store       storage.Store
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository, store storage.Store) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		store:       store,
	}
}

// GetOrCreate returns the user's profile, creating the default one on
// first access. A missing row is the only recoverable lookup outcome;
// any other error fails the fetch.
func (s *ProfileService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Default name is the local part of the email.
	name, _, _ := strings.Cut(user.Email, "@")
	profile = &domain.Profile{
		ID:        user.ID,
		Name:      &name,
		Email:     user.Email,
		Theme:     "theme1",
		CreatedAt: time.Now(),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating default profile: %w", err)
	}

	return profile, nil
}

// Get returns another user's profile, without the lazy-create bootstrap.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	// Bootstrap first so a brand-new user can update straight away.
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.Update(ctx, userID, update)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UploadAvatar stores the image at the owner's deterministic path,
// overwriting any previous avatar, then patches the profile's reference.
// The key carries the upload's extension, so a format switch leaves the
// old object behind; it is removed once the new one is in place.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, data []byte) (*domain.Profile, error) {
	current, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}

	key := fmt.Sprintf("%s/avatar%s", userID, ext)
	if err := s.store.Save(ctx, storage.BucketAvatars, key, data); err != nil {
		return nil, fmt.Errorf("storing avatar: %w", err)
	}

	if current.AvatarURL != nil {
		if oldKey := avatarKeyFromURL(*current.AvatarURL); oldKey != "" && oldKey != key {
			if err := s.store.Delete(ctx, storage.BucketAvatars, oldKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("removing old avatar: %w", err)
			}
		}
	}

	url := s.store.PublicURL(storage.BucketAvatars, key)
	return s.Update(ctx, userID, domain.ProfileUpdate{AvatarURL: &url})
}

// avatarKeyFromURL recovers the storage key from a public avatar URL.
// URLs that don't point into the avatar bucket yield "".
func avatarKeyFromURL(url string) string {
	marker := "/files/" + storage.BucketAvatars + "/"
	i := strings.Index(url, marker)
	if i < 0 {
		return ""
	}
	return url[i+len(marker):]
}
