package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public face of a user. Exactly one row per user,
// created lazily on first access.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Email       string    `json:"email"`
	AvatarURL   *string   `json:"avatar_url"`
	LinkedInURL *string   `json:"linkedin_url"`
	GitHubURL   *string   `json:"github_url"`
	Theme       string    `json:"theme"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProfileUpdate carries a partial merge; nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string `json:"name"`
	AvatarURL   *string `json:"avatar_url"`
	LinkedInURL *string `json:"linkedin_url"`
	GitHubURL   *string `json:"github_url"`
	Theme       *string `json:"theme"`
}
