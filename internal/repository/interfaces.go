package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/skillpassport/backend/internal/domain"
)

// ErrDuplicateEdge reports a violation of the live-pair unique index,
// raised when two connection requests race past the service pre-check.
var ErrDuplicateEdge = errors.New("duplicate live connection edge")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error)
}

type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Credential, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]domain.Credential, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountByOwner(ctx context.Context, userID uuid.UUID) (total int, verified int, err error)
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *domain.Connection) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error)
	// GetLiveBetween returns any pending or accepted edge between the two
	// users in either direction. Rejected rows are ignored.
	GetLiveBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Connection, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// DeleteBetween removes every edge between the two users in either
	// direction, regardless of status.
	DeleteBetween(ctx context.Context, userA, userB uuid.UUID) error
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error)
	ListRequestsReceived(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error)
	ListRequestsSent(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error)
	ListDiscoverable(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	CountAccepted(ctx context.Context, userID uuid.UUID) (int, error)
}

// DraftStore holds in-progress credential wizard drafts. Drafts expire on
// their own; a successful submit deletes them explicitly.
type DraftStore interface {
	Save(ctx context.Context, draft *domain.CredentialDraft) error
	Get(ctx context.Context, userID, draftID uuid.UUID) (*domain.CredentialDraft, error)
	Delete(ctx context.Context, userID, draftID uuid.UUID) error
}

// PrefStore is the server-side stand-in for the client's durable local
// key-value storage (theme identifier, first-visit flag).
type PrefStore interface {
	Get(ctx context.Context, clientID string) (*domain.ClientPrefs, error)
	Set(ctx context.Context, clientID string, prefs *domain.ClientPrefs) error
}
