package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/repository"
	"github.com/skillpassport/backend/internal/storage"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrNotCredentialOwner = errors.New("only the owner can delete a credential")
)

type CredentialService struct {
	credRepo repository.CredentialRepository
	connRepo repository.ConnectionRepository
	store    storage.Store
}

func NewCredentialService(credRepo repository.CredentialRepository, connRepo repository.ConnectionRepository, store storage.Store) *CredentialService {
	return &CredentialService{
		credRepo: credRepo,
		connRepo: connRepo,
		store:    store,
	}
}

type CreateCredentialInput struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	IssueDate   string `json:"issue_date"`
	EvidenceURL string `json:"evidence_url"`
}

// List returns the owner's credentials, newest first.
func (s *CredentialService) List(ctx context.Context, userID uuid.UUID) ([]domain.Credential, error) {
	creds, err := s.credRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		creds = []domain.Credential{}
	}
	return creds, nil
}

func (s *CredentialService) Create(ctx context.Context, userID uuid.UUID, input CreateCredentialInput) (*domain.Credential, error) {
	issueDate, err := time.Parse("2006-01-02", input.IssueDate)
	if err != nil {
		return nil, fmt.Errorf("parsing issue date: %w", err)
	}

	cred := &domain.Credential{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      input.Type,
		Name:      input.Name,
		Issuer:    input.Issuer,
		IssueDate: issueDate,
		CreatedAt: time.Now(),
	}
	if input.EvidenceURL != "" {
		cred.EvidenceURL = &input.EvidenceURL
	}

	if err := s.credRepo.Create(ctx, cred); err != nil {
		return nil, fmt.Errorf("creating credential: %w", err)
	}

	return cred, nil
}

// UploadEvidence stores a certificate PDF under a per-owner timestamped key
// and returns its public URL. The caller attaches the URL to a credential;
// if it never does, the file is orphaned (no compensation on later failure).
func (s *CredentialService) UploadEvidence(ctx context.Context, userID uuid.UUID, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%d.pdf", userID, time.Now().UnixMilli())
	if err := s.store.Save(ctx, storage.BucketCertificates, key, data); err != nil {
		return "", fmt.Errorf("storing evidence: %w", err)
	}
	return s.store.PublicURL(storage.BucketCertificates, key), nil
}

func (s *CredentialService) Delete(ctx context.Context, userID, credID uuid.UUID) error {
	cred, err := s.credRepo.GetByID(ctx, credID)
	if err != nil {
		return err
	}
	if cred == nil {
		return ErrCredentialNotFound
	}
	if cred.UserID != userID {
		return ErrNotCredentialOwner
	}

	return s.credRepo.Delete(ctx, credID)
}

type UserStats struct {
	Credentials int `json:"credentials"`
	Verified    int `json:"verified"`
	Connections int `json:"connections"`
}

// Stats backs the dashboard cards.
func (s *CredentialService) Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	total, verified, err := s.credRepo.CountByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	conns, err := s.connRepo.CountAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{Credentials: total, Verified: verified, Connections: conns}, nil
}
