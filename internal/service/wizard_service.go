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
	"github.com/skillpassport/backend/pkg/validator"
)

var ErrDraftNotFound = errors.New("wizard draft not found")

// WizardService drives the six-step credential flow. Draft state lives in
// the draft store until a successful submit, so a failed submission keeps
// everything the user entered.
type WizardService struct {
	drafts   repository.DraftStore
	credRepo repository.CredentialRepository
	store    storage.Store
}

func NewWizardService(drafts repository.DraftStore, credRepo repository.CredentialRepository, store storage.Store) *WizardService {
	return &WizardService{
		drafts:   drafts,
		credRepo: credRepo,
		store:    store,
	}
}

type StepInput struct {
	Type      string `json:"type,omitempty"`
	Name      string `json:"name,omitempty"`
	Issuer    string `json:"issuer,omitempty"`
	IssueDate string `json:"issue_date,omitempty"`
	Evidence  string `json:"evidence,omitempty"`
}

func (s *WizardService) Start(ctx context.Context, userID uuid.UUID) (*domain.CredentialDraft, error) {
	draft := &domain.CredentialDraft{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      domain.WizardStepType,
		CreatedAt: time.Now(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}
	return draft, nil
}

func (s *WizardService) Get(ctx context.Context, userID, draftID uuid.UUID) (*domain.CredentialDraft, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// SubmitStep records the current step's fields and advances. Forward
// navigation is blocked while the step's required fields are empty; the
// review, evidence and upload steps have no blocking validation.
func (s *WizardService) SubmitStep(ctx context.Context, userID, draftID uuid.UUID, input StepInput) (*domain.CredentialDraft, validator.ValidationErrors, error) {
	draft, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, nil, err
	}

	errs := make(validator.ValidationErrors)

	switch draft.Step {
	case domain.WizardStepType:
		if input.Type == "" {
			errs.Add("type", "Select a credential type to continue")
		} else if !domain.IsCredentialType(input.Type) {
			errs.Add("type", "Unknown credential type")
		} else {
			draft.Type = input.Type
		}

	case domain.WizardStepDetails:
		if input.Name == "" {
			errs.Add("name", "Credential name is required")
		}
		if input.Issuer == "" {
			errs.Add("issuer", "Issuer is required")
		}
		if !errs.HasErrors() {
			draft.Name = input.Name
			draft.Issuer = input.Issuer
		}

	case domain.WizardStepDate:
		if input.IssueDate == "" {
			errs.Add("issue_date", "Issue date is required")
		} else if _, err := time.Parse("2006-01-02", input.IssueDate); err != nil {
			errs.Add("issue_date", "Issue date must be YYYY-MM-DD")
		} else {
			draft.IssueDate = input.IssueDate
		}

	case domain.WizardStepReview:
		// Read-only recap of steps 1-3.

	case domain.WizardStepEvidence:
		draft.Evidence = input.Evidence

	case domain.WizardStepUpload:
		// Last step; the file arrives via StageFile and the flow ends
		// with Submit.
		return draft, nil, nil
	}

	if errs.HasErrors() {
		return draft, errs, nil
	}

	draft.Step++
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, nil, fmt.Errorf("saving draft: %w", err)
	}
	return draft, nil, nil
}

// Back returns to the previous step. Always allowed; entered data is kept.
func (s *WizardService) Back(ctx context.Context, userID, draftID uuid.UUID) (*domain.CredentialDraft, error) {
	draft, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	if draft.Step > domain.WizardStepType {
		draft.Step--
		if err := s.drafts.Save(ctx, draft); err != nil {
			return nil, fmt.Errorf("saving draft: %w", err)
		}
	}
	return draft, nil
}

// StageFile stores the step-6 PDF and remembers its key on the draft. The
// stored file becomes the credential's evidence at submit time. If the
// user re-uploads, the key is overwritten in place.
func (s *WizardService) StageFile(ctx context.Context, userID, draftID uuid.UUID, data []byte) (*domain.CredentialDraft, error) {
	draft, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/draft-%s.pdf", userID, draft.ID)
	if err := s.store.Save(ctx, storage.BucketCertificates, key, data); err != nil {
		return nil, fmt.Errorf("storing evidence: %w", err)
	}

	draft.FileKey = key
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("saving draft: %w", err)
	}
	return draft, nil
}

// Submit turns the draft into a credential row. A staged file's URL wins
// over the free-text evidence from step 5. On failure the draft survives
// untouched so the user can retry; a file stored by a failed submit is
// left behind (no compensating delete).
func (s *WizardService) Submit(ctx context.Context, userID, draftID uuid.UUID) (*domain.Credential, validator.ValidationErrors, error) {
	draft, err := s.Get(ctx, userID, draftID)
	if err != nil {
		return nil, nil, err
	}

	if errs := validator.ValidateCredential(draft.Type, draft.Name, draft.Issuer, draft.IssueDate); errs.HasErrors() {
		return nil, errs, nil
	}

	evidence := draft.Evidence
	if draft.FileKey != "" {
		evidence = s.store.PublicURL(storage.BucketCertificates, draft.FileKey)
	}

	issueDate, err := time.Parse("2006-01-02", draft.IssueDate)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing issue date: %w", err)
	}

	cred := &domain.Credential{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      draft.Type,
		Name:      draft.Name,
		Issuer:    draft.Issuer,
		IssueDate: issueDate,
		CreatedAt: time.Now(),
	}
	if evidence != "" {
		cred.EvidenceURL = &evidence
	}

	if err := s.credRepo.Create(ctx, cred); err != nil {
		return nil, nil, fmt.Errorf("creating credential: %w", err)
	}

	if err := s.drafts.Delete(ctx, userID, draftID); err != nil {
		// The credential exists; a stale draft only costs its TTL.
		return cred, nil, nil
	}

	return cred, nil, nil
}
