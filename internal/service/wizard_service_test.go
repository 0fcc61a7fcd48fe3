package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpassport/backend/internal/domain"
)

func wizardFixture(t *testing.T) (*WizardService, *fakeDraftStore, *fakeCredentialRepo, *fakeStore, uuid.UUID) {
	t.Helper()

	drafts := newFakeDraftStore()
	creds := newFakeCredentialRepo()
	store := newFakeStore()
	return NewWizardService(drafts, creds, store), drafts, creds, store, uuid.New()
}

func completeSteps(t *testing.T, svc *WizardService, userID, draftID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	steps := []StepInput{
		{Type: "Technical Skill"},
		{Name: "Go", Issuer: "Gopher Academy"},
		{IssueDate: "2024-06-01"},
		{}, // review
	}
	for _, input := range steps {
		_, errs, err := svc.SubmitStep(ctx, userID, draftID, input)
		require.NoError(t, err)
		require.False(t, errs.HasErrors())
	}
}

func TestWizardStartsAtStepOne(t *testing.T) {
	svc, _, _, _, userID := wizardFixture(t)

	draft, err := svc.Start(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.WizardStepType, draft.Step)
}

func TestWizardBlocksForwardWithoutType(t *testing.T) {
	svc, _, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)

	got, errs, err := svc.SubmitStep(ctx, userID, draft.ID, StepInput{})
	require.NoError(t, err)
	assert.True(t, errs.HasErrors())
	assert.Equal(t, domain.WizardStepType, got.Step)

	_, errs, err = svc.SubmitStep(ctx, userID, draft.ID, StepInput{Type: "Astrology"})
	require.NoError(t, err)
	assert.Contains(t, errs, "type")
}

func TestWizardAdvancesThroughSteps(t *testing.T) {
	svc, _, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)

	completeSteps(t, svc, userID, draft.ID)

	got, err := svc.Get(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WizardStepEvidence, got.Step)
	assert.Equal(t, "Technical Skill", got.Type)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, "Gopher Academy", got.Issuer)
}

func TestWizardBackKeepsEnteredData(t *testing.T) {
	svc, _, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)

	_, errs, err := svc.SubmitStep(ctx, userID, draft.ID, StepInput{Type: "Project Work"})
	require.NoError(t, err)
	require.False(t, errs.HasErrors())

	got, err := svc.Back(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WizardStepType, got.Step)
	assert.Equal(t, "Project Work", got.Type)

	// Back at the first step is a no-op.
	got, err = svc.Back(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.WizardStepType, got.Step)
}

func TestWizardSubmitWithoutFileUsesEvidenceText(t *testing.T) {
	svc, drafts, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)
	completeSteps(t, svc, userID, draft.ID)

	_, errs, err := svc.SubmitStep(ctx, userID, draft.ID, StepInput{Evidence: "https://certs.example.com/go"})
	require.NoError(t, err)
	require.False(t, errs.HasErrors())

	cred, errs, err := svc.Submit(ctx, userID, draft.ID)
	require.NoError(t, err)
	require.False(t, errs.HasErrors())
	require.NotNil(t, cred.EvidenceURL)
	assert.Equal(t, "https://certs.example.com/go", *cred.EvidenceURL)
	assert.True(t, cred.Verified())

	// A successful submit consumes the draft.
	stored, _ := drafts.Get(ctx, userID, draft.ID)
	assert.Nil(t, stored)
}

func TestWizardStagedFileWinsOverEvidenceText(t *testing.T) {
	svc, _, _, store, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)
	completeSteps(t, svc, userID, draft.ID)

	_, errs, err := svc.SubmitStep(ctx, userID, draft.ID, StepInput{Evidence: "https://elsewhere.example.com"})
	require.NoError(t, err)
	require.False(t, errs.HasErrors())

	staged, err := svc.StageFile(ctx, userID, draft.ID, []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NotEmpty(t, staged.FileKey)

	cred, errs, err := svc.Submit(ctx, userID, draft.ID)
	require.NoError(t, err)
	require.False(t, errs.HasErrors())
	require.NotNil(t, cred.EvidenceURL)
	assert.Equal(t, store.PublicURL("certificates", staged.FileKey), *cred.EvidenceURL)
}

func TestWizardSubmitWithoutEvidenceIsUnverified(t *testing.T) {
	svc, _, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)
	completeSteps(t, svc, userID, draft.ID)

	_, errs, err := svc.SubmitStep(ctx, userID, draft.ID, StepInput{})
	require.NoError(t, err)
	require.False(t, errs.HasErrors())

	cred, errs, err := svc.Submit(ctx, userID, draft.ID)
	require.NoError(t, err)
	require.False(t, errs.HasErrors())
	assert.Nil(t, cred.EvidenceURL)
	assert.False(t, cred.Verified())
}

func TestWizardDraftSurvivesFailedSubmit(t *testing.T) {
	svc, drafts, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)

	// Only the first step done; required fields are missing.
	_, errs, err := svc.SubmitStep(ctx, userID, draft.ID, StepInput{Type: "Technical Skill"})
	require.NoError(t, err)
	require.False(t, errs.HasErrors())

	_, errs, err = svc.Submit(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.True(t, errs.HasErrors())

	stored, err := drafts.Get(ctx, userID, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Technical Skill", stored.Type)
}

func TestWizardDraftScopedToOwner(t *testing.T) {
	svc, _, _, _, userID := wizardFixture(t)
	ctx := context.Background()

	draft, err := svc.Start(ctx, userID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, uuid.New(), draft.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
