package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpassport/backend/internal/domain"
)

func credentialFixture(t *testing.T) (*CredentialService, *fakeCredentialRepo, *fakeConnectionRepo, *fakeStore, uuid.UUID) {
	t.Helper()

	creds := newFakeCredentialRepo()
	conns := newFakeConnectionRepo()
	store := newFakeStore()
	return NewCredentialService(creds, conns, store), creds, conns, store, uuid.New()
}

func TestCreateCredentialWithEvidenceIsVerified(t *testing.T) {
	svc, _, _, _, userID := credentialFixture(t)

	cred, err := svc.Create(context.Background(), userID, CreateCredentialInput{
		Type:        "Professional Certification",
		Name:        "Cloud Architect",
		Issuer:      "Google",
		IssueDate:   "2024-03-15",
		EvidenceURL: "https://certs.example.com/abc",
	})
	require.NoError(t, err)
	assert.True(t, cred.Verified())
}

func TestCreateCredentialWithoutEvidenceIsUnverified(t *testing.T) {
	svc, _, _, _, userID := credentialFixture(t)

	cred, err := svc.Create(context.Background(), userID, CreateCredentialInput{
		Type:      "Technical Skill",
		Name:      "Kubernetes",
		Issuer:    "CNCF",
		IssueDate: "2023-11-02",
	})
	require.NoError(t, err)
	assert.Nil(t, cred.EvidenceURL)
	assert.False(t, cred.Verified())
}

func TestCreateCredentialBadDate(t *testing.T) {
	svc, _, _, _, userID := credentialFixture(t)

	_, err := svc.Create(context.Background(), userID, CreateCredentialInput{
		Type:      "Technical Skill",
		Name:      "Kubernetes",
		Issuer:    "CNCF",
		IssueDate: "02/11/2023",
	})
	assert.Error(t, err)
}

func TestDeleteCredentialOwnerOnly(t *testing.T) {
	svc, _, _, _, userID := credentialFixture(t)
	ctx := context.Background()

	cred, err := svc.Create(ctx, userID, CreateCredentialInput{
		Type:      "Project Work",
		Name:      "Portfolio Site",
		Issuer:    "Self",
		IssueDate: "2024-01-01",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), cred.ID), ErrNotCredentialOwner)
	assert.ErrorIs(t, svc.Delete(ctx, userID, uuid.New()), ErrCredentialNotFound)

	require.NoError(t, svc.Delete(ctx, userID, cred.ID))

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUploadEvidenceScopedToOwner(t *testing.T) {
	svc, _, _, _, userID := credentialFixture(t)

	url, err := svc.UploadEvidence(context.Background(), userID, []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Contains(t, url, "certificates/"+userID.String()+"/")
	assert.True(t, strings.HasSuffix(url, ".pdf"))
}

func TestStatsCountsVerifiedAndConnections(t *testing.T) {
	svc, _, conns, _, userID := credentialFixture(t)
	ctx := context.Background()

	evidence := "https://certs.example.com/x"
	_, err := svc.Create(ctx, userID, CreateCredentialInput{
		Type: "Technical Skill", Name: "Go", Issuer: "Gopher Academy",
		IssueDate: "2024-06-01", EvidenceURL: evidence,
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, CreateCredentialInput{
		Type: "Work Experience", Name: "Backend Engineer", Issuer: "Acme",
		IssueDate: "2022-09-01",
	})
	require.NoError(t, err)

	// One accepted edge, one pending; only accepted counts.
	conns.Create(ctx, &domain.Connection{ID: uuid.New(), UserID: userID, ConnectionID: uuid.New(), Status: domain.ConnectionAccepted})
	conns.Create(ctx, &domain.Connection{ID: uuid.New(), UserID: uuid.New(), ConnectionID: userID, Status: domain.ConnectionPending})

	stats, err := svc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Credentials)
	assert.Equal(t, 1, stats.Verified)
	assert.Equal(t, 1, stats.Connections)
}

func TestListReturnsEmptyNotNil(t *testing.T) {
	svc, _, _, _, userID := credentialFixture(t)

	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
