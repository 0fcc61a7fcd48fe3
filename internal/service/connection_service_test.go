package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/repository"
)

func connectionFixture(t *testing.T) (*ConnectionService, *fakeUserRepo, *fakeConnectionRepo, *fakeNotifier, uuid.UUID, uuid.UUID) {
	t.Helper()

	users := newFakeUserRepo()
	conns := newFakeConnectionRepo()
	notifier := &fakeNotifier{}

	alice := uuid.New()
	bob := uuid.New()
	users.Create(context.Background(), &domain.User{ID: alice, Email: "alice@example.com"})
	users.Create(context.Background(), &domain.User{ID: bob, Email: "bob@example.com"})

	return NewConnectionService(conns, users, notifier), users, conns, notifier, alice, bob
}

func TestSendRequestCreatesPendingEdge(t *testing.T) {
	svc, _, _, notifier, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, alice, conn.UserID)
	assert.Equal(t, bob, conn.ConnectionID)
	assert.Equal(t, domain.ConnectionPending, conn.Status)

	// The recipient sees it as received, the sender as sent.
	received, err := svc.ListRequestsReceived(ctx, bob)
	require.NoError(t, err)
	require.Len(t, received, 1)

	sent, err := svc.ListRequestsSent(ctx, alice)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	require.Len(t, notifier.requested, 1)
	assert.Equal(t, bob, notifier.requested[0].ConnectionID)
}

func TestSendRequestToSelf(t *testing.T) {
	svc, _, _, _, alice, _ := connectionFixture(t)

	_, err := svc.SendRequest(context.Background(), alice, alice)
	assert.ErrorIs(t, err, ErrCannotConnectSelf)
}

func TestSendRequestUnknownUser(t *testing.T) {
	svc, _, _, _, alice, _ := connectionFixture(t)

	_, err := svc.SendRequest(context.Background(), alice, uuid.New())
	assert.ErrorIs(t, err, ErrPeerNotFound)
}

func TestSendRequestDuplicateRefused(t *testing.T) {
	svc, _, _, _, alice, bob := connectionFixture(t)
	ctx := context.Background()

	_, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)

	// Same direction.
	_, err = svc.SendRequest(ctx, alice, bob)
	assert.ErrorIs(t, err, ErrEdgeAlreadyExists)

	// Reverse direction is equally blocked.
	_, err = svc.SendRequest(ctx, bob, alice)
	assert.ErrorIs(t, err, ErrEdgeAlreadyExists)
}

// contestedConnRepo simulates a concurrent mutual request that inserted
// its edge between the service pre-check and this insert.
type contestedConnRepo struct {
	*fakeConnectionRepo
}

func (r *contestedConnRepo) Create(_ context.Context, _ *domain.Connection) error {
	return repository.ErrDuplicateEdge
}

func TestSendRequestRaceMapsToAlreadyExists(t *testing.T) {
	users := newFakeUserRepo()
	alice := uuid.New()
	bob := uuid.New()
	users.Create(context.Background(), &domain.User{ID: alice, Email: "alice@example.com"})
	users.Create(context.Background(), &domain.User{ID: bob, Email: "bob@example.com"})

	svc := NewConnectionService(&contestedConnRepo{newFakeConnectionRepo()}, users, nil)

	_, err := svc.SendRequest(context.Background(), alice, bob)
	assert.ErrorIs(t, err, ErrEdgeAlreadyExists)
}

func TestRejectedEdgeDoesNotBlockNewRequest(t *testing.T) {
	svc, _, _, _, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, bob, conn.ID))

	_, err = svc.SendRequest(ctx, alice, bob)
	assert.NoError(t, err)
}

func TestAcceptMakesConnectionVisibleToBoth(t *testing.T) {
	svc, _, _, notifier, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, bob, conn.ID))

	for _, id := range []uuid.UUID{alice, bob} {
		accepted, err := svc.ListAccepted(ctx, id)
		require.NoError(t, err)
		assert.Len(t, accepted, 1)
	}

	// The pending views are empty again.
	received, _ := svc.ListRequestsReceived(ctx, bob)
	assert.Empty(t, received)
	sent, _ := svc.ListRequestsSent(ctx, alice)
	assert.Empty(t, sent)

	require.Len(t, notifier.accepted, 1)
	assert.Equal(t, alice, notifier.accepted[0].UserID)
}

func TestOnlyRecipientMayAccept(t *testing.T) {
	svc, _, _, _, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Accept(ctx, alice, conn.ID), ErrNotRequestRecipient)
	assert.ErrorIs(t, svc.Accept(ctx, bob, uuid.New()), ErrRequestNotFound)
}

func TestAcceptTwiceFails(t *testing.T) {
	svc, _, _, _, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, bob, conn.ID))

	assert.ErrorIs(t, svc.Accept(ctx, bob, conn.ID), ErrNotPending)
}

func TestRejectHidesRequestFromAllViews(t *testing.T) {
	svc, _, _, _, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, bob, conn.ID))

	received, _ := svc.ListRequestsReceived(ctx, bob)
	assert.Empty(t, received)
	sent, _ := svc.ListRequestsSent(ctx, alice)
	assert.Empty(t, sent)
	accepted, _ := svc.ListAccepted(ctx, alice)
	assert.Empty(t, accepted)
}

func TestDisconnectRemovesEdgesBothDirections(t *testing.T) {
	svc, _, conns, _, alice, bob := connectionFixture(t)
	ctx := context.Background()

	conn, err := svc.SendRequest(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, svc.Accept(ctx, bob, conn.ID))

	// Either party may disconnect; here the original recipient does.
	require.NoError(t, svc.Disconnect(ctx, bob, alice))

	assert.Empty(t, conns.conns)

	// A fresh request works again afterwards.
	_, err = svc.SendRequest(ctx, bob, alice)
	assert.NoError(t, err)
}

func TestListViewsReturnEmptyNotNil(t *testing.T) {
	svc, _, _, _, alice, _ := connectionFixture(t)
	ctx := context.Background()

	accepted, err := svc.ListAccepted(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, accepted)
	assert.Empty(t, accepted)
}
