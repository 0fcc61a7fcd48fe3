package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/repository"
)

var (
	ErrCannotConnectSelf   = errors.New("cannot send a connection request to yourself")
	ErrPeerNotFound        = errors.New("user not found")
	ErrEdgeAlreadyExists   = errors.New("a connection or pending request already exists")
	ErrRequestNotFound     = errors.New("connection request not found")
	ErrNotRequestRecipient = errors.New("only the request recipient can perform this action")
	ErrNotPending          = errors.New("request is not pending")
)

// Notifier pushes connection events to the affected peer. Implementations
// must not block; delivery is best effort.
type Notifier interface {
	ConnectionRequested(conn *domain.Connection)
	ConnectionAccepted(conn *domain.Connection)
}

type ConnectionService struct {
	connRepo repository.ConnectionRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewConnectionService(connRepo repository.ConnectionRepository, userRepo repository.UserRepository, notifier Notifier) *ConnectionService {
	return &ConnectionService{
		connRepo: connRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// SendRequest inserts a pending edge from the sender to the target.
// Duplicate pending or accepted edges in either direction are refused;
// old rejected rows are inert and do not block a fresh request.
func (s *ConnectionService) SendRequest(ctx context.Context, senderID, targetID uuid.UUID) (*domain.Connection, error) {
	if senderID == targetID {
		return nil, ErrCannotConnectSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return nil, ErrPeerNotFound
	}

	existing, err := s.connRepo.GetLiveBetween(ctx, senderID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEdgeAlreadyExists
	}

	conn := &domain.Connection{
		ID:           uuid.New(),
		UserID:       senderID,
		ConnectionID: targetID,
		Status:       domain.ConnectionPending,
		CreatedAt:    time.Now(),
	}

	if err := s.connRepo.Create(ctx, conn); err != nil {
		// A concurrent mutual request can slip past the pre-check and
		// trip the database's live-pair index instead.
		if errors.Is(err, repository.ErrDuplicateEdge) {
			return nil, ErrEdgeAlreadyExists
		}
		return nil, fmt.Errorf("creating connection request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.ConnectionRequested(conn)
	}

	return conn, nil
}

// Accept flips the pending row to accepted in place. Only the recipient of
// the request may accept it.
func (s *ConnectionService) Accept(ctx context.Context, userID, requestID uuid.UUID) error {
	conn, err := s.requireRecipient(ctx, userID, requestID)
	if err != nil {
		return err
	}

	if err := s.connRepo.UpdateStatus(ctx, requestID, domain.ConnectionAccepted); err != nil {
		return fmt.Errorf("accepting request: %w", err)
	}

	if s.notifier != nil {
		conn.Status = domain.ConnectionAccepted
		s.notifier.ConnectionAccepted(conn)
	}

	return nil
}

// Reject flips the row to rejected. The row remains but disappears from
// every positive view.
func (s *ConnectionService) Reject(ctx context.Context, userID, requestID uuid.UUID) error {
	if _, err := s.requireRecipient(ctx, userID, requestID); err != nil {
		return err
	}
	return s.connRepo.UpdateStatus(ctx, requestID, domain.ConnectionRejected)
}

// Disconnect removes every edge between the two users in either direction,
// whatever its status. Either party may disconnect.
func (s *ConnectionService) Disconnect(ctx context.Context, userID, peerID uuid.UUID) error {
	return s.connRepo.DeleteBetween(ctx, userID, peerID)
}

func (s *ConnectionService) ListAccepted(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	conns, err := s.connRepo.ListAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conns == nil {
		conns = []domain.Connection{}
	}
	return conns, nil
}

func (s *ConnectionService) ListRequestsReceived(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	conns, err := s.connRepo.ListRequestsReceived(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conns == nil {
		conns = []domain.Connection{}
	}
	return conns, nil
}

func (s *ConnectionService) ListRequestsSent(ctx context.Context, userID uuid.UUID) ([]domain.Connection, error) {
	conns, err := s.connRepo.ListRequestsSent(ctx, userID)
	if err != nil {
		return nil, err
	}
	if conns == nil {
		conns = []domain.Connection{}
	}
	return conns, nil
}

// ListDiscoverable returns profiles with no live edge to the user.
func (s *ConnectionService) ListDiscoverable(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	profiles, err := s.connRepo.ListDiscoverable(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}

// CountAccepted backs the connection figure on profile views.
func (s *ConnectionService) CountAccepted(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.connRepo.CountAccepted(ctx, userID)
}

func (s *ConnectionService) requireRecipient(ctx context.Context, userID, requestID uuid.UUID) (*domain.Connection, error) {
	conn, err := s.connRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrRequestNotFound
	}
	if conn.ConnectionID != userID {
		return nil, ErrNotRequestRecipient
	}
	if conn.Status != domain.ConnectionPending {
		return nil, ErrNotPending
	}
	return conn, nil
}
