package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

// Connection is a directed edge from the requester (UserID) to the
// recipient (ConnectionID). Acceptance flips Status in place; rejected
// rows remain but are inert.
type Connection struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	ConnectionID uuid.UUID `json:"connection_id"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	// Joined fields: the peer's profile from the current user's point of view.
	PeerID        uuid.UUID `json:"peer_id,omitempty"`
	PeerName      *string   `json:"peer_name,omitempty"`
	PeerEmail     string    `json:"peer_email,omitempty"`
	PeerAvatarURL *string   `json:"peer_avatar_url,omitempty"`
}
