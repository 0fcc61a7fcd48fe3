package ws

import (
	"log"

	"github.com/skillpassport/backend/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// ConnectionRequested tells the recipient a pending request arrived.
func (n *HubNotifier) ConnectionRequested(conn *domain.Connection) {
	evt, err := NewEvent(EventTypeConnectionRequested, ConnectionPayload{Connection: *conn})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(conn.ConnectionID, evt)
}

// ConnectionAccepted tells the original requester their request was accepted.
func (n *HubNotifier) ConnectionAccepted(conn *domain.Connection) {
	evt, err := NewEvent(EventTypeConnectionAccepted, ConnectionPayload{Connection: *conn})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(conn.UserID, evt)
}
