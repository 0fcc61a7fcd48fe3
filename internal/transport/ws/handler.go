package ws

import (
	"log"
	"net/http"

	"nhooyr.io/websocket"

	"github.com/skillpassport/backend/internal/transport/http/middleware"
)

// ServeWS upgrades to WebSocket after validating the ?token= query
// parameter (browsers cannot attach an Authorization header to the
// upgrade request). Each socket carries events for exactly one user.
func ServeWS(hub *Hub, jwtSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.ParseUserID(r.URL.Query().Get("token"), jwtSecret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true, // cross-origin browser client
		})
		if err != nil {
			log.Printf("ws: accept error: %v", err)
			return
		}

		client := NewClient(hub, conn, userID)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}
