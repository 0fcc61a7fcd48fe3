package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillpassport/backend/internal/service"
	"github.com/skillpassport/backend/internal/transport/http/middleware"
)

type ConnectionHandler struct {
	connService *service.ConnectionService
}

func NewConnectionHandler(connService *service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connService: connService}
}

func (h *ConnectionHandler) ListAccepted(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	conns, err := h.connService.ListAccepted(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list connections: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, conns)
}

func (h *ConnectionHandler) ListRequestsReceived(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	conns, err := h.connService.ListRequestsReceived(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list received requests: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, conns)
}

func (h *ConnectionHandler) ListRequestsSent(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	conns, err := h.connService.ListRequestsSent(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list sent requests: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, conns)
}

func (h *ConnectionHandler) ListDiscoverable(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profiles, err := h.connService.ListDiscoverable(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list discoverable: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

func (h *ConnectionHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		UserID uuid.UUID `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	conn, err := h.connService.SendRequest(r.Context(), userID, input.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotConnectSelf):
			writeError(w, http.StatusBadRequest, "SELF_CONNECTION", "Cannot connect with yourself")
		case errors.Is(err, service.ErrPeerNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		case errors.Is(err, service.ErrEdgeAlreadyExists):
			writeError(w, http.StatusConflict, "ALREADY_EXISTS", "A connection or request already exists")
		default:
			log.Printf("ERROR send connection request: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, conn)
}

func (h *ConnectionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.connService.Accept)
}

func (h *ConnectionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.connService.Reject)
}

func (h *ConnectionHandler) respond(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID, requestID uuid.UUID) error) {
	userID := middleware.GetUserID(r.Context())

	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	if err := fn(r.Context(), userID, requestID); err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Request not found")
		case errors.Is(err, service.ErrNotRequestRecipient):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Not the request recipient")
		case errors.Is(err, service.ErrNotPending):
			writeError(w, http.StatusConflict, "NOT_PENDING", "Request is no longer pending")
		default:
			log.Printf("ERROR respond to request: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ConnectionHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	peerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.connService.Disconnect(r.Context(), userID, peerID); err != nil {
		log.Printf("ERROR disconnect: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
