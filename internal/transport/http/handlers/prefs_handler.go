package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/service"
	"github.com/skillpassport/backend/internal/theme"
	"github.com/skillpassport/backend/internal/transport/http/middleware"
)

type PrefsHandler struct {
	prefsService *service.PrefsService
}

func NewPrefsHandler(prefsService *service.PrefsService) *PrefsHandler {
	return &PrefsHandler{prefsService: prefsService}
}

// Themes is public so the login screen can already render themed.
func (h *PrefsHandler) Themes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default": theme.Default,
		"themes":  theme.Catalog(),
	})
}

func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	clientID, _ := h.identity(r)

	prefs, err := h.prefsService.Get(r.Context(), clientID)
	if err != nil {
		log.Printf("ERROR get prefs: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

func (h *PrefsHandler) Set(w http.ResponseWriter, r *http.Request) {
	clientID, userID := h.identity(r)

	var prefs domain.ClientPrefs
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if !theme.IsValid(prefs.Theme) {
		writeError(w, http.StatusBadRequest, "INVALID_THEME", "Unknown theme ID")
		return
	}

	if err := h.prefsService.Set(r.Context(), clientID, userID, &prefs); err != nil {
		log.Printf("ERROR set prefs: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// identity resolves which prefs bucket a request belongs to. A stable
// X-Client-ID wins so anonymous and logged-in sessions on one device
// share the same theme.
func (h *PrefsHandler) identity(r *http.Request) (string, *uuid.UUID) {
	userID := middleware.GetUserID(r.Context())

	if clientID := r.Header.Get("X-Client-ID"); clientID != "" {
		return clientID, &userID
	}
	return userID.String(), &userID
}
