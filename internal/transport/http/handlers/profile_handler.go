package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/service"
	"github.com/skillpassport/backend/internal/transport/http/middleware"
	"github.com/skillpassport/backend/pkg/validator"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	connService    *service.ConnectionService
}

func NewProfileHandler(profileService *service.ProfileService, connService *service.ConnectionService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, connService: connService}
}

func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.GetOrCreate(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR get profile: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var update domain.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProfileUpdate(update); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	profile, err := h.profileService.Update(r.Context(), userID, update)
	if err != nil {
		log.Printf("ERROR update profile: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	// Bound the whole body, not just the in-memory buffer, so an
	// oversized upload fails before it is read to the end.
	r.Body = http.MaxBytesReader(w, r.Body, validator.MaxAvatarSize+formOverhead)
	if err := r.ParseMultipartForm(validator.MaxAvatarSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "Avatar file is required")
		return
	}
	defer file.Close()

	if errs := validator.ValidateAvatarFile(header.Header.Get("Content-Type"), header.Size); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("ERROR read avatar: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	profile, err := h.profileService.UploadAvatar(r.Context(), userID, header.Filename, data)
	if err != nil {
		log.Printf("ERROR upload avatar: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	profile, err := h.profileService.Get(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		} else {
			log.Printf("ERROR get profile by id: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	connections, err := h.connService.CountAccepted(r.Context(), profileID)
	if err != nil {
		log.Printf("ERROR count connections: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"profile":     profile,
		"connections": connections,
	})
}
