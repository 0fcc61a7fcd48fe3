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

type CredentialHandler struct {
	credService *service.CredentialService
}

func NewCredentialHandler(credService *service.CredentialService) *CredentialHandler {
	return &CredentialHandler{credService: credService}
}

func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	creds, err := h.credService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list credentials: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, creds)
}

func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.CreateCredentialInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateCredential(input.Type, input.Name, input.Issuer, input.IssueDate); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	cred, err := h.credService.Create(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR create credential: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, cred)
}

func (h *CredentialHandler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, validator.MaxEvidenceSize+formOverhead)
	if err := r.ParseMultipartForm(validator.MaxEvidenceSize); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_FORM", "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("certificate")
	if err != nil {
		writeError(w, http.StatusBadRequest, "MISSING_FILE", "Certificate file is required")
		return
	}
	defer file.Close()

	if errs := validator.ValidateEvidenceFile(header.Header.Get("Content-Type"), header.Size); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("ERROR read certificate: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	url, err := h.credService.UploadEvidence(r.Context(), userID, data)
	if err != nil {
		log.Printf("ERROR upload certificate: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"evidence_url": url})
}

func (h *CredentialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	credID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid credential ID")
		return
	}

	if err := h.credService.Delete(r.Context(), userID, credID); err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Credential not found")
		case errors.Is(err, service.ErrNotCredentialOwner):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Not the credential owner")
		default:
			log.Printf("ERROR delete credential: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CredentialHandler) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	stats, err := h.credService.Stats(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR credential stats: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Meta serves the static choices the credential form offers.
func (h *CredentialHandler) Meta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"types":           domain.CredentialTypes,
		"popular_issuers": domain.PopularIssuers,
	})
}
