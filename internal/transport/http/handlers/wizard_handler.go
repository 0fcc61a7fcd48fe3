package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/skillpassport/backend/internal/service"
	"github.com/skillpassport/backend/internal/transport/http/middleware"
	"github.com/skillpassport/backend/pkg/validator"
)

type WizardHandler struct {
	wizardService *service.WizardService
}

func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	draft, err := h.wizardService.Start(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR start wizard: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, draft)
}

func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	draftID, ok := h.draftID(w, r)
	if !ok {
		return
	}

	draft, err := h.wizardService.Get(r.Context(), userID, draftID)
	if err != nil {
		h.writeDraftError(w, "get draft", err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (h *WizardHandler) SubmitStep(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	draftID, ok := h.draftID(w, r)
	if !ok {
		return
	}

	var input service.StepInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	draft, errs, err := h.wizardService.SubmitStep(r.Context(), userID, draftID, input)
	if err != nil {
		h.writeDraftError(w, "submit step", err)
		return
	}
	if errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	draftID, ok := h.draftID(w, r)
	if !ok {
		return
	}

	draft, err := h.wizardService.Back(r.Context(), userID, draftID)
	if err != nil {
		h.writeDraftError(w, "step back", err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (h *WizardHandler) StageFile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	draftID, ok := h.draftID(w, r)
	if !ok {
		return
	}

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
		log.Printf("ERROR read staged file: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	draft, err := h.wizardService.StageFile(r.Context(), userID, draftID, data)
	if err != nil {
		h.writeDraftError(w, "stage file", err)
		return
	}

	writeJSON(w, http.StatusOK, draft)
}

func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	draftID, ok := h.draftID(w, r)
	if !ok {
		return
	}

	cred, errs, err := h.wizardService.Submit(r.Context(), userID, draftID)
	if err != nil {
		h.writeDraftError(w, "submit draft", err)
		return
	}
	if errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	writeJSON(w, http.StatusCreated, cred)
}

func (h *WizardHandler) draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	draftID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid draft ID")
		return uuid.Nil, false
	}
	return draftID, true
}

func (h *WizardHandler) writeDraftError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrDraftNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Draft not found")
		return
	}
	log.Printf("ERROR %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
}
