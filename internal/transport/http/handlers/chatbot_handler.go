package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/skillpassport/backend/internal/chatbot"
	"github.com/skillpassport/backend/internal/transport/http/middleware"
)

type ChatbotHandler struct {
	conversations *chatbot.Conversations
}

func NewChatbotHandler(conversations *chatbot.Conversations) *ChatbotHandler {
	return &ChatbotHandler{conversations: conversations}
}

func (h *ChatbotHandler) Open(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	convID, messages := h.conversations.Open(userID)

	writeJSON(w, http.StatusCreated, map[string]any{
		"conversation_id": convID,
		"messages":        messages,
	})
}

func (h *ChatbotHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	convID, ok := h.conversationID(w, r)
	if !ok {
		return
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if strings.TrimSpace(input.Text) == "" {
		writeError(w, http.StatusBadRequest, "EMPTY_MESSAGE", "Message text is required")
		return
	}

	msg, err := h.conversations.Send(convID, userID, input.Text)
	if err != nil {
		h.writeConvError(w, "chatbot send", err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

func (h *ChatbotHandler) Messages(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	convID, ok := h.conversationID(w, r)
	if !ok {
		return
	}

	messages, err := h.conversations.Messages(convID, userID)
	if err != nil {
		h.writeConvError(w, "chatbot messages", err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

func (h *ChatbotHandler) Close(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	convID, ok := h.conversationID(w, r)
	if !ok {
		return
	}

	if err := h.conversations.Close(convID, userID); err != nil {
		h.writeConvError(w, "chatbot close", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatbotHandler) conversationID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	convID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid conversation ID")
		return uuid.Nil, false
	}
	return convID, true
}

func (h *ChatbotHandler) writeConvError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, chatbot.ErrConversationNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Conversation not found")
		return
	}
	log.Printf("ERROR %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
}
