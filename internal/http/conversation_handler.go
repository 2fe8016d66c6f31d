package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

const defaultConversationLimit = 50

type ConversationHandler struct {
	service   domain.MessagingService
	secretKey string
	logger    logger.Logger
}

func NewConversationHandler(service domain.MessagingService, secretKey string, log logger.Logger) *ConversationHandler {
	return &ConversationHandler{
		service:   service,
		secretKey: secretKey,
		logger:    log,
	}
}

func (h *ConversationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	mux.Handle("/api/conversations.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/conversations.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/conversations.send", requireAuth(http.HandlerFunc(h.handleSend)))
}

func (h *ConversationHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	limit := defaultConversationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	conversations, err := h.service.ListConversations(r.Context(), orgID, limit)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list conversations")
		WriteJSONError(w, "Failed to list conversations", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"conversations": conversations,
	})
}

func (h *ConversationHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing conversation ID", http.StatusBadRequest)
		return
	}

	conversation, err := h.service.GetConversation(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"conversation": conversation,
	})
}

func (h *ConversationHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		ConversationID string `json:"conversation_id"`
		Text           string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ConversationID == "" || req.Text == "" {
		WriteJSONError(w, "conversation_id and text are required", http.StatusBadRequest)
		return
	}

	if err := h.service.Send(r.Context(), orgID, req.ConversationID, req.Text); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
