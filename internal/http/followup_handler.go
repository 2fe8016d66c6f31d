package http

import (
	"encoding/json"
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

type FollowupHandler struct {
	service   domain.FollowupService
	secretKey string
	logger    logger.Logger
}

func NewFollowupHandler(service domain.FollowupService, secretKey string, log logger.Logger) *FollowupHandler {
	return &FollowupHandler{
		service:   service,
		secretKey: secretKey,
		logger:    log,
	}
}

func (h *FollowupHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	mux.Handle("/api/followups.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/followups.listOverdue", requireAuth(http.HandlerFunc(h.handleListOverdue)))
	mux.Handle("/api/followups.markDone", requireAuth(http.HandlerFunc(h.handleMarkDone)))
}

func (h *FollowupHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.CreateFollowupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	followup, err := h.service.Create(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"followup": followup,
	})
}

func (h *FollowupHandler) handleListOverdue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	followups, err := h.service.ListOverdue(r.Context(), orgID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list overdue followups")
		WriteJSONError(w, "Failed to list overdue followups", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"followups": followups,
	})
}

func (h *FollowupHandler) handleMarkDone(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID == "" {
		WriteJSONError(w, "Missing followup ID", http.StatusBadRequest)
		return
	}

	if err := h.service.MarkDone(r.Context(), orgID, req.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
