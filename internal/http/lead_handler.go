package http

import (
	"encoding/json"
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

type LeadHandler struct {
	service   domain.LeadService
	secretKey string
	logger    logger.Logger
}

func NewLeadHandler(service domain.LeadService, secretKey string, log logger.Logger) *LeadHandler {
	return &LeadHandler{
		service:   service,
		secretKey: secretKey,
		logger:    log,
	}
}

func (h *LeadHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	// Register RPC-style endpoints with dot notation
	mux.Handle("/api/leads.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/leads.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/leads.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/leads.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
}

func (h *LeadHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	filter := domain.LeadFilter{
		Stage:  domain.LeadStage(r.URL.Query().Get("stage")),
		Search: r.URL.Query().Get("search"),
	}
	leads, err := h.service.List(r.Context(), orgID, filter)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list leads")
		WriteJSONError(w, "Failed to list leads", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
	})
}

func (h *LeadHandler) handleGet(w http.ResponseWriter, r *http.Request) {
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
		WriteJSONError(w, "Missing lead ID", http.StatusBadRequest)
		return
	}

	lead, err := h.service.Get(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lead": lead,
	})
}

func (h *LeadHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.service.Create(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"lead": lead,
	})
}

func (h *LeadHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.service.Update(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lead": lead,
	})
}
