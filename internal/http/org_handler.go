package http

import (
	"encoding/json"
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

type OrgHandler struct {
	service   domain.OrgService
	secretKey string
	logger    logger.Logger
}

func NewOrgHandler(service domain.OrgService, secretKey string, log logger.Logger) *OrgHandler {
	return &OrgHandler{
		service:   service,
		secretKey: secretKey,
		logger:    log,
	}
}

func (h *OrgHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	mux.Handle("/api/org.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/org.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
	mux.Handle("/api/org.createChatAccount", requireAuth(http.HandlerFunc(h.handleCreateChatAccount)))
}

func (h *OrgHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	org, err := h.service.Get(r.Context(), orgID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"org": org,
	})
}

func (h *OrgHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.UpdateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	org, err := h.service.Update(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"org": org,
	})
}

func (h *OrgHandler) handleCreateChatAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.CreateChatAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.service.CreateChatAccount(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"chat_account": account,
	})
}
