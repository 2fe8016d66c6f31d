package http

import (
	"encoding/json"
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

type ContactHandler struct {
	service   domain.ContactService
	secretKey string
	logger    logger.Logger
}

func NewContactHandler(service domain.ContactService, secretKey string, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		service:   service,
		secretKey: secretKey,
		logger:    log,
	}
}

func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	mux.Handle("/api/contacts.list", requireAuth(http.HandlerFunc(h.handleList)))
	mux.Handle("/api/contacts.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/contacts.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/contacts.update", requireAuth(http.HandlerFunc(h.handleUpdate)))
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	contacts, err := h.service.List(r.Context(), orgID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list contacts")
		WriteJSONError(w, "Failed to list contacts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contacts": contacts,
	})
}

func (h *ContactHandler) handleGet(w http.ResponseWriter, r *http.Request) {
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
		WriteJSONError(w, "Missing contact ID", http.StatusBadRequest)
		return
	}

	contact, err := h.service.Get(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contact": contact,
	})
}

func (h *ContactHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	contact, err := h.service.Create(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"contact": contact,
	})
}

func (h *ContactHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	contact, err := h.service.Update(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contact": contact,
	})
}
