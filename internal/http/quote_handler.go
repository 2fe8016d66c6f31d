package http

import (
	"encoding/json"
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

type QuoteHandler struct {
	service   domain.QuoteService
	secretKey string
	logger    logger.Logger
}

func NewQuoteHandler(service domain.QuoteService, secretKey string, log logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		service:   service,
		secretKey: secretKey,
		logger:    log,
	}
}

func (h *QuoteHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	mux.Handle("/api/quotes.create", requireAuth(http.HandlerFunc(h.handleCreate)))
	mux.Handle("/api/quotes.get", requireAuth(http.HandlerFunc(h.handleGet)))
	mux.Handle("/api/quotes.updateStatus", requireAuth(http.HandlerFunc(h.handleUpdateStatus)))

	// The shared quote link is opened by the customer, never authenticated
	mux.HandleFunc("/api/quotes.publicGet", h.handlePublicGet)
}

func (h *QuoteHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Create(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"quote": quote,
	})
}

func (h *QuoteHandler) handleGet(w http.ResponseWriter, r *http.Request) {
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
		WriteJSONError(w, "Missing quote ID", http.StatusBadRequest)
		return
	}

	quote, err := h.service.Get(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote": quote,
	})
}

func (h *QuoteHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	var req domain.UpdateQuoteStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	quote, err := h.service.UpdateStatus(r.Context(), orgID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote": quote,
	})
}

func (h *QuoteHandler) handlePublicGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	publicID := r.URL.Query().Get("public_id")
	if publicID == "" {
		WriteJSONError(w, "Missing public ID", http.StatusBadRequest)
		return
	}

	quote, err := h.service.PublicGet(r.Context(), publicID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quote": quote,
	})
}
