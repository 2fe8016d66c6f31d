package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/converso/converso/config"
	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/pkg/crypto"
	"github.com/converso/converso/pkg/logger"
)

// WebhookHandler terminates inbound provider webhooks. These routes are
// unauthenticated by design; the Twilio route is protected by signature
// verification instead.
type WebhookHandler struct {
	service     domain.MessagingService
	twilioCfg   config.TwilioConfig
	apiEndpoint string
	logger      logger.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(service domain.MessagingService, twilioCfg config.TwilioConfig, apiEndpoint string, log logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		service:     service,
		twilioCfg:   twilioCfg,
		apiEndpoint: apiEndpoint,
		logger:      log,
	}
}

func (h *WebhookHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/webhooks.twilio", h.handleTwilio)
	mux.HandleFunc("/api/webhooks.inbound", h.handleInbound)
}

// handleTwilio receives Twilio's form-encoded webhook. The signature is
// checked before anything else touches state; a forged request never
// reaches the queue.
func (h *WebhookHandler) handleTwilio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteJSONError(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	// Twilio signs the public URL it was configured with
	requestURL := h.apiEndpoint + r.URL.RequestURI()
	signature := r.Header.Get("X-Twilio-Signature")
	if !crypto.VerifyTwilioSignature(h.twilioCfg.AuthToken, requestURL, r.PostForm, signature) {
		h.logger.WithField("url", requestURL).Warn("Rejected webhook with invalid Twilio signature")
		writeServiceError(w, domain.NewAuthenticationError("invalid signature"))
		return
	}

	orgID, err := h.service.ResolveOrgFromDestination(r.Context(), r.PostForm.Get("To"))
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to resolve org for webhook")
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if orgID == "" {
		orgID = h.twilioCfg.DefaultOrgID
	}
	if orgID == "" {
		writeServiceError(w, domain.NewAuthenticationError("unknown destination"))
		return
	}

	// The processing pipeline consumes JSON, so the form becomes one
	// flat object keyed by parameter name
	fields := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		fields[key] = r.PostForm.Get(key)
	}
	payload, err := json.Marshal(fields)
	if err != nil {
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.service.Webhook(r.Context(), orgID, payload); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleInbound is the provider-agnostic ingestion route: a JSON body
// with the normalized field aliases, org from the orgId field or the
// configured default.
func (h *WebhookHandler) handleInbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	orgID := gjson.GetBytes(body, "orgId").String()
	if orgID == "" {
		orgID = h.twilioCfg.DefaultOrgID
	}
	if orgID == "" {
		writeServiceError(w, domain.NewAuthenticationError("missing orgId"))
		return
	}

	if err := h.service.Webhook(r.Context(), orgID, body); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
