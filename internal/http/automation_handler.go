package http

import (
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
	"github.com/converso/converso/pkg/logger"
)

type AutomationHandler struct {
	todayQueueService domain.TodayQueueService
	secretKey         string
	logger            logger.Logger
}

func NewAutomationHandler(todayQueueService domain.TodayQueueService, secretKey string, log logger.Logger) *AutomationHandler {
	return &AutomationHandler{
		todayQueueService: todayQueueService,
		secretKey:         secretKey,
		logger:            log,
	}
}

func (h *AutomationHandler) RegisterRoutes(mux *http.ServeMux) {
	requireAuth := middleware.NewAuthMiddleware(h.secretKey).RequireAuth()

	mux.Handle("/api/automation.todayQueue", requireAuth(http.HandlerFunc(h.handleTodayQueue)))
}

func (h *AutomationHandler) handleTodayQueue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orgID, ok := orgFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.todayQueueService.GenerateTodayQueue(r.Context(), orgID)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to generate today queue")
		WriteJSONError(w, "Failed to generate today queue", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}
