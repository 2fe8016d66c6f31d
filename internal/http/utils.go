package http

import (
	"encoding/json"
	"net/http"

	"github.com/converso/converso/internal/domain"
	"github.com/converso/converso/internal/http/middleware"
)

// WriteJSONError writes a JSON error response with the given message and
// status code, formatted as {"error": "message"}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// writeJSON writes a JSON response with the given status code and data
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses:
// validation 400, authentication 401, missing entity 404, uniqueness
// conflict 409, provider failure 502, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case isValidationError(err):
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case isAuthenticationError(err):
		WriteJSONError(w, err.Error(), http.StatusUnauthorized)
	case domain.IsNotFound(err):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	case domain.IsAlreadyExists(err):
		WriteJSONError(w, err.Error(), http.StatusConflict)
	case isProviderError(err):
		WriteJSONError(w, err.Error(), http.StatusBadGateway)
	default:
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func isValidationError(err error) bool {
	_, ok := err.(domain.ValidationError)
	return ok
}

func isAuthenticationError(err error) bool {
	_, ok := err.(domain.AuthenticationError)
	return ok
}

func isProviderError(err error) bool {
	_, ok := err.(*domain.ProviderError)
	return ok
}

// orgFromRequest reads the authenticated org injected by the middleware.
// Returns false after writing the 401 when the route was wired without it.
func orgFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	orgID, ok := middleware.OrgIDFromContext(r.Context())
	if !ok || orgID == "" {
		WriteJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return orgID, true
}
