package handler

import (
	"encoding/json"
	"net/http"

	"pdf-intake/internal/domain"
	"pdf-intake/pkg/logger"
)

// loggerFor returns the request-scoped logger, or fallback when none is set.
func loggerFor(r *http.Request, fallback domain.Logger) domain.Logger {
	return logger.FromContext(r.Context(), fallback)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
