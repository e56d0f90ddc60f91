package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mehrguard/urlguard/internal/logging"
	"github.com/mehrguard/urlguard/internal/service"
)

// NewServer creates and configures a new HTTP server
func NewServer(addr string, logger *logging.Logger, svc *service.Service, maxBatchSize int) *http.Server {
	r := chi.NewRouter()

	// Every request goes through the logging middleware
	r.Use(loggingMiddleware(logger))

	// Register the health endpoint
	r.Get("/health", healthHandler)

	// Analysis endpoints
	r.Post("/analyze", analyzeHandler(svc))
	r.Post("/analyze/batch", analyzeBatchHandler(svc, maxBatchSize))

	// Org policy endpoints
	r.Post("/policy/evaluate", policyEvaluateHandler(svc))
	r.Post("/payload/evaluate", payloadEvaluateHandler(svc))

	// Create and return the HTTP server
	return &http.Server{
		Addr:    addr,
		Handler: r,
	}
}

// healthHandler handles GET requests to /health
// Returns a simple JSON response indicating the service is healthy
func healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "ok",
		"service": "urlguard-api",
	}

	writeJSON(w, http.StatusOK, response)
}

// writeJSON is a helper function to write JSON responses
// It sets the correct Content-Type header and encodes the data as JSON
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// If encoding fails, the error is ignored (acceptable for this simple case)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error body with the given status code
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
