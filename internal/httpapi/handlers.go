package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mehrguard/urlguard/internal/policy"
	"github.com/mehrguard/urlguard/internal/service"
)

// maxRequestBody bounds request bodies; adversarial inputs are truncated
// inside the analyzer, this bound just keeps decoding cheap
const maxRequestBody = 1 << 20

// analyzeRequest represents the JSON request body for the /analyze endpoint
type analyzeRequest struct {
	URL string `json:"url"`
	// Report requests the full per-component breakdown instead of just the
	// final assessment
	Report bool `json:"report,omitempty"`
}

// analyzeHandler handles POST requests to /analyze
// Accepts a JSON body with a URL, returns the policy decision and risk
// assessment
func analyzeHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.URL == "" {
			writeError(w, http.StatusBadRequest, "url is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.Analyze(req.URL, req.Report))
	}
}

// batchRequest represents the JSON request body for /analyze/batch
type batchRequest struct {
	URLs []string `json:"urls"`
}

// batchResponse wraps the per-URL results with a count for convenience
type batchResponse struct {
	Count   int                         `json:"count"`
	Results []*service.AnalysisResponse `json:"results"`
}

// analyzeBatchHandler handles POST requests to /analyze/batch
// Each URL is analyzed independently; results come back in input order
func analyzeBatchHandler(svc *service.Service, maxBatchSize int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if len(req.URLs) == 0 {
			writeError(w, http.StatusBadRequest, "urls is required")
			return
		}
		if len(req.URLs) > maxBatchSize {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size exceeds limit of %d", maxBatchSize))
			return
		}

		results := svc.AnalyzeBatch(req.URLs)
		writeJSON(w, http.StatusOK, batchResponse{
			Count:   len(results),
			Results: results,
		})
	}
}

// policyRequest represents the JSON request body for /policy/evaluate
type policyRequest struct {
	URL string `json:"url"`
}

// policyEvaluateHandler handles POST requests to /policy/evaluate
// Applies only the org policy rules, without running the classifier
func policyEvaluateHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req policyRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.URL == "" {
			writeError(w, http.StatusBadRequest, "url is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.EvaluatePolicy(req.URL))
	}
}

// payloadRequest represents the JSON request body for /payload/evaluate
type payloadRequest struct {
	Content string `json:"content"`
	// Type is optional; when empty the payload type is detected from the
	// content's scheme prefix
	Type string `json:"type,omitempty"`
}

// payloadEvaluateHandler handles POST requests to /payload/evaluate
// Screens a decoded QR payload (URL, WIFI, SMS, ...) against the org policy
func payloadEvaluateHandler(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req payloadRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Content == "" {
			writeError(w, http.StatusBadRequest, "content is required")
			return
		}

		writeJSON(w, http.StatusOK, svc.EvaluatePayload(req.Content, policy.PayloadType(req.Type)))
	}
}

// decodeBody parses a JSON request body into dst, writing an error response
// and returning false on malformed input
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
