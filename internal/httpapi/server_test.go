package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mehrguard/urlguard/internal/analyzer"
	"github.com/mehrguard/urlguard/internal/logging"
	"github.com/mehrguard/urlguard/internal/policy"
	"github.com/mehrguard/urlguard/internal/service"
)

func newTestServer() http.Handler {
	logger := logging.New()
	engine := analyzer.NewEngine(analyzer.Config{})
	evaluator := policy.NewEvaluator(policy.Default())
	svc := service.New(engine, evaluator, logger)
	return NewServer(":0", logger, svc, 10).Handler
}

func postJSON(t *testing.T, handler http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	handler := newTestServer()

	rec := postJSON(t, handler, "/analyze", map[string]interface{}{
		"url": "http://paypa1-secure.tk/login",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp service.AnalysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Assessment == nil {
		t.Fatal("Expected an assessment in the response")
	}
	if resp.Assessment.Verdict == analyzer.VerdictSafe {
		t.Errorf("Expected a non-safe verdict, got %q", resp.Assessment.Verdict)
	}
	if resp.ID == "" {
		t.Error("Expected an analysis ID")
	}
}

func TestAnalyzeEndpoint_MissingURL(t *testing.T) {
	handler := newTestServer()

	rec := postJSON(t, handler, "/analyze", map[string]interface{}{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestAnalyzeEndpoint_InvalidJSON(t *testing.T) {
	handler := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestBatchEndpoint(t *testing.T) {
	handler := newTestServer()

	rec := postJSON(t, handler, "/analyze/batch", map[string]interface{}{
		"urls": []string{"https://www.google.com/", "http://paypa1-secure.tk/login"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Count   int                         `json:"count"`
		Results []*service.AnalysisResponse `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Count != 2 || len(resp.Results) != 2 {
		t.Fatalf("Expected 2 results, got count=%d len=%d", resp.Count, len(resp.Results))
	}
}

func TestBatchEndpoint_SizeLimit(t *testing.T) {
	handler := newTestServer()

	urls := make([]string, 11)
	for i := range urls {
		urls[i] = "https://example.com/"
	}
	rec := postJSON(t, handler, "/analyze/batch", map[string]interface{}{"urls": urls})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for oversized batch, got %d", rec.Code)
	}
}

func TestPolicyEvaluateEndpoint(t *testing.T) {
	handler := newTestServer()

	rec := postJSON(t, handler, "/policy/evaluate", map[string]interface{}{
		"url": "https://example.com/",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var result policy.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Decision != policy.DecisionPassed {
		t.Errorf("Default policy should pass, got %q", result.Decision)
	}
}

func TestPayloadEvaluateEndpoint(t *testing.T) {
	handler := newTestServer()

	rec := postJSON(t, handler, "/payload/evaluate", map[string]interface{}{
		"content": "WIFI:T:WPA;S:guest;P:secret;;",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var resp service.PayloadResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.PayloadType != policy.PayloadWiFi {
		t.Errorf("Expected WIFI payload type, got %q", resp.PayloadType)
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("Expected an X-Request-Id header on every response")
	}
}
