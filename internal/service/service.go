package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/mehrguard/urlguard/internal/analyzer"
	"github.com/mehrguard/urlguard/internal/logging"
	"github.com/mehrguard/urlguard/internal/policy"
)

// Service provides the business logic layer for URL analysis
// It sits between the HTTP transport layer and the analyzer/policy layers
type Service struct {
	engine    *analyzer.Engine
	evaluator *policy.Evaluator
	logger    *logging.Logger
}

// New creates a new Service instance
func New(engine *analyzer.Engine, evaluator *policy.Evaluator, logger *logging.Logger) *Service {
	return &Service{
		engine:    engine,
		evaluator: evaluator,
		logger:    logger.Named("service"),
	}
}

// AnalysisResponse is the full outcome of analyzing one URL: the org policy
// decision plus, when the policy defers, the classifier's assessment
type AnalysisResponse struct {
	ID         string                   `json:"id"` // Unique analysis ID
	URL        string                   `json:"url"`
	Policy     policy.Result            `json:"policy"`
	Assessment *analyzer.RiskAssessment `json:"assessment,omitempty"`
	Report     *analyzer.Report         `json:"report,omitempty"`
	DurationMs int64                    `json:"duration_ms"`
}

// Analyze runs a URL through the org policy and, unless the policy decides
// outright, through the phishing engine. An explicit policy allow or block
// short-circuits classification; PassedPolicy and RequiresReview defer to
// the engine.
func (s *Service) Analyze(rawURL string, includeReport bool) *AnalysisResponse {
	start := time.Now()
	resp := &AnalysisResponse{
		ID:     uuid.NewString(),
		URL:    rawURL,
		Policy: s.evaluator.Evaluate(rawURL),
	}

	switch resp.Policy.Decision {
	case policy.DecisionAllowed, policy.DecisionBlocked:
		// Policy decided; the classifier does not run
	default:
		if includeReport {
			resp.Report = s.engine.AnalyzeReport(rawURL)
			resp.Assessment = &resp.Report.Assessment
		} else {
			resp.Assessment = s.engine.Analyze(rawURL)
		}
	}

	resp.DurationMs = time.Since(start).Milliseconds()

	fields := []interface{}{
		"id", resp.ID,
		"url", rawURL,
		"policy", resp.Policy.Decision,
		"duration_ms", resp.DurationMs,
	}
	if resp.Assessment != nil {
		fields = append(fields,
			"score", resp.Assessment.Score,
			"verdict", resp.Assessment.Verdict,
		)
	}
	s.logger.Info("Analysis completed", fields...)

	return resp
}

// AnalyzeBatch analyzes each URL independently and returns results in input
// order
func (s *Service) AnalyzeBatch(rawURLs []string) []*AnalysisResponse {
	results := make([]*AnalysisResponse, len(rawURLs))
	for i, u := range rawURLs {
		results[i] = s.Analyze(u, false)
	}
	return results
}

// EvaluatePolicy applies only the org policy rules, without classification
func (s *Service) EvaluatePolicy(rawURL string) policy.Result {
	result := s.evaluator.Evaluate(rawURL)
	s.logger.Info("Policy evaluated", "url", rawURL, "decision", result.Decision, "reason", result.Reason)
	return result
}

// PayloadResponse is the outcome of screening a decoded QR payload
type PayloadResponse struct {
	ID          string             `json:"id"`
	PayloadType policy.PayloadType `json:"payload_type"`
	Policy      policy.Result      `json:"policy"`
	// Assessment is set for URL payloads that pass the policy gate
	Assessment *analyzer.RiskAssessment `json:"assessment,omitempty"`
}

// EvaluatePayload screens a decoded QR payload against the policy and, for
// URL payloads the policy defers on, classifies the URL
func (s *Service) EvaluatePayload(content string, payloadType policy.PayloadType) *PayloadResponse {
	if payloadType == "" {
		payloadType = policy.DetectPayloadType(content)
	}

	resp := &PayloadResponse{
		ID:          uuid.NewString(),
		PayloadType: payloadType,
		Policy:      s.evaluator.EvaluatePayload(content, payloadType),
	}

	if payloadType == policy.PayloadURL {
		switch resp.Policy.Decision {
		case policy.DecisionAllowed, policy.DecisionBlocked:
		default:
			resp.Assessment = s.engine.Analyze(content)
		}
	}

	s.logger.Info("Payload evaluated",
		"id", resp.ID,
		"type", resp.PayloadType,
		"decision", resp.Policy.Decision,
	)

	return resp
}
