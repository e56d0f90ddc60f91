package analyzer

import (
	"fmt"
	"math"

	"github.com/mehrguard/urlguard/internal/ml"
)

// Component combination weights. Rule-based heuristics dominate; the ML
// ensemble is an additive bonus signal, never a replacement for the rules.
const (
	brandWeight      = 0.8
	homographWeight  = 0.8
	normalizerWeight = 0.6
	mlBonusMax       = 25.0

	verdictSafeBelow      = 30
	verdictMaliciousFrom  = 65
	unparsableScore       = 50
	emptyInputScore       = 100
	officialDomainCeiling = 25 // Known-official domains stay in the safe band
)

// Config carries the injectable read-only tables for an Engine.
// Zero-value fields fall back to the compiled-in defaults.
type Config struct {
	Brands      []Brand
	SafeDomains map[string]bool
	Ensemble    *ml.Ensemble
}

// Engine is the orchestrator: it runs normalization, parsing, and every
// detection component, then combines their scores into one bounded
// assessment. All state is immutable after construction, so one Engine
// serves any number of concurrent callers.
type Engine struct {
	normalizer *Normalizer
	parser     *Parser
	homograph  *HomographAnalyzer
	tld        *TLDScorer
	brands     *BrandDetector
	heuristics *HeuristicsEngine
	ensemble   *ml.Ensemble
}

// NewEngine creates an engine from the given configuration
func NewEngine(cfg Config) *Engine {
	if cfg.Brands == nil {
		cfg.Brands = DefaultBrandDatabase()
	}
	if cfg.SafeDomains == nil {
		cfg.SafeDomains = DefaultSafeDomains()
	}
	if cfg.Ensemble == nil {
		cfg.Ensemble = ml.NewEnsemble(nil, nil)
	}
	tld := NewTLDScorer()
	return &Engine{
		normalizer: NewNormalizer(),
		parser:     NewParser(),
		homograph:  NewHomographAnalyzer(),
		tld:        tld,
		brands:     NewBrandDetector(cfg.Brands),
		heuristics: NewHeuristicsEngine(tld, cfg.SafeDomains),
		ensemble:   cfg.Ensemble,
	}
}

// Report bundles the final assessment with every component's itemized
// output for display
type Report struct {
	Assessment    RiskAssessment        `json:"assessment"`
	Normalization *NormalizationResult  `json:"normalization,omitempty"`
	Components    *URLComponents        `json:"components,omitempty"`
	Heuristics    *HeuristicResult      `json:"heuristics,omitempty"`
	Brand         *BrandDetectionResult `json:"brand,omitempty"`
	Homograph     *HomographResult      `json:"homograph,omitempty"`
	ML            *ml.ScoringResult     `json:"ml,omitempty"`
}

// Analyze classifies a URL and returns the final assessment.
// It is a pure function of the URL and the engine's fixed tables: calling it
// twice with the same input yields identical results, and no input can make
// it fail.
func (e *Engine) Analyze(rawURL string) *RiskAssessment {
	report := e.AnalyzeReport(rawURL)
	return &report.Assessment
}

// AnalyzeReport is Analyze plus the per-component breakdown
func (e *Engine) AnalyzeReport(rawURL string) *Report {
	// Empty or unverifiable input is treated as maximum risk
	if rawURL == "" {
		return &Report{Assessment: RiskAssessment{
			URL:        rawURL,
			Score:      emptyInputScore,
			Verdict:    VerdictMalicious,
			Flags:      []string{"empty input cannot be verified"},
			Confidence: 1.0,
		}}
	}

	normalization := e.normalizer.Normalize(rawURL)

	components, err := e.parser.Parse(normalization.NormalizedURL)
	if err != nil {
		// Cannot assess: neutral-to-hostile, never an error to the caller
		return &Report{
			Assessment: RiskAssessment{
				URL:        rawURL,
				Score:      unparsableScore,
				Verdict:    VerdictSuspicious,
				Flags:      []string{"URL could not be parsed: " + err.Error()},
				Confidence: 0.3,
			},
			Normalization: normalization,
		}
	}

	heuristics := e.heuristics.AnalyzeComponents(components, normalization.NormalizedURL)
	brand := e.brands.DetectComponents(components)
	homograph := e.homograph.Analyze(components.Host)
	mlScore := e.ensemble.Score(normalization.NormalizedURL)

	total := float64(heuristics.Score) +
		brandWeight*float64(brand.Score) +
		homographWeight*float64(homograph.Score) +
		normalizerWeight*float64(normalization.RiskScore)

	// The ensemble can only push the score up, and only above its decision
	// boundary; a known-official domain ignores it entirely
	if !brand.IsOfficial && mlScore.EnsembleScore > 0.5 {
		total += mlBonusMax * (mlScore.EnsembleScore - 0.5) * 2
	}

	score := int(math.Round(total))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	if brand.IsOfficial && score > officialDomainCeiling {
		score = officialDomainCeiling
	}

	assessment := RiskAssessment{
		URL:        rawURL,
		Score:      score,
		Verdict:    verdictForScore(score),
		Flags:      collectFlags(normalization, heuristics, brand, homograph),
		Confidence: deriveConfidence(score, mlScore),
	}

	return &Report{
		Assessment:    assessment,
		Normalization: normalization,
		Components:    components,
		Heuristics:    heuristics,
		Brand:         brand,
		Homograph:     homograph,
		ML:            mlScore,
	}
}

// AnalyzeBatch runs Analyze independently per URL
func (e *Engine) AnalyzeBatch(rawURLs []string) []*RiskAssessment {
	results := make([]*RiskAssessment, len(rawURLs))
	for i, rawURL := range rawURLs {
		results[i] = e.Analyze(rawURL)
	}
	return results
}

func verdictForScore(score int) string {
	switch {
	case score < verdictSafeBelow:
		return VerdictSafe
	case score < verdictMaliciousFrom:
		return VerdictSuspicious
	default:
		return VerdictMalicious
	}
}

// collectFlags builds the deduplicated union of every component's
// human-readable reason strings, in a fixed order
func collectFlags(n *NormalizationResult, h *HeuristicResult, b *BrandDetectionResult, hg *HomographResult) []string {
	seen := make(map[string]bool)
	var flags []string
	add := func(flag string) {
		if flag == "" || seen[flag] {
			return
		}
		seen[flag] = true
		flags = append(flags, flag)
	}

	for _, reason := range h.Reasons {
		add(reason.Description)
	}
	add(b.Detail)
	if hg.IsHomograph {
		if hg.Punycode != "" {
			add(fmt.Sprintf("host uses punycode encoding (%s)", hg.Punycode))
		}
		if len(hg.DetectedCharacters) > 0 {
			add(fmt.Sprintf("host contains %d lookalike character(s)", len(hg.DetectedCharacters)))
		}
	}
	for _, attack := range n.DetectedAttacks {
		add("obfuscation detected: " + string(attack))
	}
	return flags
}

// deriveConfidence reflects how far the combined evidence sits from the
// verdict boundaries, folded with the ensemble's own confidence
func deriveConfidence(score int, mlScore *ml.ScoringResult) float64 {
	distance := math.Abs(float64(score)-50) / 50
	confidence := 0.5 + 0.3*distance + 0.2*mlScore.Confidence
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}
