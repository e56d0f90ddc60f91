package ml

import (
	"math"
	"sort"
)

// Ensemble combination constants. The tabular network carries more weight
// than the character network, and a small symmetric adjustment is applied
// when both models confidently agree.
const (
	charModelWeight    = 0.4
	featureModelWeight = 0.6
	agreementBoost     = 0.05
	agreeHighBound     = 0.70 // Both above: confident phishing agreement
	agreeLowBound      = 0.30 // Both below: confident safe agreement
	phishingThreshold  = 0.5
)

// FeatureContribution is one ranked entry in the per-prediction feature
// breakdown
type FeatureContribution struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Importance float64 `json:"importance"`
}

// ScoringResult holds the combined output of both inference paths
type ScoringResult struct {
	EnsembleScore float64               `json:"ensemble_score"` // 0-1 clamped
	CharScore     float64               `json:"char_score"`
	FeatureScore  float64               `json:"feature_score"`
	IsPhishing    bool                  `json:"is_phishing"` // EnsembleScore >= threshold
	Confidence    float64               `json:"confidence"`  // Distance from the decision boundary
	TopFeatures   []FeatureContribution `json:"top_features,omitempty"`
}

// tabularModel is the inference contract for the tabular path. The default
// is the two-layer FeatureNet; a loaded logistic artifact can stand in.
type tabularModel interface {
	Predict(features [FeatureCount]float64) float64
	Saliency(feature int) float64
}

// Ensemble combines the character network and the tabular model with fixed
// weights. Weights are immutable after construction, so a single instance is
// safe for concurrent use.
type Ensemble struct {
	charNet *CharNet
	tabular tabularModel
}

// NewEnsemble creates an ensemble over the given weight sets. Pass nil for
// either to use the compiled-in defaults.
func NewEnsemble(charWeights *CharNetWeights, featureWeights *FeatureNetWeights) *Ensemble {
	return &Ensemble{
		charNet: NewCharNet(charWeights),
		tabular: NewFeatureNet(featureWeights),
	}
}

// NewEnsembleWithLogistic creates an ensemble whose tabular path is the
// original single-layer logistic artifact
func NewEnsembleWithLogistic(charWeights *CharNetWeights, logistic *LogisticModel) *Ensemble {
	return &Ensemble{
		charNet: NewCharNet(charWeights),
		tabular: logistic,
	}
}

// Score runs both inference paths on a URL and combines them.
// Deterministic: identical input always yields identical output.
func (e *Ensemble) Score(rawURL string) *ScoringResult {
	features := ExtractFeatures(rawURL)

	charScore := e.charNet.Predict(rawURL)
	featureScore := e.tabular.Predict(features)

	combined := charModelWeight*charScore + featureModelWeight*featureScore

	// Agreement adjustment: confident consensus nudges the score outward,
	// disagreement leaves the weighted average untouched
	switch {
	case charScore >= agreeHighBound && featureScore >= agreeHighBound:
		combined += agreementBoost
	case charScore <= agreeLowBound && featureScore <= agreeLowBound:
		combined -= agreementBoost
	}
	combined = clampUnit(combined)

	return &ScoringResult{
		EnsembleScore: combined,
		CharScore:     charScore,
		FeatureScore:  featureScore,
		IsPhishing:    combined >= phishingThreshold,
		Confidence:    clampUnit(math.Abs(combined-phishingThreshold) * 2),
		TopFeatures:   e.rankFeatures(features),
	}
}

// IsLikelyPhishing is the fixed-threshold predicate over the ensemble score
func (e *Ensemble) IsLikelyPhishing(rawURL string) bool {
	return e.Score(rawURL).IsPhishing
}

// rankFeatures returns the five most influential features for this input,
// ranked by activation magnitude
func (e *Ensemble) rankFeatures(features [FeatureCount]float64) []FeatureContribution {
	contributions := make([]FeatureContribution, 0, FeatureCount)
	for i, value := range features {
		if value == 0 {
			continue
		}
		contributions = append(contributions, FeatureContribution{
			Name:       FeatureNames[i],
			Value:      value,
			Importance: value * e.tabular.Saliency(i),
		})
	}
	sort.SliceStable(contributions, func(a, b int) bool {
		return contributions[a].Importance > contributions[b].Importance
	})
	if len(contributions) > 5 {
		contributions = contributions[:5]
	}
	return contributions
}
