package ml

import "math"

// Tabular network shape
const (
	featHidden1Dim = 16
	featHidden2Dim = 8
)

// FeatureNetWeights holds the fixed parameters of the tabular feedforward
// network
type FeatureNetWeights struct {
	Hidden1     [FeatureCount][featHidden1Dim]float64
	Hidden1Bias [featHidden1Dim]float64
	Hidden2     [featHidden1Dim][featHidden2Dim]float64
	Hidden2Bias [featHidden2Dim]float64
	Output      [featHidden2Dim]float64
	OutputBias  float64
}

// FeatureNet scores the tabular feature vector through two hidden ReLU
// layers and a sigmoid output. Inference is strictly deterministic.
type FeatureNet struct {
	weights  *FeatureNetWeights
	saliency [FeatureCount]float64
}

// NewFeatureNet creates a network over the given weights. Pass nil for the
// compiled-in default weights.
func NewFeatureNet(weights *FeatureNetWeights) *FeatureNet {
	if weights == nil {
		weights = &defaultFeatureNetWeights
	}
	n := &FeatureNet{weights: weights}
	for i := 0; i < FeatureCount; i++ {
		total := 0.0
		for j := 0; j < featHidden1Dim; j++ {
			total += math.Abs(weights.Hidden1[i][j])
		}
		n.saliency[i] = total
	}
	return n
}

// Saliency returns the aggregate first-layer weight magnitude for a feature,
// used to rank per-prediction contributions
func (n *FeatureNet) Saliency(feature int) float64 {
	if feature < 0 || feature >= FeatureCount {
		return 0
	}
	return n.saliency[feature]
}

// Predict returns a phishing probability in [0,1] for a feature vector.
// Non-finite inputs yield the fixed neutral prediction 0.5.
func (n *FeatureNet) Predict(features [FeatureCount]float64) float64 {
	for _, v := range features {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0.5
		}
	}

	var h1 [featHidden1Dim]float64
	for j := 0; j < featHidden1Dim; j++ {
		z := n.weights.Hidden1Bias[j]
		for i := 0; i < FeatureCount; i++ {
			z += features[i] * n.weights.Hidden1[i][j]
		}
		h1[j] = relu(z)
	}

	var h2 [featHidden2Dim]float64
	for j := 0; j < featHidden2Dim; j++ {
		z := n.weights.Hidden2Bias[j]
		for i := 0; i < featHidden1Dim; i++ {
			z += h1[i] * n.weights.Hidden2[i][j]
		}
		h2[j] = relu(z)
	}

	z := n.weights.OutputBias
	for j := 0; j < featHidden2Dim; j++ {
		z += h2[j] * n.weights.Output[j]
	}
	return sigmoid(z)
}
