package ml

import "math"

// LogisticModel is the original single-layer artifact: fifteen weights and a
// bias over the same tabular feature vector. Kept as a loadable alternative
// to the feedforward network so existing weight files remain usable.
type LogisticModel struct {
	Weights [FeatureCount]float64
	Bias    float64
}

// Predict returns a phishing probability in [0,1].
// Non-finite inputs yield the fixed neutral prediction 0.5.
func (m *LogisticModel) Predict(features [FeatureCount]float64) float64 {
	z := m.Bias
	for i := 0; i < FeatureCount; i++ {
		v := features[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0.5
		}
		z += v * m.Weights[i]
	}
	return sigmoid(z)
}

// Saliency returns the weight magnitude for a feature
func (m *LogisticModel) Saliency(feature int) float64 {
	if feature < 0 || feature >= FeatureCount {
		return 0
	}
	return math.Abs(m.Weights[feature])
}
