package ml

import (
	"encoding/json"
	"math"
	"os"
)

// maxModelFileSize bounds the weight document; anything larger falls back to
// the compiled-in defaults
const maxModelFileSize = 64 * 1024

// modelDocument is the on-disk shape of a weight artifact. Every section is
// optional; missing sections use compiled-in defaults.
type modelDocument struct {
	Version  int             `json:"version,omitempty"`
	CharNet  *charNetJSON    `json:"char_network,omitempty"`
	Features *featureNetJSON `json:"feature_network,omitempty"`
	Logistic *logisticJSON   `json:"logistic,omitempty"`
}

type charNetJSON struct {
	Embedding  [][]float64 `json:"embedding"`
	Hidden     [][]float64 `json:"hidden"`
	HiddenBias []float64   `json:"hidden_bias"`
	Output     []float64   `json:"output"`
	OutputBias float64     `json:"output_bias"`
}

type featureNetJSON struct {
	Hidden1     [][]float64 `json:"hidden1"`
	Hidden1Bias []float64   `json:"hidden1_bias"`
	Hidden2     [][]float64 `json:"hidden2"`
	Hidden2Bias []float64   `json:"hidden2_bias"`
	Output      []float64   `json:"output"`
	OutputBias  float64     `json:"output_bias"`
}

// logisticJSON matches the original trainer's export:
// {"weights": {"values": [...], "bias": N}}
type logisticJSON struct {
	Weights struct {
		Values []float64 `json:"values"`
		Bias   float64   `json:"bias"`
	} `json:"weights"`
}

// LoadModelFile reads a weight document from disk. Any failure (missing
// file, oversized file, malformed JSON, wrong dimensions) silently falls
// back to the compiled-in defaults: the loader boundary never propagates an
// error into scoring.
func LoadModelFile(path string) *Ensemble {
	if path == "" {
		return NewEnsemble(nil, nil)
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) > maxModelFileSize {
		return NewEnsemble(nil, nil)
	}
	return LoadModel(data)
}

// LoadModel parses a weight document and assembles an ensemble from it,
// falling back to compiled-in defaults section by section
func LoadModel(data []byte) *Ensemble {
	if len(data) == 0 || len(data) > maxModelFileSize {
		return NewEnsemble(nil, nil)
	}

	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewEnsemble(nil, nil)
	}

	charWeights := convertCharNet(doc.CharNet)

	// A logistic section replaces the tabular network entirely; it is the
	// original model artifact shape
	if logistic := convertLogistic(doc.Logistic); logistic != nil {
		return NewEnsembleWithLogistic(charWeights, logistic)
	}

	return NewEnsemble(charWeights, convertFeatureNet(doc.Features))
}

// convertCharNet validates dimensions and copies the document section into
// fixed-size weight arrays. Returns nil (use defaults) on any mismatch.
func convertCharNet(doc *charNetJSON) *CharNetWeights {
	if doc == nil {
		return nil
	}
	if len(doc.Embedding) != charVocabSize ||
		len(doc.Hidden) != charEmbeddingDim ||
		len(doc.HiddenBias) != charHiddenDim ||
		len(doc.Output) != charHiddenDim {
		return nil
	}
	if !allFinite([]float64{doc.OutputBias}) {
		return nil
	}
	w := &CharNetWeights{OutputBias: doc.OutputBias}
	for i, row := range doc.Embedding {
		if len(row) != charEmbeddingDim || !allFinite(row) {
			return nil
		}
		copy(w.Embedding[i][:], row)
	}
	for i, row := range doc.Hidden {
		if len(row) != charHiddenDim || !allFinite(row) {
			return nil
		}
		copy(w.Hidden[i][:], row)
	}
	if !allFinite(doc.HiddenBias) || !allFinite(doc.Output) {
		return nil
	}
	copy(w.HiddenBias[:], doc.HiddenBias)
	copy(w.Output[:], doc.Output)
	return w
}

// convertFeatureNet validates dimensions and copies the document section.
// Returns nil (use defaults) on any mismatch.
func convertFeatureNet(doc *featureNetJSON) *FeatureNetWeights {
	if doc == nil {
		return nil
	}
	if len(doc.Hidden1) != FeatureCount ||
		len(doc.Hidden1Bias) != featHidden1Dim ||
		len(doc.Hidden2) != featHidden1Dim ||
		len(doc.Hidden2Bias) != featHidden2Dim ||
		len(doc.Output) != featHidden2Dim {
		return nil
	}
	if !allFinite([]float64{doc.OutputBias}) {
		return nil
	}
	w := &FeatureNetWeights{OutputBias: doc.OutputBias}
	for i, row := range doc.Hidden1 {
		if len(row) != featHidden1Dim || !allFinite(row) {
			return nil
		}
		copy(w.Hidden1[i][:], row)
	}
	for i, row := range doc.Hidden2 {
		if len(row) != featHidden2Dim || !allFinite(row) {
			return nil
		}
		copy(w.Hidden2[i][:], row)
	}
	if !allFinite(doc.Hidden1Bias) || !allFinite(doc.Hidden2Bias) || !allFinite(doc.Output) {
		return nil
	}
	copy(w.Hidden1Bias[:], doc.Hidden1Bias)
	copy(w.Hidden2Bias[:], doc.Hidden2Bias)
	copy(w.Output[:], doc.Output)
	return w
}

func convertLogistic(doc *logisticJSON) *LogisticModel {
	if doc == nil {
		return nil
	}
	if len(doc.Weights.Values) != FeatureCount || !allFinite(doc.Weights.Values) ||
		!allFinite([]float64{doc.Weights.Bias}) {
		return nil
	}
	m := &LogisticModel{Bias: doc.Weights.Bias}
	copy(m.Weights[:], doc.Weights.Values)
	return m
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
